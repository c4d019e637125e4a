package university

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Details returns a markdown fact sheet for one university. Results are
	// cached by normalized name since they rarely change.
	Details(ctx context.Context, sc model.Scope, input DetailsInput) (DetailsOutput, error)
}

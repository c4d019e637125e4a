package recommendation

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate produces a fresh recommendation set for the user, replacing
	// any previous sets they own.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}

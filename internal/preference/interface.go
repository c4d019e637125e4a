package preference

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Upsert creates or replaces the caller's current preference record.
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (UpsertOutput, error)

	// Get returns the caller's current preference record.
	Get(ctx context.Context, sc model.Scope) (DetailOutput, error)

	// GetByID returns one preference record, scoped to the caller.
	GetByID(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// UpdateDescription overwrites the rolling free-text constraint summary
	// inferred from chat.
	UpdateDescription(ctx context.Context, sc model.Scope, description string) error
}

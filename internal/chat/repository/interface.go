package repository

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// History returns the user's transcript, oldest first.
	History(ctx context.Context, userID string) ([]model.ChatMessage, error)
	Append(ctx context.Context, userID string, messages ...model.ChatMessage) error
	Clear(ctx context.Context, userID string) error
}

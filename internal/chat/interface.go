package chat

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply sends one user message to the counselor and returns the visible
	// reply. The transcript is appended on success.
	Reply(ctx context.Context, sc model.Scope, input MessageInput) (MessageOutput, error)
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)
	ClearHistory(ctx context.Context, sc model.Scope) error
}

package repository

import (
	"context"

	"nextstep/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ReplaceForOwner deletes every recommendation the user owns and
	// inserts a new one in "generating" state, atomically.
	ReplaceForOwner(ctx context.Context, opt ReplaceForOwnerOptions) (model.Recommendation, error)
	UpdateRecommendation(ctx context.Context, opt UpdateRecommendationOptions) (model.Recommendation, error)
	GetRecommendation(ctx context.Context, opt GetRecommendationOptions) (model.Recommendation, error)
	ListRecommendations(ctx context.Context, opt ListRecommendationsOptions) ([]model.Recommendation, int, error)
	DeleteRecommendation(ctx context.Context, opt DeleteRecommendationOptions) error
	GetStats(ctx context.Context, userID string) (model.RecommendationStats, error)
	// FindLatestCompletedByOwner returns the newest completed recommendation
	// for the user, or a zero value when none exists.
	FindLatestCompletedByOwner(ctx context.Context, userID string) (model.Recommendation, error)
}

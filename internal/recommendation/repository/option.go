package repository

import "nextstep/internal/model"

type ReplaceForOwnerOptions struct {
	UserID       string
	PreferenceID string
}

type UpdateRecommendationOptions struct {
	Recommendation model.Recommendation
}

type GetRecommendationOptions struct {
	ID     string
	UserID string
}

type ListRecommendationsOptions struct {
	UserID string
	Offset int
	Limit  int
}

type DeleteRecommendationOptions struct {
	ID     string
	UserID string
}

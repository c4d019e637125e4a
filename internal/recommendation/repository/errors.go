package repository

import "errors"

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrFailedToCreate         = errors.New("failed to create recommendation")
	ErrFailedToUpdate         = errors.New("failed to update recommendation")
	ErrFailedToGet            = errors.New("failed to get recommendation")
	ErrFailedToDelete         = errors.New("failed to delete recommendation")
)

package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert preference")
	ErrFailedToGet    = errors.New("failed to get preference")
	ErrFailedToUpdate = errors.New("failed to update preference")
)

package repository

import (
	"context"

	"nextstep/internal/model"
)

// Repository defines all data access methods for the Preference entity.
type Repository interface {
	// UpsertPreference atomically creates or replaces the owner's current
	// record (keyed by user).
	UpsertPreference(ctx context.Context, opt UpsertPreferenceOptions) (model.Preference, error)

	// GetPreference retrieves a single record by the provided filters
	// (AND condition). Returns a zero-value Preference (ID == "") when not
	// found; not-found is not an error at this layer.
	GetPreference(ctx context.Context, opt GetPreferenceOptions) (model.Preference, error)

	// UpdateDescription overwrites the rolling preferences description of
	// the owner's current record.
	UpdateDescription(ctx context.Context, opt UpdateDescriptionOptions) error
}

package repository

import "nextstep/internal/model"

// UpsertPreferenceOptions holds parameters for creating or replacing the
// owner's current preference record.
type UpsertPreferenceOptions struct {
	UserID                  string
	AcademicInterests       []string
	PreferredCountries      []string
	BudgetRange             model.BudgetRange
	StudyLevel              model.StudyLevel
	TestScores              model.TestScores
	PreferredUniversitySize model.UniversitySize
	AdditionalRequirements  string
	PreferencesDescription  string
}

// GetPreferenceOptions holds filter parameters for fetching a single record.
// All non-empty fields are applied as AND conditions.
type GetPreferenceOptions struct {
	ID     string
	UserID string
}

// UpdateDescriptionOptions holds parameters for updating the rolling
// description side-channel.
type UpdateDescriptionOptions struct {
	UserID      string
	Description string
}

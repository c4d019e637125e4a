package preference

import "nextstep/internal/model"

// --- UseCase Inputs ---

// UpsertInput carries a full preference record. Writes replace the user's
// current record (at most one per user).
type UpsertInput struct {
	AcademicInterests       []string
	PreferredCountries      []string
	BudgetRange             model.BudgetRange
	StudyLevel              model.StudyLevel
	TestScores              model.TestScores
	PreferredUniversitySize model.UniversitySize
	AdditionalRequirements  string
	PreferencesDescription  string
}

// --- UseCase Outputs ---

type UpsertOutput struct {
	Preference model.Preference
}

type DetailOutput struct {
	Preference model.Preference
}

package model

import "time"

// StudyLevel is the intended level of study.
type StudyLevel string

const (
	StudyLevelUndergraduate StudyLevel = "undergraduate"
	StudyLevelGraduate      StudyLevel = "graduate"
	StudyLevelDoctorate     StudyLevel = "doctorate"
	StudyLevelCertificate   StudyLevel = "certificate"
)

// IsValid reports whether the value is a known study level.
func (s StudyLevel) IsValid() bool {
	switch s {
	case StudyLevelUndergraduate, StudyLevelGraduate, StudyLevelDoctorate, StudyLevelCertificate:
		return true
	}
	return false
}

// UniversitySize is the preferred institution size.
type UniversitySize string

const (
	UniversitySizeSmall  UniversitySize = "small"
	UniversitySizeMedium UniversitySize = "medium"
	UniversitySizeLarge  UniversitySize = "large"
	UniversitySizeAny    UniversitySize = "any"
)

// IsValid reports whether the value is a known size preference.
func (s UniversitySize) IsValid() bool {
	switch s {
	case UniversitySizeSmall, UniversitySizeMedium, UniversitySizeLarge, UniversitySizeAny:
		return true
	}
	return false
}

// BudgetRange is an annual budget window in USD. Max >= Min, both >= 0,
// enforced at write time.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TestScores holds optional standardized test results.
// Nil means the score was not provided.
type TestScores struct {
	SAT   *int     `json:"sat,omitempty"`   // 400..1600
	TOEFL *int     `json:"toefl,omitempty"` // 0..120
	IELTS *float64 `json:"ielts,omitempty"` // 0..9
	GRE   *int     `json:"gre,omitempty"`   // 260..340
}

// Preference is a user's structured study-search constraints.
// One current record per user; writes go through an upsert keyed by owner.
type Preference struct {
	ID                      string
	UserID                  string
	AcademicInterests       []string
	PreferredCountries      []string
	BudgetRange             BudgetRange
	StudyLevel              StudyLevel
	TestScores              TestScores
	PreferredUniversitySize UniversitySize
	AdditionalRequirements  string

	// PreferencesDescription is a rolling free-text summary of constraints
	// inferred from chat, distinct from the structured fields above.
	PreferencesDescription string

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	MaxAdditionalRequirementsLen = 500
	MaxPreferencesDescriptionLen = 1000
)

package http

import (
	"nextstep/internal/model"
	"nextstep/internal/preference"
	"nextstep/pkg/response"
)

// --- Request DTOs ---

type budgetRangeReq struct {
	Min float64 `json:"min" binding:"min=0"`
	Max float64 `json:"max" binding:"min=0"`
}

type testScoresReq struct {
	SAT   *int     `json:"sat"`
	TOEFL *int     `json:"toefl"`
	IELTS *float64 `json:"ielts"`
	GRE   *int     `json:"gre"`
}

type upsertReq struct {
	AcademicInterests       []string       `json:"academicInterests" binding:"required,min=1"`
	PreferredCountries      []string       `json:"preferredCountries" binding:"required,min=1"`
	BudgetRange             budgetRangeReq `json:"budgetRange" binding:"required"`
	StudyLevel              string         `json:"studyLevel" binding:"required"`
	TestScores              testScoresReq  `json:"testScores"`
	PreferredUniversitySize string         `json:"preferredUniversitySize"`
	AdditionalRequirements  string         `json:"additionalRequirements" binding:"max=500"`
	PreferencesDescription  string         `json:"preferencesDescription" binding:"max=1000"`
}

func (r upsertReq) toInput() preference.UpsertInput {
	return preference.UpsertInput{
		AcademicInterests:  r.AcademicInterests,
		PreferredCountries: r.PreferredCountries,
		BudgetRange:        model.BudgetRange{Min: r.BudgetRange.Min, Max: r.BudgetRange.Max},
		StudyLevel:         model.StudyLevel(r.StudyLevel),
		TestScores: model.TestScores{
			SAT:   r.TestScores.SAT,
			TOEFL: r.TestScores.TOEFL,
			IELTS: r.TestScores.IELTS,
			GRE:   r.TestScores.GRE,
		},
		PreferredUniversitySize: model.UniversitySize(r.PreferredUniversitySize),
		AdditionalRequirements:  r.AdditionalRequirements,
		PreferencesDescription:  r.PreferencesDescription,
	}
}

// --- Response DTOs ---

type preferenceResp struct {
	ID                      string            `json:"id"`
	AcademicInterests       []string          `json:"academicInterests"`
	PreferredCountries      []string          `json:"preferredCountries"`
	BudgetRange             budgetRangeReq    `json:"budgetRange"`
	StudyLevel              string            `json:"studyLevel"`
	TestScores              testScoresReq     `json:"testScores"`
	PreferredUniversitySize string            `json:"preferredUniversitySize"`
	AdditionalRequirements  string            `json:"additionalRequirements,omitempty"`
	PreferencesDescription  string            `json:"preferencesDescription,omitempty"`
	CreatedAt               response.DateTime `json:"created_at"`
	UpdatedAt               response.DateTime `json:"updated_at"`
}

func newPreferenceResp(p model.Preference) preferenceResp {
	return preferenceResp{
		ID:                 p.ID,
		AcademicInterests:  p.AcademicInterests,
		PreferredCountries: p.PreferredCountries,
		BudgetRange:        budgetRangeReq{Min: p.BudgetRange.Min, Max: p.BudgetRange.Max},
		StudyLevel:         string(p.StudyLevel),
		TestScores: testScoresReq{
			SAT:   p.TestScores.SAT,
			TOEFL: p.TestScores.TOEFL,
			IELTS: p.TestScores.IELTS,
			GRE:   p.TestScores.GRE,
		},
		PreferredUniversitySize: string(p.PreferredUniversitySize),
		AdditionalRequirements:  p.AdditionalRequirements,
		PreferencesDescription:  p.PreferencesDescription,
		CreatedAt:               response.DateTime(p.CreatedAt),
		UpdatedAt:               response.DateTime(p.UpdatedAt),
	}
}

type detailResp struct {
	Preferences preferenceResp `json:"preferences"`
}

func (h *handler) newDetailResp(output preference.DetailOutput) detailResp {
	return detailResp{Preferences: newPreferenceResp(output.Preference)}
}

type upsertResp struct {
	Preferences preferenceResp `json:"preferences"`
}

func (h *handler) newUpsertResp(output preference.UpsertOutput) upsertResp {
	return upsertResp{Preferences: newPreferenceResp(output.Preference)}
}

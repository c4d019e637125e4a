package usecase

import (
	"context"

	"nextstep/internal/model"
	"nextstep/internal/preference"
	repo "nextstep/internal/preference/repository"
)

// Upsert validates and saves the caller's preference record, replacing any
// existing one. Validation happens before any store access.
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input preference.UpsertInput) (preference.UpsertOutput, error) {
	if input.PreferredUniversitySize == "" {
		input.PreferredUniversitySize = model.UniversitySizeAny
	}

	if err := validateUpsertInput(input); err != nil {
		return preference.UpsertOutput{}, err
	}

	pref, err := uc.repo.UpsertPreference(ctx, repo.UpsertPreferenceOptions{
		UserID:                  sc.UserID,
		AcademicInterests:       input.AcademicInterests,
		PreferredCountries:      input.PreferredCountries,
		BudgetRange:             input.BudgetRange,
		StudyLevel:              input.StudyLevel,
		TestScores:              input.TestScores,
		PreferredUniversitySize: input.PreferredUniversitySize,
		AdditionalRequirements:  input.AdditionalRequirements,
		PreferencesDescription:  input.PreferencesDescription,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertPreference: %v", err)
		return preference.UpsertOutput{}, err
	}

	return preference.UpsertOutput{Preference: pref}, nil
}

func validateUpsertInput(input preference.UpsertInput) error {
	if len(input.AcademicInterests) == 0 {
		return preference.ErrEmptyInterests
	}
	if len(input.PreferredCountries) == 0 {
		return preference.ErrEmptyCountries
	}
	if input.BudgetRange.Min < 0 || input.BudgetRange.Max < 0 {
		return preference.ErrNegativeBudget
	}
	if input.BudgetRange.Max < input.BudgetRange.Min {
		return preference.ErrInvalidBudgetRange
	}
	if !input.StudyLevel.IsValid() {
		return preference.ErrInvalidStudyLevel
	}
	if !input.PreferredUniversitySize.IsValid() {
		return preference.ErrInvalidUniversitySize
	}
	if err := validateTestScores(input.TestScores); err != nil {
		return err
	}
	if len(input.AdditionalRequirements) > model.MaxAdditionalRequirementsLen {
		return preference.ErrTextTooLong
	}
	if len(input.PreferencesDescription) > model.MaxPreferencesDescriptionLen {
		return preference.ErrTextTooLong
	}
	return nil
}

func validateTestScores(ts model.TestScores) error {
	if ts.SAT != nil && (*ts.SAT < 400 || *ts.SAT > 1600) {
		return preference.ErrInvalidTestScore
	}
	if ts.TOEFL != nil && (*ts.TOEFL < 0 || *ts.TOEFL > 120) {
		return preference.ErrInvalidTestScore
	}
	if ts.IELTS != nil && (*ts.IELTS < 0 || *ts.IELTS > 9) {
		return preference.ErrInvalidTestScore
	}
	if ts.GRE != nil && (*ts.GRE < 260 || *ts.GRE > 340) {
		return preference.ErrInvalidTestScore
	}
	return nil
}

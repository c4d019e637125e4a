package http

import (
	"nextstep/internal/preference"
	pkgErrors "nextstep/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case preference.ErrPreferencesNotFound:
		return pkgErrors.NewHTTPError(404, "The specified preferences could not be found")
	case preference.ErrEmptyInterests,
		preference.ErrEmptyCountries,
		preference.ErrInvalidBudgetRange,
		preference.ErrNegativeBudget,
		preference.ErrInvalidStudyLevel,
		preference.ErrInvalidUniversitySize,
		preference.ErrInvalidTestScore,
		preference.ErrTextTooLong:
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "An error occurred while saving your preferences")
	}
}

package http

import (
	"errors"

	"nextstep/internal/university"
	pkgErrors "nextstep/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, university.ErrEmptyName),
		errors.Is(err, university.ErrNameTooLong):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, university.ErrAIServiceUnavailable):
		return pkgErrors.NewHTTPError(503, "AI service is currently unavailable. Please try again later")
	default:
		return pkgErrors.NewHTTPError(500, "An error occurred while fetching university details")
	}
}

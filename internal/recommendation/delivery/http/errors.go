package http

import (
	"errors"

	"nextstep/internal/recommendation"
	pkgErrors "nextstep/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recommendation.ErrRecommendationNotFound):
		return pkgErrors.NewHTTPError(404, "The specified recommendation could not be found")
	case errors.Is(err, recommendation.ErrPreferencesNotFound):
		return pkgErrors.NewHTTPError(404, "Please set up your preferences before generating recommendations")
	case errors.Is(err, recommendation.ErrAIServiceUnavailable):
		return pkgErrors.NewHTTPError(503, "AI service is currently unavailable. Please try again later")
	default:
		return pkgErrors.NewHTTPError(500, "An error occurred while generating recommendations")
	}
}

package http

import (
	"errors"

	"nextstep/internal/chat"
	pkgErrors "nextstep/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, chat.ErrPreferencesNotFound):
		return pkgErrors.NewHTTPError(404, "The specified preferences could not be found")
	case errors.Is(err, chat.ErrAIServiceUnavailable):
		return pkgErrors.NewHTTPError(503, "AI service is currently unavailable. Please try again later")
	default:
		return pkgErrors.NewHTTPError(500, "An error occurred while processing your message")
	}
}

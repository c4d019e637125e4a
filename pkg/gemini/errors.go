package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates the client was constructed without a key.
	ErrMissingAPIKey = errors.New("gemini: API key not configured")

	// ErrAuthentication indicates the provider rejected the key (401/403).
	// Never retried.
	ErrAuthentication = errors.New("gemini: invalid API key or insufficient permissions")

	// ErrUnavailable indicates all retry attempts were exhausted on
	// transient failures (network, 429, 5xx).
	ErrUnavailable = errors.New("gemini: service unavailable")

	// ErrMalformedResponse indicates the provider answered 200 but the body
	// did not contain the expected candidates text path.
	ErrMalformedResponse = errors.New("gemini: malformed provider response")
)

// IsConfigurationError reports whether the error means the service is
// misconfigured rather than transiently failing. Callers surface these as
// 503 "service unavailable" without retrying.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey) || errors.Is(err, ErrAuthentication)
}

// apiError is a non-2xx provider response.
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.status, e.body)
}

// retryable reports whether the failure is worth another attempt:
// rate limiting, server errors, and transport errors only.
func retryable(err error) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status == 429 || ae.status >= 500
	}
	if errors.Is(err, ErrAuthentication) || errors.Is(err, ErrMalformedResponse) {
		return false
	}
	// Transport-level failure (timeout, connection refused).
	return true
}

package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-1.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultRetryAttempts is the total attempt budget per call
	DefaultRetryAttempts = 3

	// DefaultRetryDelay is the exponential backoff base delay
	DefaultRetryDelay = 1 * time.Second
)

const (
	defaultTemperature     = 0.7
	defaultTopK            = 40
	defaultTopP            = 0.95
	defaultMaxOutputTokens = 2048
)

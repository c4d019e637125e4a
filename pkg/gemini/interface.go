package gemini

import "context"

// IGemini defines the interface for the Gemini text generation client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateText sends a single-turn text prompt and returns the model's
	// raw text reply.
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

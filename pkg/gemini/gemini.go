package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type geminiImpl struct {
	apiKey        string
	model         string
	apiURL        string
	retryAttempts int
	retryDelay    time.Duration
	httpClient    *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		apiURL:        cfg.APIURL,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		httpClient:    cfg.HTTPClient,
	}
}

// GenerateText sends a prompt to the Gemini API with retry on transient
// failures. Authentication failures and non-429 client errors abort
// immediately; 429, 5xx and transport errors back off exponentially
// (base delay x 2^(attempt-1)) until the attempt budget runs out.
func (g *geminiImpl) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	req := g.buildRequest(prompt, opts)

	var lastErr error
	for attempt := 1; attempt <= g.retryAttempts; attempt++ {
		text, err := g.callAPI(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) {
			return "", err
		}
		if attempt == g.retryAttempts {
			break
		}

		delay := g.retryDelay * (1 << (attempt - 1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return "", fmt.Errorf("%w: failed after %d attempts: %v", ErrUnavailable, g.retryAttempts, lastErr)
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) buildRequest(prompt string, opts GenerateOptions) generateRequest {
	cfg := &generationConfig{
		Temperature:     opts.Temperature,
		TopK:            opts.TopK,
		TopP:            opts.TopP,
		MaxOutputTokens: opts.MaxOutputTokens,
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if cfg.TopP <= 0 {
		cfg.TopP = defaultTopP
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}

	return generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	}
}

// callAPI performs one request/response cycle against the Gemini API.
func (g *geminiImpl) callAPI(ctx context.Context, req generateRequest) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w (status %d)", ErrAuthentication, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", &apiError{status: resp.StatusCode, body: string(raw)}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Expected path: candidates[0].content.parts[0].text
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrMalformedResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

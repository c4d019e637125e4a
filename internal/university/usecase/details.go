package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nextstep/internal/ai"
	"nextstep/internal/model"
	"nextstep/internal/university"
	"nextstep/pkg/gemini"
)

// Details returns a markdown fact sheet for the given university, serving
// repeat lookups from cache.
func (uc *implUseCase) Details(ctx context.Context, sc model.Scope, input university.DetailsInput) (university.DetailsOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return university.DetailsOutput{}, university.ErrEmptyName
	}
	if len(name) > university.MaxNameLen {
		return university.DetailsOutput{}, university.ErrNameTooLong
	}

	key := cacheKey(name)
	if details, ok := uc.cache.Get(key); ok {
		return university.DetailsOutput{Name: name, Details: details, Cached: true}, nil
	}

	raw, err := uc.llm.GenerateText(ctx, ai.BuildUniversityDetailsPrompt(name), gemini.GenerateOptions{
		Temperature:     detailsTemperature,
		MaxOutputTokens: detailsMaxOutputTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "university.usecase.Details.GenerateText: %v", err)
		if gemini.IsConfigurationError(err) || errors.Is(err, gemini.ErrUnavailable) {
			return university.DetailsOutput{}, fmt.Errorf("%w: %v", university.ErrAIServiceUnavailable, err)
		}
		return university.DetailsOutput{}, fmt.Errorf("%w: %v", university.ErrDetailsFailed, err)
	}

	details := strings.TrimSpace(raw)
	uc.cache.Add(key, details)
	return university.DetailsOutput{Name: name, Details: details}, nil
}

// cacheKey normalizes a name so "MIT", " mit " and "Mit" share one entry.
func cacheKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

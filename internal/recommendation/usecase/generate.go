package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nextstep/internal/ai"
	"nextstep/internal/model"
	prefRepo "nextstep/internal/preference/repository"
	"nextstep/internal/recommendation"
	"nextstep/internal/recommendation/repository"
	"nextstep/pkg/gemini"
)

// Generate runs the full pipeline: load the caller's preferences, atomically
// replace their previous sets with a generating placeholder, call the model,
// parse, and persist the terminal state.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input recommendation.GenerateInput) (recommendation.GenerateOutput, error) {
	pref, err := uc.prefRepo.GetPreference(ctx, prefRepo.GetPreferenceOptions{
		ID:     input.PreferenceID,
		UserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Generate.GetPreference: %v", err)
		return recommendation.GenerateOutput{}, err
	}
	if pref.ID == "" {
		return recommendation.GenerateOutput{}, recommendation.ErrPreferencesNotFound
	}

	rec, err := uc.repo.ReplaceForOwner(ctx, repository.ReplaceForOwnerOptions{
		UserID:       sc.UserID,
		PreferenceID: pref.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Generate.ReplaceForOwner: %v", err)
		return recommendation.GenerateOutput{}, err
	}

	start := time.Now()
	raw, err := uc.llm.GenerateText(ctx, ai.BuildRecommendationPrompt(pref), gemini.GenerateOptions{
		Temperature:     generateTemperature,
		MaxOutputTokens: generateMaxOutputTokens,
	})
	if err != nil {
		uc.failRecommendation(ctx, rec)
		uc.l.Errorf(ctx, "recommendation.usecase.Generate.GenerateText: %v", err)
		if gemini.IsConfigurationError(err) || errors.Is(err, gemini.ErrUnavailable) {
			return recommendation.GenerateOutput{}, fmt.Errorf("%w: %v", recommendation.ErrAIServiceUnavailable, err)
		}
		return recommendation.GenerateOutput{}, fmt.Errorf("%w: %v", recommendation.ErrGenerationFailed, err)
	}

	result := ai.ParseRecommendations(raw)
	if err := rec.MarkCompleted(result.Universities, result.Summary, model.RecommendationMetadata{
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		APICallsUsed:     1,
		Version:          metadataVersion,
	}); err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Generate.MarkCompleted: %v", err)
		return recommendation.GenerateOutput{}, err
	}

	updated, err := uc.repo.UpdateRecommendation(ctx, repository.UpdateRecommendationOptions{
		Recommendation: rec,
	})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Generate.UpdateRecommendation: %v", err)
		return recommendation.GenerateOutput{}, err
	}

	return recommendation.GenerateOutput{Recommendation: updated}, nil
}

// failRecommendation marks the placeholder row failed. Best effort: the
// original generation error is what the caller needs to see.
func (uc *implUseCase) failRecommendation(ctx context.Context, rec model.Recommendation) {
	if err := rec.MarkFailed(failedMessage); err != nil {
		uc.l.Warnf(ctx, "recommendation.usecase.failRecommendation.MarkFailed: %v", err)
		return
	}
	if _, err := uc.repo.UpdateRecommendation(ctx, repository.UpdateRecommendationOptions{
		Recommendation: rec,
	}); err != nil {
		uc.l.Warnf(ctx, "recommendation.usecase.failRecommendation.UpdateRecommendation: %v", err)
	}
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"nextstep/internal/model"
	prefRepo "nextstep/internal/preference/repository"
	"nextstep/internal/recommendation"
	"nextstep/internal/recommendation/repository"
	"nextstep/internal/recommendation/usecase"
	"nextstep/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockPrefRepo struct {
	getFunc func(opt prefRepo.GetPreferenceOptions) (model.Preference, error)
}

func (m *mockPrefRepo) UpsertPreference(ctx context.Context, opt prefRepo.UpsertPreferenceOptions) (model.Preference, error) {
	return model.Preference{}, nil
}

func (m *mockPrefRepo) GetPreference(ctx context.Context, opt prefRepo.GetPreferenceOptions) (model.Preference, error) {
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return model.Preference{
		ID:                 "pref-1",
		UserID:             opt.UserID,
		AcademicInterests:  []string{"Computer Science"},
		PreferredCountries: []string{"United States"},
		BudgetRange:        model.BudgetRange{Max: 50000},
		StudyLevel:         model.StudyLevelUndergraduate,
	}, nil
}

func (m *mockPrefRepo) UpdateDescription(ctx context.Context, opt prefRepo.UpdateDescriptionOptions) error {
	return nil
}

type mockRepo struct {
	replaceFunc func(opt repository.ReplaceForOwnerOptions) (model.Recommendation, error)
	updateFunc  func(opt repository.UpdateRecommendationOptions) (model.Recommendation, error)
	getFunc     func(opt repository.GetRecommendationOptions) (model.Recommendation, error)
	listFunc    func(opt repository.ListRecommendationsOptions) ([]model.Recommendation, int, error)
	deleteFunc  func(opt repository.DeleteRecommendationOptions) error
	statsFunc   func(userID string) (model.RecommendationStats, error)

	updates []repository.UpdateRecommendationOptions
}

func (m *mockRepo) ReplaceForOwner(ctx context.Context, opt repository.ReplaceForOwnerOptions) (model.Recommendation, error) {
	if m.replaceFunc != nil {
		return m.replaceFunc(opt)
	}
	return model.Recommendation{
		ID:           "rec-1",
		UserID:       opt.UserID,
		PreferenceID: opt.PreferenceID,
		Status:       model.StatusGenerating,
	}, nil
}

func (m *mockRepo) UpdateRecommendation(ctx context.Context, opt repository.UpdateRecommendationOptions) (model.Recommendation, error) {
	m.updates = append(m.updates, opt)
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return opt.Recommendation, nil
}

func (m *mockRepo) GetRecommendation(ctx context.Context, opt repository.GetRecommendationOptions) (model.Recommendation, error) {
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return model.Recommendation{}, nil
}

func (m *mockRepo) ListRecommendations(ctx context.Context, opt repository.ListRecommendationsOptions) ([]model.Recommendation, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) DeleteRecommendation(ctx context.Context, opt repository.DeleteRecommendationOptions) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(opt)
	}
	return nil
}

func (m *mockRepo) GetStats(ctx context.Context, userID string) (model.RecommendationStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(userID)
	}
	return model.RecommendationStats{}, nil
}

func (m *mockRepo) FindLatestCompletedByOwner(ctx context.Context, userID string) (model.Recommendation, error) {
	return model.Recommendation{}, nil
}

type mockGemini struct {
	generateFunc func(prompt string, opts gemini.GenerateOptions) (string, error)
}

func (m *mockGemini) GenerateText(ctx context.Context, prompt string, opts gemini.GenerateOptions) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(prompt, opts)
	}
	return "", nil
}

func (m *mockGemini) Model() string { return "gemini-1.5-flash" }

func TestGenerate(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}
	ctx := context.Background()

	t.Run("Happy Path", func(t *testing.T) {
		repo := &mockRepo{}
		llm := &mockGemini{generateFunc: func(prompt string, opts gemini.GenerateOptions) (string, error) {
			if opts.Temperature != 0.6 || opts.MaxOutputTokens != 2048 {
				t.Errorf("unexpected sampling options: %+v", opts)
			}
			return `{"universities": [{"name": "MIT", "fitScore": 95}], "summary": "Strong match."}`, nil
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, llm, &mockLogger{})

		out, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "pref-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rec := out.Recommendation
		if rec.Status != model.StatusCompleted {
			t.Errorf("expected completed status, got %q", rec.Status)
		}
		if len(rec.Universities) != 1 || rec.Universities[0].Name != "MIT" {
			t.Errorf("unexpected universities: %+v", rec.Universities)
		}
		if rec.AIResponse != "Strong match." {
			t.Errorf("unexpected summary: %q", rec.AIResponse)
		}
		if rec.Metadata.APICallsUsed != 1 || rec.Metadata.Version != "1.0" {
			t.Errorf("unexpected metadata: %+v", rec.Metadata)
		}
	})

	t.Run("Preferences Not Found", func(t *testing.T) {
		pr := &mockPrefRepo{getFunc: func(opt prefRepo.GetPreferenceOptions) (model.Preference, error) {
			return model.Preference{}, nil
		}}
		repo := &mockRepo{}
		uc := usecase.New(repo, pr, &mockGemini{}, &mockLogger{})

		_, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "missing"})
		if !errors.Is(err, recommendation.ErrPreferencesNotFound) {
			t.Errorf("expected ErrPreferencesNotFound, got %v", err)
		}
		if len(repo.updates) != 0 {
			t.Errorf("no rows must be touched when preferences are missing")
		}
	})

	t.Run("Gateway Failure Marks Failed And Reraises", func(t *testing.T) {
		repo := &mockRepo{}
		llm := &mockGemini{generateFunc: func(prompt string, opts gemini.GenerateOptions) (string, error) {
			return "", gemini.ErrMalformedResponse
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, llm, &mockLogger{})

		_, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "pref-1"})
		if !errors.Is(err, recommendation.ErrGenerationFailed) {
			t.Errorf("expected ErrGenerationFailed, got %v", err)
		}
		if len(repo.updates) != 1 {
			t.Fatalf("expected one persisted update, got %d", len(repo.updates))
		}
		failed := repo.updates[0].Recommendation
		if failed.Status != model.StatusFailed {
			t.Errorf("placeholder must be marked failed, got %q", failed.Status)
		}
		if failed.AIResponse != "Failed to generate recommendations due to AI service error" {
			t.Errorf("unexpected failure message: %q", failed.AIResponse)
		}
	})

	t.Run("Retries Exhausted Maps To Unavailable", func(t *testing.T) {
		repo := &mockRepo{}
		llm := &mockGemini{generateFunc: func(prompt string, opts gemini.GenerateOptions) (string, error) {
			return "", gemini.ErrUnavailable
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, llm, &mockLogger{})

		_, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "pref-1"})
		if !errors.Is(err, recommendation.ErrAIServiceUnavailable) {
			t.Errorf("expected ErrAIServiceUnavailable, got %v", err)
		}
		if len(repo.updates) != 1 || repo.updates[0].Recommendation.Status != model.StatusFailed {
			t.Errorf("placeholder must still be marked failed")
		}
	})

	t.Run("Auth Failure Maps To Unavailable", func(t *testing.T) {
		llm := &mockGemini{generateFunc: func(prompt string, opts gemini.GenerateOptions) (string, error) {
			return "", gemini.ErrAuthentication
		}}
		uc := usecase.New(&mockRepo{}, &mockPrefRepo{}, llm, &mockLogger{})

		_, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "pref-1"})
		if !errors.Is(err, recommendation.ErrAIServiceUnavailable) {
			t.Errorf("expected ErrAIServiceUnavailable, got %v", err)
		}
	})

	t.Run("Unparseable Reply Still Completes", func(t *testing.T) {
		repo := &mockRepo{}
		llm := &mockGemini{generateFunc: func(prompt string, opts gemini.GenerateOptions) (string, error) {
			return "I cannot answer that in JSON, sorry.", nil
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, llm, &mockLogger{})

		out, err := uc.Generate(ctx, sc, recommendation.GenerateInput{PreferenceID: "pref-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Recommendation.Status != model.StatusCompleted {
			t.Errorf("expected completed status, got %q", out.Recommendation.Status)
		}
		if len(out.Recommendation.Universities) != 0 {
			t.Errorf("expected empty university list, got %+v", out.Recommendation.Universities)
		}
		if out.Recommendation.AIResponse != "I cannot answer that in JSON, sorry." {
			t.Errorf("raw text must be kept as summary, got %q", out.Recommendation.AIResponse)
		}
	})
}

func TestList(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}
	ctx := context.Background()

	t.Run("Pagination Defaults", func(t *testing.T) {
		var captured repository.ListRecommendationsOptions
		repo := &mockRepo{listFunc: func(opt repository.ListRecommendationsOptions) ([]model.Recommendation, int, error) {
			captured = opt
			return []model.Recommendation{{ID: "rec-1"}}, 25, nil
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

		out, err := uc.List(ctx, sc, recommendation.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Offset != 0 || captured.Limit != 10 {
			t.Errorf("unexpected window: %+v", captured)
		}
		p := out.Pagination
		if p.Current != 1 || p.Pages != 3 || p.Total != 25 || !p.HasNext || p.HasPrev {
			t.Errorf("unexpected pagination: %+v", p)
		}
	})

	t.Run("Limit Capped", func(t *testing.T) {
		var captured repository.ListRecommendationsOptions
		repo := &mockRepo{listFunc: func(opt repository.ListRecommendationsOptions) ([]model.Recommendation, int, error) {
			captured = opt
			return nil, 0, nil
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

		if _, err := uc.List(ctx, sc, recommendation.ListInput{Page: 2, Limit: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Limit != 50 || captured.Offset != 50 {
			t.Errorf("unexpected window: %+v", captured)
		}
	})
}

func TestDetail(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

		_, err := uc.Detail(ctx, sc, "missing")
		if !errors.Is(err, recommendation.ErrRecommendationNotFound) {
			t.Errorf("expected ErrRecommendationNotFound, got %v", err)
		}
	})

	t.Run("Scoped Lookup", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(opt repository.GetRecommendationOptions) (model.Recommendation, error) {
			if opt.ID != "rec-1" || opt.UserID != "user-1" {
				t.Errorf("lookup must scope by both id and owner: %+v", opt)
			}
			return model.Recommendation{ID: "rec-1", UserID: "user-1"}, nil
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

		out, err := uc.Detail(ctx, sc, "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Recommendation.ID != "rec-1" {
			t.Errorf("unexpected output: %+v", out)
		}
	})
}

func TestDelete(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}
	ctx := context.Background()

	t.Run("Not Found Mapped", func(t *testing.T) {
		repo := &mockRepo{deleteFunc: func(opt repository.DeleteRecommendationOptions) error {
			return repository.ErrRecommendationNotFound
		}}
		uc := usecase.New(repo, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

		if err := uc.Delete(ctx, sc, "missing"); !errors.Is(err, recommendation.ErrRecommendationNotFound) {
			t.Errorf("expected ErrRecommendationNotFound, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	repo := &mockRepo{statsFunc: func(userID string) (model.RecommendationStats, error) {
		if userID != "user-1" {
			t.Errorf("stats must be scoped to the caller, got %q", userID)
		}
		return model.RecommendationStats{Total: 4, Completed: 3, Failed: 1, TotalUniversities: 21, AvgProcessingTimeMs: 812.5}, nil
	}}
	uc := usecase.New(repo, &mockPrefRepo{}, &mockGemini{}, &mockLogger{})

	out, err := uc.Stats(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 4 || out.Completed != 3 || out.Failed != 1 || out.TotalUniversities != 21 || out.AvgProcessingTimeMs != 812.5 {
		t.Errorf("unexpected stats: %+v", out)
	}
}

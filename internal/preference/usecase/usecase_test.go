package usecase_test

import (
	"context"
	"errors"
	"testing"

	"nextstep/internal/model"
	"nextstep/internal/preference"
	"nextstep/internal/preference/repository"
	"nextstep/internal/preference/usecase"
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

type mockRepo struct {
	upsertFunc func(opt repository.UpsertPreferenceOptions) (model.Preference, error)
	getFunc    func(opt repository.GetPreferenceOptions) (model.Preference, error)
	updateFunc func(opt repository.UpdateDescriptionOptions) error
}

func (m *mockRepo) UpsertPreference(ctx context.Context, opt repository.UpsertPreferenceOptions) (model.Preference, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(opt)
	}
	return model.Preference{ID: "pref-1", UserID: opt.UserID}, nil
}

func (m *mockRepo) GetPreference(ctx context.Context, opt repository.GetPreferenceOptions) (model.Preference, error) {
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return model.Preference{}, nil
}

func (m *mockRepo) UpdateDescription(ctx context.Context, opt repository.UpdateDescriptionOptions) error {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return nil
}

func validInput() preference.UpsertInput {
	return preference.UpsertInput{
		AcademicInterests:  []string{"Computer Science"},
		PreferredCountries: []string{"United States"},
		BudgetRange:        model.BudgetRange{Min: 0, Max: 50000},
		StudyLevel:         model.StudyLevelUndergraduate,
	}
}

func TestUpsert(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Valid Input", func(t *testing.T) {
		var captured repository.UpsertPreferenceOptions
		repo := &mockRepo{upsertFunc: func(opt repository.UpsertPreferenceOptions) (model.Preference, error) {
			captured = opt
			return model.Preference{ID: "pref-1", UserID: opt.UserID}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Upsert(context.Background(), sc, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Preference.ID != "pref-1" {
			t.Errorf("unexpected output: %+v", out)
		}
		if captured.UserID != "user-1" {
			t.Errorf("owner not propagated: %q", captured.UserID)
		}
		if captured.PreferredUniversitySize != model.UniversitySizeAny {
			t.Errorf("size preference must default to any, got %q", captured.PreferredUniversitySize)
		}
	})

	t.Run("Budget Max Below Min Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.BudgetRange = model.BudgetRange{Min: 30000, Max: 20000}

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrInvalidBudgetRange) {
			t.Errorf("expected ErrInvalidBudgetRange, got %v", err)
		}
	})

	t.Run("Negative Budget Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.BudgetRange = model.BudgetRange{Min: -1, Max: 10000}

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrNegativeBudget) {
			t.Errorf("expected ErrNegativeBudget, got %v", err)
		}
	})

	t.Run("Empty Interests Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.AcademicInterests = nil

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrEmptyInterests) {
			t.Errorf("expected ErrEmptyInterests, got %v", err)
		}
	})

	t.Run("Empty Countries Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.PreferredCountries = []string{}

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrEmptyCountries) {
			t.Errorf("expected ErrEmptyCountries, got %v", err)
		}
	})

	t.Run("Invalid Study Level Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.StudyLevel = "postdoc"

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrInvalidStudyLevel) {
			t.Errorf("expected ErrInvalidStudyLevel, got %v", err)
		}
	})

	t.Run("Out Of Range Test Scores Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		cases := []model.TestScores{}
		badSAT := 200
		cases = append(cases, model.TestScores{SAT: &badSAT})
		badTOEFL := 130
		cases = append(cases, model.TestScores{TOEFL: &badTOEFL})
		badIELTS := 9.5
		cases = append(cases, model.TestScores{IELTS: &badIELTS})
		badGRE := 350
		cases = append(cases, model.TestScores{GRE: &badGRE})

		for i, ts := range cases {
			input := validInput()
			input.TestScores = ts
			if _, err := uc.Upsert(context.Background(), sc, input); !errors.Is(err, preference.ErrInvalidTestScore) {
				t.Errorf("case %d: expected ErrInvalidTestScore, got %v", i, err)
			}
		}
	})

	t.Run("In Range Test Scores Accepted", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		sat, toefl, gre := 1600, 0, 340
		ielts := 9.0
		input := validInput()
		input.TestScores = model.TestScores{SAT: &sat, TOEFL: &toefl, IELTS: &ielts, GRE: &gre}

		if _, err := uc.Upsert(context.Background(), sc, input); err != nil {
			t.Errorf("boundary scores must be accepted: %v", err)
		}
	})

	t.Run("Oversized Text Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		input := validInput()
		input.AdditionalRequirements = string(make([]byte, model.MaxAdditionalRequirementsLen+1))

		_, err := uc.Upsert(context.Background(), sc, input)
		if !errors.Is(err, preference.ErrTextTooLong) {
			t.Errorf("expected ErrTextTooLong, got %v", err)
		}
	})
}

func TestGetByID(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Found", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(opt repository.GetPreferenceOptions) (model.Preference, error) {
			if opt.ID != "pref-1" || opt.UserID != "user-1" {
				t.Errorf("lookup must scope by both id and owner: %+v", opt)
			}
			return model.Preference{ID: "pref-1", UserID: "user-1"}, nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.GetByID(context.Background(), sc, "pref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Preference.ID != "pref-1" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		_, err := uc.GetByID(context.Background(), sc, "missing")
		if !errors.Is(err, preference.ErrPreferencesNotFound) {
			t.Errorf("expected ErrPreferencesNotFound, got %v", err)
		}
	})
}

func TestUpdateDescription(t *testing.T) {
	sc := model.Scope{UserID: "user-1"}

	t.Run("Truncates Oversized Description", func(t *testing.T) {
		var captured repository.UpdateDescriptionOptions
		repo := &mockRepo{updateFunc: func(opt repository.UpdateDescriptionOptions) error {
			captured = opt
			return nil
		}}
		uc := usecase.New(repo, &mockLogger{})

		long := make([]byte, model.MaxPreferencesDescriptionLen+500)
		for i := range long {
			long[i] = 'a'
		}

		if err := uc.UpdateDescription(context.Background(), sc, string(long)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(captured.Description) != model.MaxPreferencesDescriptionLen {
			t.Errorf("description must be truncated to %d, got %d", model.MaxPreferencesDescriptionLen, len(captured.Description))
		}
	})
}

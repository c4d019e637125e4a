package usecase

import (
	"context"

	"nextstep/internal/model"
	"nextstep/internal/preference"
	repo "nextstep/internal/preference/repository"
)

// Get returns the caller's current preference record.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (preference.DetailOutput, error) {
	pref, err := uc.repo.GetPreference(ctx, repo.GetPreferenceOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetPreference: %v", err)
		return preference.DetailOutput{}, err
	}
	if pref.ID == "" {
		return preference.DetailOutput{}, preference.ErrPreferencesNotFound
	}

	return preference.DetailOutput{Preference: pref}, nil
}

// GetByID returns one preference record scoped to the caller. A record owned
// by another user is indistinguishable from a missing one.
func (uc *implUseCase) GetByID(ctx context.Context, sc model.Scope, id string) (preference.DetailOutput, error) {
	pref, err := uc.repo.GetPreference(ctx, repo.GetPreferenceOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID GetPreference: %v", err)
		return preference.DetailOutput{}, err
	}
	if pref.ID == "" {
		return preference.DetailOutput{}, preference.ErrPreferencesNotFound
	}

	return preference.DetailOutput{Preference: pref}, nil
}

// UpdateDescription overwrites the rolling constraint summary. Missing
// preferences are not an error here: a chat-detected update for a user with
// no saved record is simply dropped.
func (uc *implUseCase) UpdateDescription(ctx context.Context, sc model.Scope, description string) error {
	if len(description) > model.MaxPreferencesDescriptionLen {
		description = description[:model.MaxPreferencesDescriptionLen]
	}

	if err := uc.repo.UpdateDescription(ctx, repo.UpdateDescriptionOptions{
		UserID:      sc.UserID,
		Description: description,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDescription: %v", err)
		return err
	}
	return nil
}

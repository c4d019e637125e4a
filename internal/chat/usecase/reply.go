package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nextstep/internal/ai"
	"nextstep/internal/chat"
	"nextstep/internal/model"
	"nextstep/internal/preference"
	"nextstep/pkg/gemini"
)

// Reply sends one user turn to the counselor. Recommendation context is best
// effort; preference context is only attached when the caller pins a record,
// and a bad pin is a hard miss.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input chat.MessageInput) (chat.MessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.MessageOutput{}, chat.ErrEmptyMessage
	}
	if len(message) > chat.MaxMessageLen {
		return chat.MessageOutput{}, chat.ErrMessageTooLong
	}

	pref, err := uc.loadPreferences(ctx, sc, input.PreferenceID)
	if err != nil {
		return chat.MessageOutput{}, err
	}
	rec := uc.loadLatestRecommendation(ctx, sc)

	history, err := uc.sessions.History(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Reply.History: %v", err)
	}

	start := time.Now()
	raw, err := uc.llm.GenerateText(ctx, ai.BuildChatPrompt(message, pref, rec, history), gemini.GenerateOptions{
		Temperature:     replyTemperature,
		MaxOutputTokens: replyMaxOutputTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Reply.GenerateText: %v", err)
		if gemini.IsConfigurationError(err) || errors.Is(err, gemini.ErrUnavailable) {
			return chat.MessageOutput{}, fmt.Errorf("%w: %v", chat.ErrAIServiceUnavailable, err)
		}
		return chat.MessageOutput{}, fmt.Errorf("%w: %v", chat.ErrReplyFailed, err)
	}

	visible, update := ai.ParseChatUpdateDirective(raw)

	var detected *chat.DetectedUpdate
	if update != nil {
		detected = &chat.DetectedUpdate{PreferencesDescription: update.PreferencesDescription}
	}

	now := time.Now()
	if err := uc.sessions.Append(ctx, sc.UserID,
		model.ChatMessage{Role: model.ChatRoleUser, Content: message, At: start},
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: visible, At: now},
	); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Reply.Append: %v", err)
	}

	return chat.MessageOutput{
		Reply:            visible,
		Timestamp:        now,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Update:           detected,
	}, nil
}

func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	messages, err := uc.sessions.History(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.History: %v", err)
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{Messages: messages}, nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if err := uc.sessions.Clear(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ClearHistory: %v", err)
		return err
	}
	return nil
}

// loadPreferences resolves the pinned preference record. No pin means no
// preference context, a pin that misses is an error.
func (uc *implUseCase) loadPreferences(ctx context.Context, sc model.Scope, preferenceID string) (*model.Preference, error) {
	if preferenceID == "" {
		return nil, nil
	}
	out, err := uc.prefUC.GetByID(ctx, sc, preferenceID)
	if errors.Is(err, preference.ErrPreferencesNotFound) {
		return nil, chat.ErrPreferencesNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.loadPreferences: %v", err)
		return nil, err
	}
	pref := out.Preference
	return &pref, nil
}

func (uc *implUseCase) loadLatestRecommendation(ctx context.Context, sc model.Scope) *model.Recommendation {
	rec, err := uc.recRepo.FindLatestCompletedByOwner(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.loadLatestRecommendation: %v", err)
		return nil
	}
	if rec.ID == "" {
		return nil
	}
	return &rec
}

package usecase

import (
	"nextstep/internal/chat/repository"
	"nextstep/internal/preference"
	recommendationRepo "nextstep/internal/recommendation/repository"
	"nextstep/pkg/gemini"
	"nextstep/pkg/log"
)

const (
	replyTemperature     = 0.8
	replyMaxOutputTokens = 1024
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	sessions repository.Repository
	prefUC   preference.UseCase
	recRepo  recommendationRepo.Repository
	llm      gemini.IGemini
	l        log.Logger
}

// New creates a new chat UseCase implementation.
func New(sessions repository.Repository, prefUC preference.UseCase, recRepo recommendationRepo.Repository, llm gemini.IGemini, l log.Logger) *implUseCase {
	return &implUseCase{
		sessions: sessions,
		prefUC:   prefUC,
		recRepo:  recRepo,
		llm:      llm,
		l:        l,
	}
}

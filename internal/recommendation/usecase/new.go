package usecase

import (
	preferenceRepo "nextstep/internal/preference/repository"
	"nextstep/internal/recommendation/repository"
	"nextstep/pkg/gemini"
	"nextstep/pkg/log"
)

const (
	generateTemperature     = 0.6
	generateMaxOutputTokens = 2048

	// metadataVersion tags each stored result set's pipeline version.
	metadataVersion = "1.0"

	failedMessage = "Failed to generate recommendations due to AI service error"
)

// implUseCase is the private implementation of recommendation.UseCase.
type implUseCase struct {
	repo     repository.Repository
	prefRepo preferenceRepo.Repository
	llm      gemini.IGemini
	l        log.Logger
}

// New creates a new recommendation UseCase implementation.
func New(repo repository.Repository, prefRepo preferenceRepo.Repository, llm gemini.IGemini, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		prefRepo: prefRepo,
		llm:      llm,
		l:        l,
	}
}

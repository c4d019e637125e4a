package usecase

import (
	"nextstep/internal/preference/repository"
	"nextstep/pkg/log"
)

// implUseCase is the private implementation of preference.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new preference UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

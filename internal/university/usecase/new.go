package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"nextstep/pkg/gemini"
	"nextstep/pkg/log"
)

const (
	detailsTemperature     = 0.7
	detailsMaxOutputTokens = 1024

	// DefaultCacheSize bounds how many fact sheets stay warm.
	DefaultCacheSize = 500
)

// implUseCase is the private implementation of university.UseCase.
type implUseCase struct {
	llm   gemini.IGemini
	cache *lru.Cache[string, string]
	l     log.Logger
}

// New creates a new university UseCase implementation with an LRU cache of
// cacheSize fact sheets.
func New(llm gemini.IGemini, cacheSize int, l log.Logger) (*implUseCase, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		llm:   llm,
		cache: cache,
		l:     l,
	}, nil
}

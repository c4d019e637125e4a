package recommendation

import "errors"

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrPreferencesNotFound    = errors.New("preferences not found")
	ErrAIServiceUnavailable   = errors.New("ai service unavailable")
	ErrGenerationFailed       = errors.New("recommendation generation failed")
)

package university

import "errors"

var (
	ErrEmptyName            = errors.New("university name must not be empty")
	ErrNameTooLong          = errors.New("university name exceeds maximum length")
	ErrAIServiceUnavailable = errors.New("ai service unavailable")
	ErrDetailsFailed        = errors.New("failed to get university details")
)

package chat

import "errors"

var (
	ErrEmptyMessage         = errors.New("message must not be empty")
	ErrPreferencesNotFound  = errors.New("preferences not found")
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrAIServiceUnavailable = errors.New("ai service unavailable")
	ErrReplyFailed          = errors.New("failed to get counselor reply")
)

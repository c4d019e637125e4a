package chat

import (
	"time"

	"nextstep/internal/model"
)

// --- UseCase Inputs ---

type MessageInput struct {
	Message string
	// PreferenceID optionally pins the preference context. Empty means no
	// preference context for this turn.
	PreferenceID string
}

// --- UseCase Outputs ---

// DetectedUpdate is a preference change the counselor inferred from the
// conversation. The orchestrator only detects it; persisting is the caller's
// job.
type DetectedUpdate struct {
	PreferencesDescription string
}

type MessageOutput struct {
	Reply            string
	Timestamp        time.Time
	ProcessingTimeMs int64
	Update           *DetectedUpdate
}

type HistoryOutput struct {
	Messages []model.ChatMessage
}

// MaxMessageLen bounds one user turn.
const MaxMessageLen = 2000

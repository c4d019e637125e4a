package memory

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"nextstep/internal/chat/repository"
	"nextstep/internal/model"
)

const (
	// DefaultMaxSessions bounds how many users keep a live transcript.
	// Evicted sessions simply start a fresh conversation.
	DefaultMaxSessions = 1000

	// maxMessagesPerSession bounds one transcript; oldest turns fall off.
	maxMessagesPerSession = 50
)

// implRepository is an in-process session store. Transcripts are best-effort
// conversational state, not durable data, so an LRU over user IDs is enough.
type implRepository struct {
	mu    sync.Mutex
	cache *lru.Cache[string, []model.ChatMessage]
}

// New creates an in-memory chat session store holding at most maxSessions
// concurrent transcripts.
func New(maxSessions int) (repository.Repository, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, []model.ChatMessage](maxSessions)
	if err != nil {
		return nil, err
	}
	return &implRepository{cache: cache}, nil
}

func (r *implRepository) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, ok := r.cache.Get(userID)
	if !ok {
		return nil, nil
	}
	out := make([]model.ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}

func (r *implRepository) Append(ctx context.Context, userID string, msgs ...model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, _ := r.cache.Get(userID)
	messages = append(messages, msgs...)
	if len(messages) > maxMessagesPerSession {
		messages = messages[len(messages)-maxMessagesPerSession:]
	}
	r.cache.Add(userID, messages)
	return nil
}

func (r *implRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Remove(userID)
	return nil
}

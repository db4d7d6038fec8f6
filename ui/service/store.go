package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
)

// DefaultMaxAnswers is the history size of a MemoryStore by default.
const DefaultMaxAnswers = 1000

// StoredAnswer is an answer with the time it was added.
type StoredAnswer struct {
	Answer    *answerui.Answer
	CreatedAt time.Time
}

// Store holds the conversation history.
type Store interface {
	AddAnswer(ctx context.Context, a *answerui.Answer) error
	GetAnswer(ctx context.Context, id uuid.UUID) (*StoredAnswer, error)
	// ListAnswers returns answers newest first.
	ListAnswers(ctx context.Context, limit, offset int) ([]*StoredAnswer, error)
	CountAnswers(ctx context.Context) (int, error)
}

// MemoryStore is a Store kept in memory. When full, the oldest answer is
// dropped.
type MemoryStore struct {
	mu         sync.RWMutex
	answers    []*StoredAnswer // oldest first
	byID       map[uuid.UUID]*StoredAnswer
	maxAnswers int
	now        func() time.Time
}

// NewMemoryStore creates a store holding at most maxAnswers answers.
// Zero or less selects DefaultMaxAnswers.
func NewMemoryStore(maxAnswers int) *MemoryStore {
	if maxAnswers <= 0 {
		maxAnswers = DefaultMaxAnswers
	}
	return &MemoryStore{
		byID:       make(map[uuid.UUID]*StoredAnswer),
		maxAnswers: maxAnswers,
		now:        time.Now,
	}
}

// AddAnswer implements Store. Answers without an ID are given one.
func (s *MemoryStore) AddAnswer(ctx context.Context, a *answerui.Answer) error {
	if a == nil {
		return ErrNilAnswer
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[a.ID]; ok {
		return ErrDuplicate
	}
	stored := &StoredAnswer{Answer: a, CreatedAt: s.now()}
	s.answers = append(s.answers, stored)
	s.byID[a.ID] = stored

	if len(s.answers) > s.maxAnswers {
		oldest := s.answers[0]
		delete(s.byID, oldest.Answer.ID)
		s.answers[0] = nil
		s.answers = s.answers[1:]
	}
	return nil
}

// GetAnswer implements Store.
func (s *MemoryStore) GetAnswer(ctx context.Context, id uuid.UUID) (*StoredAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return stored, nil
}

// ListAnswers implements Store.
func (s *MemoryStore) ListAnswers(ctx context.Context, limit, offset int) ([]*StoredAnswer, error) {
	if limit <= 0 {
		return []*StoredAnswer{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*StoredAnswer, 0, min(limit, len(s.answers)))
	for i := len(s.answers) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.answers[i])
	}
	return out, nil
}

// CountAnswers implements Store.
func (s *MemoryStore) CountAnswers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.answers), nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
)

// Service provides answer UI operations over a Store.
type Service struct {
	store Store
}

// New creates a new Service with the given store.
func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Store returns the underlying store.
// This is useful for advanced operations not covered by the service.
func (s *Service) Store() Store {
	return s.store
}

// AddAnswer adds a to the history.
func (s *Service) AddAnswer(ctx context.Context, a *answerui.Answer) error {
	if err := s.store.AddAnswer(ctx, a); err != nil {
		return fmt.Errorf("add answer: %w", err)
	}
	return nil
}

// GetAnswer returns the answer with the given ID.
func (s *Service) GetAnswer(ctx context.Context, id uuid.UUID) (*answerui.Answer, error) {
	stored, err := s.store.GetAnswer(ctx, id)
	if err != nil {
		return nil, err
	}
	return stored.Answer, nil
}

// ListAnswers returns a page of answer summaries, newest first.
func (s *Service) ListAnswers(ctx context.Context, params AnswerListParams) (*AnswerList, error) {
	limit := ValidateLimit(params.Limit)
	offset := ValidateOffset(params.Offset)

	stored, err := s.store.ListAnswers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	total, err := s.store.CountAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}

	summaries := make([]*AnswerSummary, 0, len(stored))
	for _, sa := range stored {
		summaries = append(summaries, summarize(sa))
	}

	return &AnswerList{
		Answers:    summaries,
		TotalCount: total,
		HasMore:    offset+len(summaries) < total,
	}, nil
}

// Conversation returns the answers in the order they were added, oldest
// first, up to limit.
func (s *Service) Conversation(ctx context.Context, limit int) ([]*answerui.Answer, error) {
	stored, err := s.store.ListAnswers(ctx, ValidateLimit(limit), 0)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	out := make([]*answerui.Answer, len(stored))
	for i, sa := range stored {
		out[len(stored)-1-i] = sa.Answer
	}
	return out, nil
}

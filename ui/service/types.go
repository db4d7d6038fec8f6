package service

import (
	"time"

	"github.com/google/uuid"
)

// Validation constants for query parameters
const (
	// MaxPageLimit is the maximum allowed page size to prevent resource exhaustion
	MaxPageLimit = 1000
	// MinPageLimit is the minimum allowed page size
	MinPageLimit = 1
	// previewLength is the number of runes kept in an answer preview
	previewLength = 120
)

// ValidateLimit ensures limit is within acceptable bounds.
func ValidateLimit(limit int) int {
	if limit < MinPageLimit {
		return MinPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// ValidateOffset ensures offset is non-negative.
func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// AnswerListParams contains parameters for listing answers.
type AnswerListParams struct {
	Limit  int
	Offset int
}

// AnswerList is a page of answer summaries.
type AnswerList struct {
	Answers    []*AnswerSummary `json:"answers"`
	TotalCount int              `json:"total_count"`
	HasMore    bool             `json:"has_more"`
}

// AnswerSummary is a condensed answer for list views.
type AnswerSummary struct {
	ID             uuid.UUID `json:"id"`
	Preview        string    `json:"preview"`
	DataPointCount int       `json:"data_point_count"`
	HasThoughts    bool      `json:"has_thoughts"`
	CreatedAt      time.Time `json:"created_at"`
}

func summarize(sa *StoredAnswer) *AnswerSummary {
	return &AnswerSummary{
		ID:             sa.Answer.ID,
		Preview:        preview(sa.Answer.Text),
		DataPointCount: len(sa.Answer.DataPoints),
		HasThoughts:    sa.Answer.HasThoughts(),
		CreatedAt:      sa.CreatedAt,
	}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLength {
		return s
	}
	return string(r[:previewLength-3]) + "..."
}

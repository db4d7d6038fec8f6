package ui

import (
	"context"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui/ui/frontend"
)

// Actions receives the user's clicks in the frontend. Methods run on the
// request goroutine and should return quickly.
type Actions = frontend.Actions

// NopActions ignores every click. Embed it to implement a subset.
type NopActions struct{}

func (NopActions) CitationClicked(ctx context.Context, answerID uuid.UUID, path string) {}
func (NopActions) ThoughtProcessClicked(ctx context.Context, answerID uuid.UUID)        {}
func (NopActions) SupportingContentClicked(ctx context.Context, answerID uuid.UUID)     {}
func (NopActions) FollowupQuestionClicked(ctx context.Context, answerID uuid.UUID, question string) {
}
func (NopActions) ExampleClicked(ctx context.Context, value string) {}

package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui/ui"
)

// loggingActions records the user's clicks. The host chat application
// replaces it with handlers that open panels and submit questions.
type loggingActions struct {
	log ui.Logger
}

func (a *loggingActions) CitationClicked(ctx context.Context, answerID uuid.UUID, path string) {
	a.log.Info("citation clicked", "answer_id", answerID.String(), "path", path)
}

func (a *loggingActions) ThoughtProcessClicked(ctx context.Context, answerID uuid.UUID) {
	a.log.Info("thought process clicked", "answer_id", answerID.String())
}

func (a *loggingActions) SupportingContentClicked(ctx context.Context, answerID uuid.UUID) {
	a.log.Info("supporting content clicked", "answer_id", answerID.String())
}

func (a *loggingActions) FollowupQuestionClicked(ctx context.Context, answerID uuid.UUID, question string) {
	a.log.Info("follow-up question clicked", "answer_id", answerID.String(), "question", question)
}

func (a *loggingActions) ExampleClicked(ctx context.Context, value string) {
	a.log.Info("example clicked", "value", value)
}

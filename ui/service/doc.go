// Package service provides the shared logic behind the answer UI handlers.
//
// The service layer is HTTP-agnostic and used by both the JSON API and the
// SSR frontend handlers.
//
// # Usage
//
//	store := service.NewMemoryStore(0)
//	svc := service.New(store)
//
//	a := answerui.NewAnswer(resp.Answer, resp.Thoughts, resp.DataPoints)
//	_ = svc.AddAnswer(ctx, a)
//
//	list, err := svc.ListAnswers(ctx, service.AnswerListParams{Limit: 25})
//
// # Design
//
// The store holds the conversation history for the lifetime of the process
// only; nothing is persisted. Answers are immutable once added.
package service

package service

import (
	"errors"

	"github.com/youssefsiam38/answerui"
)

// Service package errors.
var (
	// ErrNotFound indicates the answer is not in the history.
	ErrNotFound = answerui.ErrAnswerNotFound

	// ErrDuplicate indicates an answer with the same ID already exists.
	ErrDuplicate = errors.New("service: duplicate answer")

	// ErrNilAnswer indicates a nil answer was added.
	ErrNilAnswer = errors.New("service: nil answer")
)

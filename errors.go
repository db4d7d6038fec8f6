package answerui

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	// ErrInvalidConfig is returned when a renderer configuration is invalid
	ErrInvalidConfig = errors.New("answerui: invalid configuration")

	// ErrAnswerNotFound is returned when an answer is not in the history
	ErrAnswerNotFound = errors.New("answerui: answer not found")

	// ErrNilAnswer is returned when a nil answer is passed to a renderer
	ErrNilAnswer = errors.New("answerui: nil answer")
)

// RenderError represents a rendering failure with the answer it concerns
type RenderError struct {
	Op       string    // Operation that failed
	AnswerID uuid.UUID // Answer ID if applicable
	Err      error     // Underlying error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.AnswerID != uuid.Nil {
		return fmt.Sprintf("%s (answer=%s): %v", e.Op, e.AnswerID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError
func NewRenderError(op string, answerID uuid.UUID, err error) *RenderError {
	return &RenderError{
		Op:       op,
		AnswerID: answerID,
		Err:      err,
	}
}

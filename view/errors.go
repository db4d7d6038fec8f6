package view

import "errors"

// View package errors.
var (
	// ErrTriggerDisabled indicates a click on a disabled trigger.
	ErrTriggerDisabled = errors.New("view: trigger disabled")

	// ErrFollowupsHidden indicates a click on a follow-up row that is not shown.
	ErrFollowupsHidden = errors.New("view: follow-up questions hidden")

	// ErrIndexOutOfRange indicates a click on a chip that does not exist.
	ErrIndexOutOfRange = errors.New("view: index out of range")
)

package provision

import "errors"

var (
	// ErrSubmitExhausted is returned when every CreateTable submission
	// failed and the retry budget ran out.
	ErrSubmitExhausted = errors.New("provision: create table retries exhausted")

	// ErrNeverActive is returned when the poll budget ran out before
	// the table reported ACTIVE.
	ErrNeverActive = errors.New("provision: table never became active")
)

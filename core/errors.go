package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated means a call reached the engine without a user.
	ErrNotAuthenticated = errors.New("no authenticated user")

	// ErrNotFound means no record exists at the requested key. Callers
	// treat it as "use defaults"; it is not an empty record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRange means a date range's start falls after its end.
	ErrInvalidRange = errors.New("start date is after end date")
)

// ParseError reports a malformed time, date or number string.
type ParseError struct {
	Input string
	Want  string // what the input was supposed to be, e.g. `"HH:mm" clock time`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Want)
}

// StoreError wraps a failure reported by the persistence collaborator.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

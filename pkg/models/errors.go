package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks errors caused by client input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrClassifierTimeout is returned when a classifier call exceeds its time budget.
	ErrClassifierTimeout = errors.New("classifier call timed out")
	// ErrClassifierUnavailable is returned when a remote tagger cannot be reached
	// or answers with a failure.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

// UnknownClassifierError is returned when a caller asks for a classifier
// that was not configured at startup.
type UnknownClassifierError struct {
	Name string
}

func (e *UnknownClassifierError) Error() string {
	return fmt.Sprintf("unknown classifier %q", e.Name)
}

func (e *UnknownClassifierError) Unwrap() error {
	return ErrInvalidArgument
}

func NewUnknownClassifierError(name string) error {
	return &UnknownClassifierError{Name: name}
}

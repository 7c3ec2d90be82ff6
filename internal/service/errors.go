package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInviteNotFound   = errors.New("invitation not found")
	ErrInviteClosed     = errors.New("invitation closed")
	ErrAlreadyResponded = errors.New("already responded")
	ErrStoreUnavailable = errors.New("store unavailable")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// storeUnavailable marks a backend failure as transient and retryable. Each
// store operation is individually atomic, so a failed call leaves no partial
// row behind.
func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

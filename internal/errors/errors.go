// Package errors provides the domain error taxonomy shared by every component.
// Components wrap these sentinels with context; boundaries match them with Is to
// decide whether to abort, record a retryable failure or fail open.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the request lacks valid authentication credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfiguration indicates a required setting (usually the encryption key) is
	// missing or malformed. Operations fail closed on it.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthenticationFailure indicates a ciphertext did not pass AEAD tag verification
	// or its envelope was malformed. It must never be coerced into plaintext.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrStorage indicates an external read or write failed.
	ErrStorage = errors.New("storage error")

	// ErrDelivery indicates the external send operation failed.
	ErrDelivery = errors.New("delivery error")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapAs wraps err with message and marks it as kind, keeping both in the chain.
func WrapAs(err, kind error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", message, kind, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join combines errors into one, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

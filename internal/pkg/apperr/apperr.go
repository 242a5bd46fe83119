// Package apperr defines the error kinds the HTTP layer maps onto status
// codes. Services wrap storage and provider failures into one of these so
// controllers never inspect driver errors directly.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a lookup that matched no record.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before any side effect ran.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream marks a dependency failure (database, AI provider,
	// cache) after input was accepted.
	ErrUpstream = errors.New("upstream failure")
)

func NotFound(resource, id string) error {
	return fmt.Errorf("%s %q: %w", resource, id, ErrNotFound)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func Upstream(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUpstream)
}

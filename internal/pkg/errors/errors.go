package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the sentinel for a lookup key that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is the sentinel for a caller whose role does not
	// permit the operation.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is the sentinel for rejected input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCodeGeneration is the sentinel for an exhausted code-collision
	// retry loop.
	ErrCodeGeneration = errors.New("code generation failed")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}

func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool       { return errors.Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool   { return errors.Is(err, ErrUnauthorized) }
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

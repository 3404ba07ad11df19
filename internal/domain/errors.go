package domain

import (
	"errors"
	"fmt"
)

// Generation and store failures form a closed set. Callers match with
// errors.Is; the HTTP layer maps each sentinel to a stable wire kind so
// remote callers can match on the same set.
var (
	// ErrEntropyUnavailable means the secure random source could not be
	// read. Fatal to the requested operation only.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrInvalidMethod means an unrecognised cipher method was supplied.
	// Raised before any randomness is consumed.
	ErrInvalidMethod = errors.New("unknown cipher method")

	// ErrPrimitiveFailure means an underlying cryptographic primitive
	// failed; it wraps the descriptive cause when one exists.
	ErrPrimitiveFailure = errors.New("crypto primitive failure")

	// ErrConfigNotFound is returned for lookups of unknown core-config IDs.
	ErrConfigNotFound = errors.New("core config not found")

	// ErrConfigExists is returned when creating a core config whose ID is taken.
	ErrConfigExists = errors.New("core config already exists")
)

// Wire kinds for the sentinels above.
const (
	KindEntropyUnavailable = "entropy_unavailable"
	KindInvalidMethod      = "invalid_method"
	KindPrimitiveFailure   = "primitive_failure"
	KindNotFound           = "not_found"
	KindExists             = "exists"
	KindInternal           = "internal"
)

// ErrorKind returns the wire kind for err.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrEntropyUnavailable):
		return KindEntropyUnavailable
	case errors.Is(err, ErrInvalidMethod):
		return KindInvalidMethod
	case errors.Is(err, ErrPrimitiveFailure):
		return KindPrimitiveFailure
	case errors.Is(err, ErrConfigNotFound):
		return KindNotFound
	case errors.Is(err, ErrConfigExists):
		return KindExists
	default:
		return KindInternal
	}
}

// ErrorFromKind rebuilds the sentinel-wrapped error for a wire kind, so
// clients of the HTTP API see the same closed set as local callers.
func ErrorFromKind(kind, msg string) error {
	var sentinel error
	switch kind {
	case KindEntropyUnavailable:
		sentinel = ErrEntropyUnavailable
	case KindInvalidMethod:
		sentinel = ErrInvalidMethod
	case KindPrimitiveFailure:
		sentinel = ErrPrimitiveFailure
	case KindNotFound:
		sentinel = ErrConfigNotFound
	case KindExists:
		sentinel = ErrConfigExists
	default:
		return errors.New(msg)
	}
	if msg == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

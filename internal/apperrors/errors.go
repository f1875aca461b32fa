package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
type Kind string

const (
	// KindInvalidRoute means a route cannot back a departure (fewer than
	// two stops, duplicate stops, or a stop pair not on the route).
	KindInvalidRoute Kind = "invalid_route"

	// KindUnknownLayoutVariant means the requested bus layout variant is
	// not in the lookup table.
	KindUnknownLayoutVariant Kind = "unknown_layout_variant"

	// KindValidation means the request itself is malformed: a date not in
	// YYYY-MM-DD form, an unparseable phone number.
	KindValidation Kind = "validation_error"

	// KindNotFound means a departure, seat or ticket does not exist.
	KindNotFound Kind = "not_found"

	// KindConflict means the requested state transition is not possible:
	// a segment already booked, a closed seat, or sold tickets blocking
	// a deletion without force.
	KindConflict Kind = "conflict"

	// KindStaleState means a concurrent modification was detected at
	// commit time. Callers may retry the whole operation.
	KindStaleState Kind = "stale_state"

	// KindInternal is everything else.
	KindInternal Kind = "internal"
)

// Error is the structured error surfaced to callers of the inventory core.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with a kind and a human-readable detail.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(err error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

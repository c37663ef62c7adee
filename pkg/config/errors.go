package config

import "github.com/pkg/errors"

// Kind is the error taxonomy of spec.md §7: every recoverable failure
// the core surfaces to a host binding falls into one of these.
type Kind int

const (
	// KindInvalidArgument covers zero-volume AABBs, denormalized
	// normals, non-finite vectors and bad Config fields.
	KindInvalidArgument Kind = iota
	// KindLoaderFailure is raised when the OBJ/MTL loader can't find,
	// parse, or produce any triangles from a scene file.
	KindLoaderFailure
	// KindOutOfMemory is a distinct failure kind the host can react to
	// by abandoning the in-flight render.
	KindOutOfMemory
)

// taggedError attaches a Kind to a wrapped cause via github.com/pkg/errors,
// so a host binding can distinguish the three error kinds programmatically
// without string-matching the message (spec.md §7).
type taggedError struct {
	kind  Kind
	cause error
}

// NewError builds a taggedError of the given kind with a plain message.
func NewError(kind Kind, message string) error {
	return &taggedError{kind: kind, cause: errors.New(message)}
}

// Wrap attaches kind to an existing error, preserving it as the cause.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &taggedError{kind: kind, cause: errors.Wrap(err, message)}
}

func (e *taggedError) Error() string { return e.cause.Error() }

func (e *taggedError) Cause() error { return e.cause }

func (e *taggedError) Unwrap() error { return e.cause }

// KindOf reports the Kind of err if it (or something it wraps) is a
// taggedError, and ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var te *taggedError
	for err != nil {
		if t, ok := err.(*taggedError); ok {
			te = t
			break
		}
		err = errors.Unwrap(err)
	}
	if te == nil {
		return 0, false
	}
	return te.kind, true
}

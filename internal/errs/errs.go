package errs

import (
	"errors"
	"fmt"
)

// Kind categorizes pipeline errors so callers can decide between
// aborting the run and skipping the current item.
type Kind string

const (
	// KindConfiguration marks invalid parameters (bad sort key,
	// unsupported output extension, malformed flag values). Fatal.
	KindConfiguration Kind = "configuration"

	// KindNotFound marks missing roots, label directories or input
	// files needed to establish the set of work. Fatal.
	KindNotFound Kind = "not_found"

	// KindParse marks a malformed annotation line. Recoverable: the
	// line is skipped with a warning.
	KindParse Kind = "parse"

	// KindResolution marks an annotation file with no paired image.
	// Recoverable: the file is skipped with a warning.
	KindResolution Kind = "resolution"

	// KindIO marks a failure writing output. Fatal.
	KindIO Kind = "io"
)

// Error is a categorized pipeline error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsKind reports whether err (or anything it wraps) is an Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Fatal reports whether err should abort the whole run. Parse and
// resolution failures are recovered per item; everything else is fatal.
func Fatal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind != KindParse && e.Kind != KindResolution
	}
	return true
}

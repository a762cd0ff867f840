package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse      ErrKind = iota // malformed markup
	ErrKindRootTag                   // document root is not <widget>
	ErrKindValidation                // field value rejected by its pattern
	ErrKindIO                        // read/write failure from the filesystem
	ErrKindLimit                     // document exceeds configured limits
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindRootTag:
		return "root-tag"
	case ErrKindValidation:
		return "validation"
	case ErrKindIO:
		return "io"
	case ErrKindLimit:
		return "limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Path string // source document path, if known
	Tag  string // offending tag for ErrKindRootTag
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind. This lets the
// sentinels below match any error of their category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is matching by category.
var (
	// ErrParse indicates malformed input markup.
	ErrParse = &Error{Kind: ErrKindParse, Msg: "malformed document"}
	// ErrRootTag indicates the root element is not <widget>.
	ErrRootTag = &Error{Kind: ErrKindRootTag, Msg: "incorrect root node name"}
	// ErrValidation indicates a field value failed validation.
	ErrValidation = &Error{Kind: ErrKindValidation, Msg: "invalid value"}
	// ErrIO indicates a filesystem failure.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrLimit indicates a document limit was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "document limit exceeded"}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// ParseError wraps a decoder failure for the document at path.
func ParseError(path string, err error) *Error {
	msg := "malformed document"
	if path != "" {
		msg = path + ": malformed document"
	}
	return &Error{Kind: ErrKindParse, Msg: msg, Path: path, Err: err}
}

// RootTagError reports a document whose root element is tag instead of root.
func RootTagError(path, root, tag string) *Error {
	return &Error{
		Kind: ErrKindRootTag,
		Msg:  fmt.Sprintf("%s has incorrect root node name (expected %q, was %q)", path, root, tag),
		Path: path,
		Tag:  tag,
	}
}

// ValidationError reports a rejected field value with the field's message.
func ValidationError(msg string) *Error {
	return &Error{Kind: ErrKindValidation, Msg: msg}
}

// IOError wraps a filesystem failure on path.
func IOError(op, path string, err error) *Error {
	return &Error{Kind: ErrKindIO, Msg: op + " " + path, Path: path, Err: err}
}

// LimitError wraps a limit violation.
func LimitError(err error) *Error {
	return &Error{Kind: ErrKindLimit, Msg: "document limit exceeded", Err: err}
}

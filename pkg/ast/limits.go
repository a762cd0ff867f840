package ast

import (
	"errors"
	"fmt"

	"github.com/joshuapare/widgetkit/pkg/types"
)

// Limits defines constraints on document shape to keep malformed or hostile
// input from exhausting memory.
type Limits struct {
	// MaxDepth is the deepest nesting allowed; the root is depth 1.
	MaxDepth int

	// MaxChildren is the maximum number of direct children of one element.
	MaxChildren int

	// MaxAttrs is the maximum number of attributes on one element.
	MaxAttrs int

	// MaxTextLen is the maximum length in bytes of one element's text.
	MaxTextLen int

	// MaxDocumentSize is the maximum size in bytes of raw input.
	MaxDocumentSize int64
}

// DefaultLimits returns limits comfortably above any real manifest.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:        types.MaxDepthDefault,
		MaxChildren:     types.MaxChildrenDefault,
		MaxAttrs:        types.MaxAttrsDefault,
		MaxTextLen:      types.MaxTextLen1MB,
		MaxDocumentSize: types.MaxDocumentSize16MB,
	}
}

// RelaxedLimits returns permissive limits for generated or unusual documents.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:        types.MaxDepthRelaxed,
		MaxChildren:     types.MaxChildrenRelaxed,
		MaxAttrs:        types.MaxAttrsDefault,
		MaxTextLen:      types.MaxTextLen1MB,
		MaxDocumentSize: types.MaxDocumentSize256MB,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:        types.MaxDepthStrict,
		MaxChildren:     types.MaxChildrenStrict,
		MaxAttrs:        types.MaxAttrsStrict,
		MaxTextLen:      types.MaxTextLen64KB,
		MaxDocumentSize: types.MaxDocumentSize1MB,
	}
}

// LimitError represents a limit validation failure.
type LimitError struct {
	Limit   string // Name of the limit that was exceeded
	Current int64  // Current value
	Maximum int64  // Maximum allowed value
	Path    string // Element path (if applicable)
}

func (e *LimitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document limit exceeded at '%s': %s is %d (max %d)",
			e.Path, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("document limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// ValidateElement checks a single element, ignoring its descendants.
func (e *Element) ValidateElement(limits Limits) error {
	if len(e.Children) > limits.MaxChildren {
		return &LimitError{
			Limit:   "MaxChildren",
			Current: int64(len(e.Children)),
			Maximum: int64(limits.MaxChildren),
		}
	}

	if e.Attrs.Len() > limits.MaxAttrs {
		return &LimitError{
			Limit:   "MaxAttrs",
			Current: int64(e.Attrs.Len()),
			Maximum: int64(limits.MaxAttrs),
		}
	}

	if len(e.Text) > limits.MaxTextLen {
		return &LimitError{
			Limit:   "MaxTextLen",
			Current: int64(len(e.Text)),
			Maximum: int64(limits.MaxTextLen),
		}
	}

	return nil
}

// ValidateTree validates e and every descendant. Depth is counted from e.
func (e *Element) ValidateTree(limits Limits) error {
	var err error
	e.Walk(func(el *Element, depth int) bool {
		if err != nil {
			return false
		}
		if depth+1 > limits.MaxDepth {
			err = &LimitError{
				Limit:   "MaxDepth",
				Current: int64(depth + 1),
				Maximum: int64(limits.MaxDepth),
				Path:    el.Path(),
			}
			return false
		}
		if verr := el.ValidateElement(limits); verr != nil {
			le := &LimitError{}
			if errors.As(verr, &le) {
				le.Path = el.Path()
			}
			err = verr
			return false
		}
		return true
	})
	return err
}

// ValidateSize checks a raw input length against MaxDocumentSize.
func (l Limits) ValidateSize(n int) error {
	if l.MaxDocumentSize > 0 && int64(n) > l.MaxDocumentSize {
		return &LimitError{
			Limit:   "MaxDocumentSize",
			Current: int64(n),
			Maximum: l.MaxDocumentSize,
		}
	}
	return nil
}

// LimitViolation wraps a LimitError as a types.Error of kind ErrKindLimit.
func LimitViolation(err error) error {
	le := &LimitError{}
	if errors.As(err, &le) {
		return types.LimitError(le)
	}
	return err
}

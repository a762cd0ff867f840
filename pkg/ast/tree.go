package ast

import "strings"

// Element is a tagged node with text, ordered attributes and ordered children.
type Element struct {
	// Identity
	Tag string // qualified tag name as written, e.g. "widget" or "cdv:foo"

	// Content
	Text  string // character data before the first child
	Tail  string // character data after this element's end tag
	Attrs *Attrs

	// Tree structure
	Parent   *Element
	Children []*Element
}

// NewElement creates a detached element with the given attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{
		Tag:      tag,
		Attrs:    NewAttrs(attrs...),
		Children: make([]*Element, 0),
	}
}

// Get returns the value of attribute key, or "" when absent.
func (e *Element) Get(key string) string {
	return e.Attrs.Value(key)
}

// Set sets attribute key.
func (e *Element) Set(key, value string) {
	if e.Attrs == nil {
		e.Attrs = &Attrs{}
	}
	e.Attrs.Set(key, value)
}

// ReplaceAttrs discards every attribute and installs attrs in order.
func (e *Element) ReplaceAttrs(attrs ...Attr) {
	e.Attrs = NewAttrs(attrs...)
}

// Append adds child as the last child of e and returns it.
// A child attached elsewhere is detached first.
func (e *Element) Append(child *Element) *Element {
	if child.Parent != nil && child.Parent != e {
		child.Parent.Remove(child)
	}
	child.Parent = e
	e.Children = append(e.Children, child)
	return child
}

// AddChild creates a child with tag and attrs and appends it.
func (e *Element) AddChild(tag string, attrs ...Attr) *Element {
	return e.Append(NewElement(tag, attrs...))
}

// Remove detaches child from e and reports whether it was a direct child.
func (e *Element) Remove(child *Element) bool {
	i := e.Index(child)
	if i < 0 {
		return false
	}
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
	child.Parent = nil
	return true
}

// RemoveAll detaches every direct child matching m and returns the count.
func (e *Element) RemoveAll(m Match) int {
	kept := e.Children[:0]
	removed := 0
	for _, c := range e.Children {
		if m(c) {
			c.Parent = nil
			removed++
			continue
		}
		kept = append(kept, c)
	}
	// clear the stale tail so detached elements can be collected
	for i := len(kept); i < len(e.Children); i++ {
		e.Children[i] = nil
	}
	e.Children = kept
	return removed
}

// Index returns the position of child among e's children, or -1.
func (e *Element) Index(child *Element) int {
	for i, c := range e.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Path returns the slash-separated tag path from the root to e.
func (e *Element) Path() string {
	var segments []string
	for cur := e; cur != nil; cur = cur.Parent {
		segments = append(segments, cur.Tag)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, PathSeparator)
}

// Walk visits e and its descendants depth-first in document order.
// Returning false from fn skips the element's children.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(*Element, int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}

// Clone returns a deep, detached copy of e.
func (e *Element) Clone() *Element {
	cp := &Element{
		Tag:      e.Tag,
		Text:     e.Text,
		Tail:     e.Tail,
		Attrs:    e.Attrs.Clone(),
		Children: make([]*Element, 0, len(e.Children)),
	}
	for _, c := range e.Children {
		cp.Append(c.Clone())
	}
	return cp
}

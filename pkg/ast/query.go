package ast

// Match is a predicate over a single element.
type Match func(*Element) bool

// ByTag matches elements whose tag equals tag.
func ByTag(tag string) Match {
	return func(e *Element) bool {
		return e.Tag == tag
	}
}

// ByAttr matches elements with the given tag whose attribute key equals value.
func ByAttr(tag, key, value string) Match {
	return func(e *Element) bool {
		if e.Tag != tag {
			return false
		}
		v, ok := e.Attrs.Get(key)
		return ok && v == value
	}
}

// Find returns the first direct child matching m, or nil.
func (e *Element) Find(m Match) *Element {
	for _, c := range e.Children {
		if m(c) {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child matching m in document order.
func (e *Element) FindAll(m Match) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if m(c) {
			out = append(out, c)
		}
	}
	return out
}

// FindOrAppend returns the first direct child matching m. When none exists,
// it appends the element produced by create and returns it with created set.
func (e *Element) FindOrAppend(m Match, create func() *Element) (el *Element, created bool) {
	if found := e.Find(m); found != nil {
		return found, false
	}
	return e.Append(create()), true
}

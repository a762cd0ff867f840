package ast

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// A returns an Attr. It keeps call sites that pass attribute lists short.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Attrs is an ordered attribute set. Keys are unique; iteration follows
// insertion order. The zero value is an empty set ready to use.
type Attrs struct {
	list []Attr
}

// NewAttrs builds a set from pairs. Later duplicates overwrite earlier
// values in place.
func NewAttrs(pairs ...Attr) *Attrs {
	a := &Attrs{list: make([]Attr, 0, len(pairs))}
	for _, p := range pairs {
		a.Set(p.Name, p.Value)
	}
	return a
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Get returns the value for key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	for _, p := range a.list {
		if p.Name == key {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or "" when absent.
func (a *Attrs) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set updates key in place if present, otherwise appends it.
func (a *Attrs) Set(key, value string) {
	for i := range a.list {
		if a.list[i].Name == key {
			a.list[i].Value = value
			return
		}
	}
	a.list = append(a.list, Attr{Name: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (a *Attrs) Delete(key string) bool {
	for i, p := range a.list {
		if p.Name == key {
			a.list = append(a.list[:i], a.list[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every attribute.
func (a *Attrs) Clear() {
	a.list = a.list[:0]
}

// Keys returns the attribute names in order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.list))
	for i, p := range a.list {
		keys[i] = p.Name
	}
	return keys
}

// All returns a copy of the attribute pairs in order.
func (a *Attrs) All() []Attr {
	if a == nil {
		return nil
	}
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	return out
}

// Clone returns an independent copy.
func (a *Attrs) Clone() *Attrs {
	return &Attrs{list: a.All()}
}

// Equal reports whether both sets hold the same pairs in the same order.
func (a *Attrs) Equal(b *Attrs) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if a.list[i] != b.list[i] {
			return false
		}
	}
	return true
}

// Map returns the attributes as an unordered map.
func (a *Attrs) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for _, p := range a.All() {
		m[p.Name] = p.Value
	}
	return m
}

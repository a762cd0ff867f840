package widget

import "github.com/joshuapare/widgetkit/pkg/ast"

func byPreference(name string) ast.Match {
	return ast.ByAttr(TagPreference, AttrName, name)
}

// SetPreference stores value under name. An existing preference is removed
// and the new one appended last. Booleans and numbers are stored in their
// strconv form, so false becomes "false".
func (d *Document) SetPreference(name string, value any) {
	if old := d.root.Find(byPreference(name)); old != nil {
		d.root.Remove(old)
	}
	v := formatValue(value)
	d.root.AddChild(TagPreference, ast.A(AttrName, name), ast.A(AttrValue, v))
	d.log.Debug().Str("name", name).Str("value", v).Msg("set preference")
}

// Preference returns the value of preference name.
func (d *Document) Preference(name string) (string, bool) {
	el := d.root.Find(byPreference(name))
	if el == nil {
		return "", false
	}
	return el.Attrs.Get(AttrValue)
}

// Preferences lists name/value pairs in document order.
func (d *Document) Preferences() []ast.Attr {
	var out []ast.Attr
	for _, el := range d.root.FindAll(ast.ByTag(TagPreference)) {
		out = append(out, ast.A(el.Get(AttrName), el.Get(AttrValue)))
	}
	return out
}

// RemovePreference removes preference name and reports whether it existed.
func (d *Document) RemovePreference(name string) bool {
	el := d.root.Find(byPreference(name))
	if el == nil {
		return false
	}
	d.log.Debug().Str("name", name).Msg("remove preference")
	return d.root.Remove(el)
}

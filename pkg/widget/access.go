package widget

import "github.com/joshuapare/widgetkit/pkg/ast"

func byOrigin(origin string) ast.Match {
	return ast.ByAttr(TagAccess, AttrOrigin, origin)
}

// SetAccessOrigin whitelists origin. An existing entry for the same origin is
// replaced; the new <access> element is appended with origin first and then
// options in the given order.
func (d *Document) SetAccessOrigin(origin string, options ...ast.Attr) *ast.Element {
	d.RemoveAccessOrigin(origin)
	el := d.root.AddChild(TagAccess, ast.A(AttrOrigin, origin))
	for _, opt := range options {
		el.Set(opt.Name, opt.Value)
	}
	d.log.Debug().Str("origin", origin).Int("options", len(options)).Msg("set access origin")
	return el
}

// RemoveAccessOrigin removes the first entry for origin. Missing origins are
// ignored.
func (d *Document) RemoveAccessOrigin(origin string) bool {
	el := d.root.Find(byOrigin(origin))
	if el == nil {
		return false
	}
	return d.root.Remove(el)
}

// RemoveAccessOrigins removes every <access> element and returns how many
// there were.
func (d *Document) RemoveAccessOrigins() int {
	n := d.root.RemoveAll(ast.ByTag(TagAccess))
	d.log.Debug().Int("removed", n).Msg("remove access origins")
	return n
}

// AccessOrigins lists whitelisted origins in document order.
func (d *Document) AccessOrigins() []string {
	var out []string
	for _, el := range d.root.FindAll(ast.ByTag(TagAccess)) {
		out = append(out, el.Get(AttrOrigin))
	}
	return out
}

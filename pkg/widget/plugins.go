package widget

import "github.com/joshuapare/widgetkit/pkg/ast"

func byPlugin(name string) ast.Match {
	return ast.ByAttr(TagPlugin, AttrName, name)
}

// AddPluginVariable makes sure <plugin name="plugin"> exists and, when vars
// carries a variable name and optionally its value, sets that variable.
// An existing variable keeps its position and only its value changes.
//
//	doc.AddPluginVariable("cordova-plugin-camera")
//	doc.AddPluginVariable("cordova-plugin-facebook", "APP_ID", "1234")
func (d *Document) AddPluginVariable(plugin string, vars ...string) *ast.Element {
	el, created := d.root.FindOrAppend(byPlugin(plugin), func() *ast.Element {
		return ast.NewElement(TagPlugin, ast.A(AttrName, plugin))
	})
	if created {
		d.log.Debug().Str("plugin", plugin).Msg("add plugin")
	}
	if len(vars) == 0 || vars[0] == "" {
		return el
	}

	name, value := vars[0], ""
	if len(vars) > 1 {
		value = vars[1]
	}
	if v := el.Find(ast.ByAttr(TagVariable, AttrName, name)); v != nil {
		v.Set(AttrValue, value)
	} else {
		el.AddChild(TagVariable, ast.A(AttrName, name), ast.A(AttrValue, value))
	}
	d.log.Debug().Str("plugin", plugin).Str("variable", name).Msg("set plugin variable")
	return el
}

// PluginVariables lists the variables of plugin in document order.
func (d *Document) PluginVariables(plugin string) []ast.Attr {
	el := d.root.Find(byPlugin(plugin))
	if el == nil {
		return nil
	}
	var out []ast.Attr
	for _, v := range el.FindAll(ast.ByTag(TagVariable)) {
		out = append(out, ast.A(v.Get(AttrName), v.Get(AttrValue)))
	}
	return out
}

// Plugins lists plugin names in document order.
func (d *Document) Plugins() []string {
	var out []string
	for _, el := range d.root.FindAll(ast.ByTag(TagPlugin)) {
		out = append(out, el.Get(AttrName))
	}
	return out
}

// RemovePlugin removes the plugin and its variables.
func (d *Document) RemovePlugin(name string) bool {
	el := d.root.Find(byPlugin(name))
	if el == nil {
		return false
	}
	return d.root.Remove(el)
}

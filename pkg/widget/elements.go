package widget

import "github.com/joshuapare/widgetkit/pkg/ast"

// SetElement finds the first direct child of the root with tag, appending a
// new one when none exists, then sets its text and replaces all of its
// attributes with attrs. Children of an existing element are kept.
func (d *Document) SetElement(tag, text string, attrs ...ast.Attr) *ast.Element {
	el, created := d.root.FindOrAppend(ast.ByTag(tag), func() *ast.Element {
		return ast.NewElement(tag)
	})
	el.Text = text
	el.ReplaceAttrs(attrs...)
	d.log.Debug().Str("tag", tag).Bool("created", created).Msg("set element")
	return el
}

// SetName sets the display name.
func (d *Document) SetName(name string) { d.SetElement(TagName, name) }

// SetDescription sets the description text.
func (d *Document) SetDescription(description string) { d.SetElement(TagDescription, description) }

// SetContent sets the src of the start page. Other attributes of an existing
// <content> element are kept; its text is cleared.
func (d *Document) SetContent(src string) {
	el, _ := d.root.FindOrAppend(ast.ByTag(TagContent), func() *ast.Element {
		return ast.NewElement(TagContent)
	})
	el.Text = ""
	el.Set(AttrSrc, src)
	d.log.Debug().Str("src", src).Msg("set content")
}

// SetAuthor sets the author name. Empty email or website are omitted.
func (d *Document) SetAuthor(name, email, website string) {
	var attrs []ast.Attr
	if email != "" {
		attrs = append(attrs, ast.A(AttrEmail, email))
	}
	if website != "" {
		attrs = append(attrs, ast.A(AttrHref, website))
	}
	d.SetElement(TagAuthor, name, attrs...)
}

// Element returns the first direct child of the root with tag, or nil.
func (d *Document) Element(tag string) *ast.Element {
	return d.root.Find(ast.ByTag(tag))
}

func (d *Document) elementText(tag string) string {
	if el := d.Element(tag); el != nil {
		return el.Text
	}
	return ""
}

func (d *Document) Name() string        { return d.elementText(TagName) }
func (d *Document) Description() string { return d.elementText(TagDescription) }

// Content returns the src of the start page.
func (d *Document) Content() string {
	if el := d.Element(TagContent); el != nil {
		return el.Get(AttrSrc)
	}
	return ""
}

// Author returns the author name, email and website.
func (d *Document) Author() (name, email, href string) {
	el := d.Element(TagAuthor)
	if el == nil {
		return "", "", ""
	}
	return el.Text, el.Get(AttrEmail), el.Get(AttrHref)
}

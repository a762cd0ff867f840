package widget

import (
	"github.com/joshuapare/widgetkit/internal/xmltext"
	"github.com/joshuapare/widgetkit/pkg/ast"
)

// AddRawXML parses raw as a single-rooted fragment and appends it to the
// root. A byte-order mark or leading whitespace is tolerated.
//
//	doc.AddRawXML(`<platform name="ios"><icon src="res/icon.png" /></platform>`)
func (d *Document) AddRawXML(raw string) (*ast.Element, error) {
	el, err := xmltext.Parse([]byte(raw), xmltext.ParseOptions{Limits: d.limits, Fragment: true})
	if err != nil {
		return nil, parseFailure("", err)
	}
	d.root.Append(el)
	d.log.Debug().Str("tag", el.Tag).Msg("append raw xml")
	return el, nil
}

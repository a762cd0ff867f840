package xmltext

import (
	"bytes"
	"strings"

	"github.com/joshuapare/widgetkit/pkg/ast"
)

// EmitOptions controls serialization.
type EmitOptions struct {
	// Indent is the number of spaces per nesting level. Zero selects
	// DefaultIndent.
	Indent int

	// OmitDeclaration skips the leading XML declaration.
	OmitDeclaration bool
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\r", "&#13;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#09;",
	)
)

// Emit serializes root as an indented document. Children are written in
// tree order and attributes in insertion order, so equal trees always
// produce identical bytes. The output ends with a newline.
func Emit(root *ast.Element, opts EmitOptions) []byte {
	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	var buf bytes.Buffer
	if !opts.OmitDeclaration {
		buf.WriteString(Declaration + LF)
	}
	emitElement(&buf, root, 0, indent)
	buf.WriteString(LF)
	return buf.Bytes()
}

func emitElement(buf *bytes.Buffer, el *ast.Element, depth, indent int) {
	buf.WriteByte('<')
	buf.WriteString(el.Tag)
	for _, a := range el.Attrs.All() {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		attrEscaper.WriteString(buf, a.Value)
		buf.WriteByte('"')
	}

	if el.Text == "" && len(el.Children) == 0 {
		buf.WriteString(SelfClose)
	} else {
		buf.WriteByte('>')
		textEscaper.WriteString(buf, el.Text)
		for _, c := range el.Children {
			buf.WriteString(LF)
			writePad(buf, (depth+1)*indent)
			emitElement(buf, c, depth+1, indent)
		}
		if len(el.Children) > 0 {
			buf.WriteString(LF)
			writePad(buf, depth*indent)
		}
		buf.WriteString("</")
		buf.WriteString(el.Tag)
		buf.WriteByte('>')
	}

	textEscaper.WriteString(buf, el.Tail)
}

func writePad(buf *bytes.Buffer, n int) {
	for range n {
		buf.WriteByte(' ')
	}
}

// Package xmltext converts between widget manifest text and ast element trees.
package xmltext

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/joshuapare/widgetkit/pkg/ast"
)

var (
	errNoRoot        = errors.New("no root element")
	errMultipleRoots = errors.New("multiple root elements")
	errStrayText     = errors.New("character data outside root element")
)

// ParseOptions controls parsing.
type ParseOptions struct {
	// Limits bounds the parsed tree. The zero value selects ast.DefaultLimits.
	Limits ast.Limits

	// Fragment parses a snippet rather than a whole file. Only a byte-order
	// mark is removed, so text ahead of the root element is an error.
	Fragment bool
}

func (o ParseOptions) limits() ast.Limits {
	if o.Limits == (ast.Limits{}) {
		return ast.DefaultLimits()
	}
	return o.Limits
}

// Parse decodes data and builds the element tree of its single root element.
//
// Namespace prefixes are kept as written ("cdv:foo", "xmlns:cdv") so that a
// parsed document serializes back with the same names. Comments, processing
// instructions and directives are dropped. Whitespace that only formats the
// document is dropped; Emit regenerates it.
//
// Limit violations are returned as *ast.LimitError; everything else is a
// syntax error from the decoder or from element matching.
func Parse(data []byte, opts ParseOptions) (*ast.Element, error) {
	limits := opts.limits()
	if err := limits.ValidateSize(len(data)); err != nil {
		return nil, err
	}

	decode := Decode
	if opts.Fragment {
		decode = decodeBOM
	}
	text, err := decode(data)
	if err != nil {
		return nil, err
	}

	d := xml.NewDecoder(bytes.NewReader(text))
	d.Strict = true
	// builtin entities only
	d.Entity = make(map[string]string)
	d.CharsetReader = charsetReader

	var (
		root  *ast.Element
		stack []*ast.Element
	)

	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("line %d: %w", inputLine(d), errMultipleRoots)
			}
			if len(stack)+1 > limits.MaxDepth {
				return nil, &ast.LimitError{
					Limit:   "MaxDepth",
					Current: int64(len(stack) + 1),
					Maximum: int64(limits.MaxDepth),
				}
			}

			el := ast.NewElement(qualify(t.Name), convertAttrs(t.Attr)...)
			if len(stack) == 0 {
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualify(t.Name)
			if len(stack) == 0 {
				return nil, fmt.Errorf("line %d: unexpected end element </%s>", inputLine(d), name)
			}
			top := stack[len(stack)-1]
			if top.Tag != name {
				return nil, fmt.Errorf("line %d: element <%s> closed by </%s>", inputLine(d), top.Tag, name)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if !isBlank(string(t)) {
					return nil, fmt.Errorf("line %d: %w", inputLine(d), errStrayText)
				}
				continue
			}
			top := stack[len(stack)-1]
			if n := len(top.Children); n > 0 {
				top.Children[n-1].Tail += string(t)
			} else {
				top.Text += string(t)
			}

		case xml.Comment, xml.ProcInst, xml.Directive:
			// not part of the element model
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unexpected EOF: element <%s> not closed", stack[len(stack)-1].Tag)
	}

	normalize(root)

	if err := root.ValidateTree(limits); err != nil {
		return nil, err
	}
	return root, nil
}

func inputLine(d *xml.Decoder) int {
	line, _ := d.InputPos()
	return line
}

// qualify renders a raw token name as written in the source.
func qualify(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func convertAttrs(attrs []xml.Attr) []ast.Attr {
	out := make([]ast.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = ast.Attr{Name: qualify(a.Name), Value: a.Value}
	}
	return out
}

// normalize drops formatting whitespace. Blank text is removed everywhere.
// In elements with children, trailing whitespace of the text and of each
// child's tail is indentation and is removed too.
func normalize(el *ast.Element) {
	if len(el.Children) > 0 {
		el.Text = trimFormatting(el.Text)
		for _, c := range el.Children {
			c.Tail = trimFormatting(c.Tail)
			normalize(c)
		}
		return
	}
	if isBlank(el.Text) {
		el.Text = ""
	}
}

func trimFormatting(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

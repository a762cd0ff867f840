package widget

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/joshuapare/widgetkit/internal/writer"
	"github.com/joshuapare/widgetkit/internal/xmltext"
	"github.com/joshuapare/widgetkit/pkg/ast"
	"github.com/joshuapare/widgetkit/pkg/types"
)

// Document is an editable widget manifest bound to a file path.
type Document struct {
	path   string
	root   *ast.Element
	log    zerolog.Logger
	limits ast.Limits
	indent int
	sink   Sink
}

// Open reads and parses the manifest at path.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.IOError("read", path, err)
	}
	return Parse(path, data, opts...)
}

// Parse builds a Document from data. The path is used in error messages and
// as the default write target.
func Parse(path string, data []byte, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	root, err := xmltext.Parse(data, xmltext.ParseOptions{Limits: o.limits})
	if err != nil {
		return nil, parseFailure(path, err)
	}
	if root.Tag != RootTag {
		return nil, types.RootTagError(path, RootTag, root.Tag)
	}

	sink := o.sink
	if sink == nil {
		sink = &writer.FileWriter{Path: path}
	}
	d := &Document{
		path:   path,
		root:   root,
		log:    o.logger.With().Str("path", path).Logger(),
		limits: o.limits,
		indent: o.indent,
		sink:   sink,
	}
	d.log.Debug().Int("children", len(root.Children)).Msg("loaded document")
	return d, nil
}

// parseFailure classifies an error from the codec.
func parseFailure(path string, err error) error {
	var le *ast.LimitError
	if errors.As(err, &le) {
		te := types.LimitError(le)
		te.Path = path
		return te
	}
	return types.ParseError(path, err)
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Root returns the <widget> element. Changes made through it are written
// like any other mutation.
func (d *Document) Root() *ast.Element { return d.root }

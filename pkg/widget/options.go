package widget

import (
	"github.com/rs/zerolog"

	"github.com/joshuapare/widgetkit/pkg/ast"
)

// Sink receives serialized document bytes.
type Sink interface {
	WriteDocument(buf []byte) error
}

// Option configures a Document at load time.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	limits ast.Limits
	indent int
	sink   Sink
}

func newOptions(opts []Option) options {
	o := options{
		logger: zerolog.Nop(),
		limits: ast.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for debug output of mutations and writes.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLimits overrides ast.DefaultLimits for parsing and writing.
func WithLimits(l ast.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithIndent sets the number of spaces per nesting level on write.
// Zero keeps the default of four.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

// WithSink redirects writes. By default a Document writes back to the file
// it was loaded from.
func WithSink(s Sink) Option {
	return func(o *options) { o.sink = s }
}

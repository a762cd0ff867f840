package widget

import (
	"context"
	"io"

	"github.com/joshuapare/widgetkit/internal/xmltext"
	"github.com/joshuapare/widgetkit/pkg/ast"
	"github.com/joshuapare/widgetkit/pkg/types"
)

// Bytes validates the tree against the document limits and serializes it.
func (d *Document) Bytes() ([]byte, error) {
	if err := d.root.ValidateTree(d.limits); err != nil {
		return nil, ast.LimitViolation(err)
	}
	buf := xmltext.Emit(d.root, xmltext.EmitOptions{Indent: d.indent})
	if err := d.limits.ValidateSize(len(buf)); err != nil {
		return nil, ast.LimitViolation(err)
	}
	return buf, nil
}

// WriteSync serializes the document and writes it to its sink, by default
// replacing the source file atomically.
func (d *Document) WriteSync() error {
	return d.Write(context.Background())
}

// Write is WriteSync with cancellation. A context cancelled before the bytes
// reach the sink returns ctx.Err() and leaves the target untouched.
func (d *Document) Write(ctx context.Context) error {
	buf, err := d.Bytes()
	if err != nil {
		return err
	}
	return d.commit(ctx, buf)
}

// WriteAsync serializes the document on the calling goroutine and writes it
// on another one. The channel yields exactly one result and is then closed.
// The document may be mutated again as soon as WriteAsync returns.
func (d *Document) WriteAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	buf, err := d.Bytes()
	if err != nil {
		done <- err
		close(done)
		return done
	}
	go func() {
		defer close(done)
		done <- d.commit(ctx, buf)
	}()
	return done
}

func (d *Document) commit(ctx context.Context, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.sink.WriteDocument(buf); err != nil {
		return types.IOError("write", d.path, err)
	}
	d.log.Debug().Int("bytes", len(buf)).Msg("wrote document")
	return nil
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	buf, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), types.IOError("write", d.path, err)
	}
	return int64(n), nil
}

package widget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/widgetkit/internal/writer"
	"github.com/joshuapare/widgetkit/pkg/ast"
)

// openFixture loads a testdata file with an in-memory sink so tests can
// never overwrite a fixture.
func openFixture(t *testing.T, name string, opts ...Option) (*Document, *writer.MemWriter) {
	t.Helper()
	mem := &writer.MemWriter{}
	opts = append([]Option{WithSink(mem)}, opts...)
	doc, err := Open(filepath.Join("testdata", name), opts...)
	require.NoError(t, err)
	return doc, mem
}

// copyFixture copies a testdata file into a temp dir and returns the copy's path.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func childTags(el *ast.Element) []string {
	tags := make([]string, 0, len(el.Children))
	for _, c := range el.Children {
		tags = append(tags, c.Tag)
	}
	return tags
}

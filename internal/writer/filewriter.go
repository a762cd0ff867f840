// Package writer exposes sinks for serialized documents.
package writer

import (
	"fmt"
	"io"
	"os"
)

// FileWriter replaces the file at Path atomically and durably: the bytes are
// written to a temporary file in the same directory, synced, renamed over
// Path, and the directory entry is synced.
type FileWriter struct {
	Path string
}

// WriteDocument replaces Path with buf.
func (w *FileWriter) WriteDocument(buf []byte) error {
	return replaceFile(w.Path, buf)
}

// Backup copies src to dst, overwriting dst. It is used to keep a copy of a
// document before it is rewritten.
func Backup(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return fmt.Errorf("sync %s: %w", dst, err)
	}
	return out.Close()
}

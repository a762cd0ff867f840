//go:build !windows

package writer

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const defaultPerm = 0o644

// replaceFile writes buf to path via renameio: temp file, fsync, rename.
func replaceFile(path string, buf []byte) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(defaultPerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// no-op once the file has been committed
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(buf); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}

	if err := syncDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("sync directory: %w", err)
	}
	return nil
}

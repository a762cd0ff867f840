//go:build !linux && !freebsd && !darwin && !windows

package writer

// syncDir is a no-op where directory fsync is not portable.
func syncDir(string) error {
	return nil
}

//go:build linux || freebsd || darwin

package writer

import (
	"golang.org/x/sys/unix"
)

// syncDir flushes the directory entry so a completed rename survives a crash.
func syncDir(dir string) error {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)
	return unix.Fsync(fd)
}

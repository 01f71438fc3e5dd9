//go:build unix

package textproc

import (
	"os"

	"golang.org/x/sys/unix"
)

func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func canWrite(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}

// umask reads the process umask. unix.Umask can only swap, so it is restored at once.
func umask() os.FileMode {
	old := unix.Umask(0o022)
	unix.Umask(old)
	return os.FileMode(old)
}

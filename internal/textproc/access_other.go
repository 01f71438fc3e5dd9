//go:build !unix

package textproc

import "os"

func canRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func canWrite(dir string) bool {
	f, err := os.CreateTemp(dir, ".labkit-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

func umask() os.FileMode {
	return 0
}

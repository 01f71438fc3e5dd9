package textproc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// CheckInput verifies path exists, is a regular file and is readable.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return fmt.Errorf("stat '%s': %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrInputIsDir, path)
	}
	if !canRead(path) {
		return fmt.Errorf("%w: '%s'", ErrInputUnreadable, path)
	}
	return nil
}

// CheckOutputDir verifies the directory that will hold path is writable.
func CheckOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() || !canWrite(dir) {
		return fmt.Errorf("%w: '%s'", ErrOutputUnwritable, dir)
	}
	return nil
}

func ReadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Document{}, fmt.Errorf("%w: '%s'", ErrInputUnreadable, path)
		}
		return Document{}, fmt.Errorf("read '%s': %w", path, err)
	}
	if !utf8.Valid(raw) {
		return Document{}, ErrNotText
	}
	return SplitDocument(string(raw)), nil
}

// WriteDocument replaces path atomically via a temp file in the same directory.
// An existing file keeps its permissions; a new one gets 0666 minus the umask.
func WriteDocument(path string, doc Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".labkit-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(doc.String()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, outputMode(path)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o666 &^ umask()
}

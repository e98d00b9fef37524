// Package output delivers a finished PDF: atomically to the local file system
// or to S3-compatible object storage.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned by CreateFile when the destination already exists.
var ErrExists = errors.New("output: destination exists")

// FileMode is the permission of written files.
const FileMode fs.FileMode = 0o644

// WriteFile writes data to path atomically, replacing any existing file.
// The data goes to a temporary file in the same directory which is synced
// and renamed over path, so readers see the old or the new file, never a
// partial one.
func WriteFile(path string, data []byte) error {
	tmp, err := writeTemp(path, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("output: replacing %s: %w", path, err)
	}
	return nil
}

// CreateFile is WriteFile that refuses to replace an existing file. The check
// and the publish are one hard link, so a concurrent writer cannot slip in
// between them.
func CreateFile(path string, data []byte) error {
	tmp, err := writeTemp(path, data)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("output: creating %s: %w", path, err)
	}
	return nil
}

func writeTemp(path string, data []byte) (string, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("output: creating temporary file for %s: %w", path, err)
	}
	tmp := f.Name()

	fail := func(step string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("output: %s %s: %w", step, tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		return fail("writing", err)
	}
	if err := f.Chmod(FileMode); err != nil {
		return fail("setting permissions on", err)
	}
	if err := f.Sync(); err != nil {
		return fail("syncing", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("output: closing %s: %w", tmp, err)
	}
	return tmp, nil
}

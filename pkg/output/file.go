package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrOutputUnwritable is returned when the output file cannot be written.
var ErrOutputUnwritable = errors.New("output file unwritable")

// defaultFileMode applies to output files that do not exist yet.
const defaultFileMode os.FileMode = 0644

// WriteFile writes the content produced by write to path, all or nothing.
// Content goes to a temporary file in the destination directory that is
// renamed over path only after it was written and synced in full. An existing
// path keeps its permission bits. On any error the temporary file is removed
// and path is left untouched.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	if err = os.Chmod(tmp.Name(), fileMode(path)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, path, err)
	}

	return nil
}

func fileMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	// #nosec G302 -- output CSV doesn't need restrictive permissions
	return defaultFileMode
}

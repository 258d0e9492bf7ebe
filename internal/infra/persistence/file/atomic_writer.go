// Package file writes reports and settings through afero.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const tempPattern = ".verve-tmp-*"

// AtomicWriter replaces files whole. A target is either fully rewritten or
// left untouched.
type AtomicWriter struct {
	fs   afero.Fs
	perm os.FileMode
}

// NewAtomicWriter creates a writer on fs producing 0644 files
func NewAtomicWriter(fs afero.Fs) *AtomicWriter {
	return &AtomicWriter{fs: fs, perm: 0o644}
}

// Write stores data at path via a sibling temp file and a rename
func (w *AtomicWriter) Write(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(w.fs, dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = w.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := w.fs.Chmod(tmpPath, w.perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := w.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place at %s: %w", path, err)
	}
	return nil
}

// Package filesystem reads library files for import and writes exports.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"spellsheet/internal/codec"
)

// MaxImportBytes caps how much of an import file is read
const MaxImportBytes = 8 << 20

// ErrTooLarge is returned for import files over MaxImportBytes
var ErrTooLarge = errors.New("file too large")

// Repository reads and writes library files relative to a base directory
type Repository struct {
	baseDir string
}

// NewRepository creates a repository rooted at baseDir
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: expandHome(baseDir)}
}

// BaseDir returns the directory relative paths resolve against
func (r *Repository) BaseDir() string {
	return r.baseDir
}

// ReadImport reads an import file. The returned name is the file's base
// name, which selects the decoder.
func (r *Repository) ReadImport(ctx context.Context, path string) (string, []byte, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	path = r.resolve(path)
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", nil, fmt.Errorf("failed to stat import file: %w", err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxImportBytes {
		return "", nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxImportBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read import file: %w", err)
	}
	if len(data) > MaxImportBytes {
		return "", nil, fmt.Errorf("%w: %s", ErrTooLarge, path)
	}
	return filepath.Base(path), data, nil
}

// WriteExport writes the payload and returns the path written.
// An empty dest writes payload.Filename into the base directory; a dest that
// is an existing directory receives payload.Filename; anything else is used
// as the file path.
func (r *Repository) WriteExport(payload codec.Payload, dest string) (string, error) {
	path := r.exportPath(payload.Filename, dest)
	if err := r.WriteFile(path, payload.Data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes data to path atomically, creating parent directories
func (r *Repository) WriteFile(path string, data []byte) error {
	path = r.resolve(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (r *Repository) exportPath(filename, dest string) string {
	if dest == "" {
		return filepath.Join(r.baseDir, filename)
	}
	dest = r.resolve(dest)
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return filepath.Join(dest, filename)
	}
	return dest
}

func (r *Repository) resolve(path string) string {
	path = expandHome(path)
	if filepath.IsAbs(path) || r.baseDir == "" {
		return path
	}
	return filepath.Join(r.baseDir, path)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

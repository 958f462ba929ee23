package pathabs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotAbsolute = errors.New("path is not absolute")
	ErrNotFound    = errors.New("path does not exist")
)

// Path is an absolute path that existed when it was constructed.
// The zero value holds no path.
type Path struct {
	raw string
}

// New validates raw and returns it as a Path. raw must be absolute and must
// name an existing filesystem entry. The stored form is filepath.Clean(raw).
// Symlinks are not resolved.
func New(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.IndexByte(raw, 0) >= 0 {
		return Path{}, fmt.Errorf("%w: contains NUL: %q", ErrInvalidPath, raw)
	}
	if !filepath.IsAbs(raw) {
		return Path{}, fmt.Errorf("%w: %q", ErrNotAbsolute, raw)
	}

	clean := filepath.Clean(raw)
	if _, err := os.Lstat(clean); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Path{}, fmt.Errorf("%w: %q", ErrNotFound, raw)
		}
		return Path{}, fmt.Errorf("stat %q: %w", raw, err)
	}
	return Path{raw: clean}, nil
}

// Abs resolves raw against the working directory and then calls New.
func Abs(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return Path{}, fmt.Errorf("resolving absolute path: %w", err)
	}
	return New(abs)
}

// String returns the native path string.
func (p Path) String() string {
	return p.raw
}

// IsZero reports whether p holds no path.
func (p Path) IsZero() bool {
	return p.raw == ""
}

// Join appends elem to p. The result is not validated.
func (p Path) Join(elem ...string) string {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = p.raw
	parts = append(parts, elem...)
	return filepath.Join(parts...)
}

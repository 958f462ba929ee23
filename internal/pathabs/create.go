package pathabs

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateFile creates (or truncates) the file at raw and returns its Path.
func CreateFile(raw string) (Path, error) {
	if err := requireAbs(raw); err != nil {
		return Path{}, err
	}
	f, err := os.Create(raw)
	if err != nil {
		return Path{}, fmt.Errorf("create file: %w", err)
	}
	if err := f.Close(); err != nil {
		return Path{}, fmt.Errorf("create file: %w", err)
	}
	return New(raw)
}

// CreateDir creates a single directory. It fails if raw already exists.
func CreateDir(raw string) (Path, error) {
	if err := requireAbs(raw); err != nil {
		return Path{}, err
	}
	if err := os.Mkdir(raw, 0o755); err != nil {
		return Path{}, fmt.Errorf("create dir: %w", err)
	}
	return New(raw)
}

// CreateDirAll creates raw along with any missing ancestors.
func CreateDirAll(raw string) (Path, error) {
	if err := requireAbs(raw); err != nil {
		return Path{}, err
	}
	if err := os.MkdirAll(raw, 0o755); err != nil {
		return Path{}, fmt.Errorf("create dir all: %w", err)
	}
	return New(raw)
}

func requireAbs(raw string) error {
	if !filepath.IsAbs(raw) {
		return fmt.Errorf("%w: %q", ErrNotAbsolute, raw)
	}
	return nil
}

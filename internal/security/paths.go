// Package security confines client-supplied file paths.
package security

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideDirectory is returned for paths that resolve outside the
// permitted directory.
var ErrOutsideDirectory = errors.New("path escapes permitted directory")

// ValidatePathWithinDirectory checks that filePath resolves inside safeDir.
// Symlinks are resolved along the longest existing prefix of both paths, so
// a link inside safeDir that points elsewhere is caught even when the final
// file does not exist yet.
func ValidatePathWithinDirectory(filePath, safeDir string) error {
	canonicalPath, err := canonical(filePath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	canonicalSafeDir, err := canonical(safeDir)
	if err != nil {
		return fmt.Errorf("failed to resolve safe directory: %w", err)
	}

	rel, err := filepath.Rel(canonicalSafeDir, canonicalPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutsideDirectory, filePath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s is not under %s", ErrOutsideDirectory, filePath, safeDir)
	}
	return nil
}

// ResolveWithin joins a relative path onto dir, or accepts an absolute
// path that already lies in dir. The result is cleaned.
func ResolveWithin(dir, path string) (string, error) {
	if path == "" {
		return "", errors.New("empty path")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	path = filepath.Clean(path)
	if err := ValidatePathWithinDirectory(path, dir); err != nil {
		return "", err
	}
	return path, nil
}

// canonical makes p absolute and resolves symlinks in its longest existing
// prefix.
func canonical(p string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(p))
	if err != nil {
		return "", err
	}
	existing, rest := abs, ""
	for {
		if resolved, err := filepath.EvalSymlinks(existing); err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
}

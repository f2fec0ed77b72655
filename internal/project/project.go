// Package project locates the project root for a configuration file and
// recognizes TypeScript configuration file names.
package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// rootMarkers are directory entries whose presence marks a project root.
// The nearest ancestor containing any of them wins.
var rootMarkers = []string{"package.json", "node_modules", ".git"}

// configNamePattern matches tsconfig.json and tagged variants such as
// tsconfig.base.json. Matching is case-insensitive.
var configNamePattern = regexp.MustCompile(`^(?i)tsconfig(\.[^.]+)?\.json$`)

// IsConfigName reports whether name is a TypeScript configuration file name.
// Only the base name is considered; pass filepath.Base for full paths.
func IsConfigName(name string) bool {
	return configNamePattern.MatchString(name)
}

// FindRoot walks up from the file's directory looking for the nearest
// ancestor that contains a root marker. Returns the empty string when no
// enclosing project root exists.
func FindRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := filepath.Dir(abs)
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// RelativePath returns path relative to root for display purposes.
// Falls back to the absolute path when root is empty or unrelated.
func RelativePath(root, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if root == "" {
		return abs
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}

// Package validation provides input validation utilities for shopvault.
package validation

import (
	"fmt"
	"strings"
)

// ValidateFilename validates a filename (not a full path) to prevent
// path traversal. File names here are derived from CDN URLs returned
// by the remote API, which is an external source, so they are checked
// before any filepath.Join.
//
// Returns an error if the filename:
//   - Is empty
//   - Contains path separators (/ or \)
//   - Contains null bytes
//   - Is the literal ".."
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if strings.ContainsRune(filename, 0) {
		return fmt.Errorf("filename contains null byte: %s", filename)
	}

	if strings.ContainsRune(filename, '/') || strings.ContainsRune(filename, '\\') {
		return fmt.Errorf("filename cannot contain path separators: %s", filename)
	}

	// Separators are already rejected, so only the literal ".."
	// remains dangerous; names like "data..v2.csv" stay legal.
	if filename == ".." {
		return fmt.Errorf("filename cannot be '..'")
	}

	return nil
}

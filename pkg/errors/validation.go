package errors

import (
	"strings"
	"unicode"
)

// ValidateGraphName validates a stored graph name for safety and
// correctness. It rejects names that could be used for path traversal when
// the file-backed store maps names onto the filesystem.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "graph name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "graph name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "graph name contains invalid characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "graph name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

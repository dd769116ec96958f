package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateSize checks that a grid size is positive and at most max.
// A non-positive max disables the upper bound.
func ValidateSize(size, max int) error {
	if size < 1 {
		return New(ErrCodeInvalidSize, "size must be at least 1, got %d", size)
	}
	if max > 0 && size > max {
		return New(ErrCodeInvalidSize, "size %d exceeds the maximum of %d", size, max)
	}
	return nil
}

// algorithmNameRegex matches registry keys: lowercase letters and digits.
var algorithmNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// ValidateAlgorithmName checks the shape of an algorithm key. Whether the key
// is registered is decided by the algorithms package.
func ValidateAlgorithmName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm name cannot be empty")
	}
	if !algorithmNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAlgorithm, "invalid algorithm name: %q", name)
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePath validates a raster file path supplied by the user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not end in a separator
func ValidatePath(field, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "%s path cannot be empty", field)
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "%s path too long (max %d characters)", field, maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "%s path contains invalid characters", field)
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "%s path must name a file: %q", field, path)
	}

	return nil
}

// ValidateDistinctPaths rejects an output path that resolves to the input.
func ValidateDistinctPaths(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve input path")
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve output path")
	}
	if in == out {
		return New(ErrCodeInvalidPath, "output path must differ from input: %q", output)
	}
	return nil
}

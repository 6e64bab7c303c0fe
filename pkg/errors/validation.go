package errors

import (
	"strings"
	"unicode"
)

// MaxNameLength bounds node names accepted by [ValidateName].
const MaxNameLength = 256

// ValidateName validates a node name before it is emitted into TikZ markup.
//
// Names are passed through verbatim, so characters that TikZ treats as
// syntax inside a coordinate reference are rejected:
//   - No empty names
//   - No control characters
//   - No parentheses, brackets, braces, commas, semicolons or backslashes
//   - Maximum length of [MaxNameLength] characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "node name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "node name %q contains control characters", name)
		}
	}

	if i := strings.IndexAny(name, `()[]{},;\`); i >= 0 {
		return New(ErrCodeInvalidName, "node name %q contains invalid character %q", name, name[i])
	}

	return nil
}

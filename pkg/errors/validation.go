package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameLength bounds style and theme names.
const maxNameLength = 128

// ValidateStyleName validates a symbolic style name used as a theme key.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 128 characters
func ValidateStyleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStyle, "style name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidStyle, "style name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStyle, "style name %q contains control characters", name)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidStyle, "style name %q contains whitespace", name)
		}
	}

	return nil
}

// themeNameRegex matches names that are safe to use as a file basename.
var themeNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateThemeName validates a theme name before it is turned into a file path.
// It rejects names that could be used for path traversal.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidTheme, "theme name too long (max %d characters)", maxNameLength)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidTheme, "theme name cannot contain path traversal sequences (..)")
	}

	if !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid theme name: %q", name)
	}

	return nil
}

package ansi

import (
	"fmt"

	apperrors "github.com/matzehuels/ansimark/pkg/errors"
)

// Sentinel errors for style resolution. Both abort the whole render call.
var (
	// ErrUnknownStyle is returned when a token has no theme entry and no
	// built-in style.
	ErrUnknownStyle = apperrors.New(apperrors.ErrCodeUnknownStyle, "unknown style")

	// ErrCyclicTheme is returned when resolving a token revisits a name
	// already on its own resolution path.
	ErrCyclicTheme = apperrors.New(apperrors.ErrCodeCyclicTheme, "cyclic theme specification")
)

// StyleError reports a style token that could not be resolved.
//
// For ErrCyclicTheme, Name is the originally requested token, not the name
// that closed the cycle. For ErrUnknownStyle, Name is the name that had no
// entry anywhere.
type StyleError struct {
	Name Style
	Err  error
}

// Error implements the error interface.
func (e *StyleError) Error() string {
	return fmt.Sprintf("%s: %q", apperrors.UserMessage(e.Err), string(e.Name))
}

// Unwrap returns ErrUnknownStyle or ErrCyclicTheme.
func (e *StyleError) Unwrap() error {
	return e.Err
}

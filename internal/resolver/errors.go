package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a resolution refused or failed. Every kind is
// non-retryable: each one needs either corrected user input or an external
// state change before another attempt can succeed.
type Kind int

const (
	// KindInvalidPath means the target string has no extractable filename
	// component.
	KindInvalidPath Kind = iota
	// KindDirectoryUnreadable means the target directory could not be
	// canonicalized, opened, or fully listed.
	KindDirectoryUnreadable
	// KindTargetExists means the destination already exists and force was
	// not requested.
	KindTargetExists
	// KindNoMatch means no directory entry relates to the target.
	KindNoMatch
	// KindAmbiguous means two or more entries relate to the target.
	KindAmbiguous
	// KindRenameFailed means the underlying filesystem rename reported an
	// error.
	KindRenameFailed
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid-path"
	case KindDirectoryUnreadable:
		return "directory-unreadable"
	case KindTargetExists:
		return "target-exists"
	case KindNoMatch:
		return "no-match"
	case KindAmbiguous:
		return "ambiguous"
	case KindRenameFailed:
		return "rename-failed"
	default:
		return "unknown"
	}
}

// Error is a structured refusal or failure from one resolution call. Error
// messages stay single-line and presentation-free; the display package owns
// how refusals are rendered for the terminal.
type Error struct {
	Kind       Kind     // Why the resolution stopped
	Target     string   // Bare target filename (or raw input for KindInvalidPath)
	Candidates []string // Qualifying entries, populated for KindAmbiguous
	Err        error    // Underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidPath:
		return fmt.Sprintf("no filename component in '%s'", e.Target)
	case KindDirectoryUnreadable:
		return fmt.Sprintf("failed to read directory for '%s': %v", e.Target, e.Err)
	case KindTargetExists:
		return fmt.Sprintf("target '%s' already exists", e.Target)
	case KindNoMatch:
		return fmt.Sprintf("no matching files found for '%s'", e.Target)
	case KindAmbiguous:
		return fmt.Sprintf("ambiguous match for '%s': %s", e.Target, strings.Join(e.Candidates, ", "))
	case KindRenameFailed:
		return fmt.Sprintf("failed to rename to '%s': %v", e.Target, e.Err)
	default:
		return fmt.Sprintf("resolution failed for '%s'", e.Target)
	}
}

// Unwrap returns the underlying error for error wrapping support.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err. The second return is false when err is
// not a resolver error.
func KindOf(err error) (Kind, bool) {
	var resErr *Error
	if errors.As(err, &resErr) {
		return resErr.Kind, true
	}
	return 0, false
}

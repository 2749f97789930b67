package marketplace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals a lookup miss that callers treat as normal control
// flow rather than a failure.
var ErrNotFound = errors.New("not found")

// ValidationError reports which required fields were missing or empty.
// No mutation happens when one is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ClipboardError wraps a clipboard failure. It is reported as a notice,
// never treated as fatal.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard access failed: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Clipboard abstracts the host clipboard so the key store can copy tokens
// without depending on the UI toolkit.
type Clipboard interface {
	SetContent(text string) error
}

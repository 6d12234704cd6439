package message

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMessage = errors.New("invalid message")

// DocumentError reports a message document that could not be read or decoded.
type DocumentError struct {
	Message string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("message: %s", e.Message)
}

// ValidationIssue describes one value in a document that failed validation.
type ValidationIssue struct {
	Path    string
	Message string
	Err     error
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// ValidationError collects every issue found while building a payload.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.String())
	}
	return fmt.Sprintf("message: %d invalid value(s): %s", len(e.Issues), strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidMessage }

// Unwrap returns the underlying construction errors so errors.Is can reach
// the slack sentinels.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Err != nil {
			out = append(out, is.Err)
		}
	}
	return out
}

func (e *ValidationError) add(path string, err error) {
	e.Issues = append(e.Issues, ValidationIssue{Path: path, Message: err.Error(), Err: err})
}

func (e *ValidationError) addf(path, format string, args ...any) {
	e.Issues = append(e.Issues, ValidationIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

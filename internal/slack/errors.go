package slack

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidURL       = errors.New("invalid url")
	ErrInvalidParseMode = errors.New("invalid parse mode")
)

// ColorError is returned by ParseColor.
type ColorError struct {
	Input  string
	Reason string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("slack: invalid color %q: %s", e.Input, e.Reason)
}

func (e *ColorError) Is(target error) bool { return target == ErrInvalidColor }

// URLError is returned by ParseURL.
type URLError struct {
	Input  string
	Reason string
	Err    error
}

func (e *URLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slack: invalid url %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("slack: invalid url %q: %s", e.Input, e.Reason)
}

func (e *URLError) Is(target error) bool { return target == ErrInvalidURL }

// Unwrap exposes the net/url parse error, if any.
func (e *URLError) Unwrap() error { return e.Err }

// ParseModeError is returned by ParseParseMode.
type ParseModeError struct {
	Input string
}

func (e *ParseModeError) Error() string {
	return fmt.Sprintf("slack: invalid parse mode %q: must be one of [full none]", e.Input)
}

func (e *ParseModeError) Is(target error) bool { return target == ErrInvalidParseMode }

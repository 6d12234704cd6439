package slack

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is an attachment color: one of the keywords good, warning, danger,
// or a hex code such as #b13d41 or #000.
type Color struct {
	s string
}

// Keyword colors understood by Slack.
var (
	ColorGood    = Color{s: "good"}
	ColorWarning = Color{s: "warning"}
	ColorDanger  = Color{s: "danger"}
)

// ParseColor validates s. Keywords are case sensitive; hex codes keep
// their original case.
func ParseColor(s string) (Color, error) {
	switch s {
	case "good", "warning", "danger":
		return Color{s: s}, nil
	case "":
		return Color{}, &ColorError{Input: s, Reason: "empty"}
	}
	if s[0] != '#' {
		return Color{}, &ColorError{Input: s, Reason: "must be good, warning, danger or a #-prefixed hex code"}
	}
	if !hexColorPattern.MatchString(s) {
		return Color{}, &ColorError{Input: s, Reason: "hex code must have 3 or 6 hex digits"}
	}
	return Color{s: s}, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string { return c.s }

// Encode implements Encoder.
func (c Color) Encode() any { return c.s }

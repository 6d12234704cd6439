package slack

import "fmt"

// ParseMode changes how Slack treats message text.
type ParseMode int

const (
	ParseFull ParseMode = iota
	ParseNone
)

// ParseParseMode maps "full" and "none" to a ParseMode.
func ParseParseMode(s string) (ParseMode, error) {
	switch s {
	case "full":
		return ParseFull, nil
	case "none":
		return ParseNone, nil
	}
	return 0, &ParseModeError{Input: s}
}

func (p ParseMode) String() string {
	switch p {
	case ParseFull:
		return "full"
	case ParseNone:
		return "none"
	}
	return fmt.Sprintf("ParseMode(%d)", int(p))
}

// Encode implements Encoder.
func (p ParseMode) Encode() any { return p.String() }

// LinkNames is the numeric link_names flag. Slack expects 0 or 1, not a boolean.
type LinkNames uint8

const (
	LinkNamesOff LinkNames = 0
	LinkNamesOn  LinkNames = 1
)

// Encode implements Encoder.
func (l LinkNames) Encode() any { return uint8(l) }

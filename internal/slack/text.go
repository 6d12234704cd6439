package slack

import "strings"

// strings.Replacer never rescans its own output, so the & introduced for
// < and > stays single-escaped.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Text is message text that has had &, < and > escaped for Slack.
// See https://api.slack.com/reference/surfaces/formatting#escaping
type Text struct {
	s string
}

// NewText escapes raw and returns it as Text.
func NewText(raw string) Text {
	return Text{s: escaper.Replace(raw)}
}

// String returns the escaped text.
func (t Text) String() string { return t.s }

// Encode implements Encoder.
func (t Text) Encode() any { return t.s }

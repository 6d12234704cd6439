package slack

import "net/url"

// URL is an absolute link or image location. The core trusts a constructed
// URL and embeds its string form without re-validating.
type URL struct {
	s string
}

// ParseURL requires an absolute URL with a scheme and a host.
func ParseURL(s string) (URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URL{}, &URLError{Input: s, Reason: "malformed", Err: err}
	}
	if u.Scheme == "" {
		return URL{}, &URLError{Input: s, Reason: "missing scheme"}
	}
	if u.Host == "" {
		return URL{}, &URLError{Input: s, Reason: "missing host"}
	}
	return URL{s: u.String()}, nil
}

func (u URL) String() string { return u.s }

// Encode implements Encoder.
func (u URL) Encode() any { return u.s }

package slack

import "time"

// Timestamp is sent as integer seconds since the Unix epoch.
type Timestamp struct {
	t time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// Time returns the wrapped instant.
func (ts Timestamp) Time() time.Time { return ts.t }

// Encode implements Encoder. Sub-second precision is dropped.
func (ts Timestamp) Encode() any { return ts.t.Unix() }

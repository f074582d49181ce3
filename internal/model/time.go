package model

import (
	"bytes"
	"time"
)

// Display format constants
const (
	DisplayTimeFormat = "02.01.2006 15:04"
	TimePlaceholder   = "—"
)

// Time is a lenient RFC3339 timestamp. The backend omits or nulls optional
// timestamps and occasionally emits non-parseable values; decoding never
// fails, an unusable value is simply left zero.
type Time struct {
	time.Time
}

// UnmarshalJSON decodes an RFC3339 string, tolerating null, empty and
// malformed values.
func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		t.Time = time.Time{}
		return nil
	}

	t.Time = parsed
	return nil
}

// MarshalJSON encodes the timestamp as an RFC3339 string, or null when zero.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Display renders the timestamp in local time for tables and cards,
// or a dash placeholder when the value is absent.
func (t Time) Display() string {
	if t.IsZero() {
		return TimePlaceholder
	}
	return t.Local().Format(DisplayTimeFormat)
}

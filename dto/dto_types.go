package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// BoardID accepts both string and numeric identifiers on the wire.
type BoardID string

func (id *BoardID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = BoardID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("bid: %w", err)
	}
	*id = BoardID(n.String())
	return nil
}

func (id BoardID) String() string { return string(id) }

// localDateTimeLayout is the zone-less date-time the board API emits.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Timestamp keeps createdDate as sent: either an ISO-like date-time string
// or epoch milliseconds.
type Timestamp struct {
	Raw    string
	Millis *int64
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = Timestamp{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Timestamp{Raw: s}
	default:
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("createdDate: %w", err)
		}
		*t = Timestamp{Millis: &ms}
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Millis != nil {
		return []byte(strconv.FormatInt(*t.Millis, 10)), nil
	}
	if t.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(t.Raw)
}

// IsZero reports whether no creation date was sent.
func (t Timestamp) IsZero() bool {
	return t.Raw == "" && t.Millis == nil
}

// ISO returns the timestamp as a date-time string, converting epoch millis
// into loc.
func (t Timestamp) ISO(loc *time.Location) string {
	if t.Millis != nil {
		return time.UnixMilli(*t.Millis).In(loc).Format("2006-01-02T15:04:05")
	}
	return t.Raw
}

// Time parses the timestamp. Zone-less strings are read in loc.
func (t Timestamp) Time(loc *time.Location) (time.Time, bool) {
	if t.Millis != nil {
		return time.UnixMilli(*t.Millis).In(loc), true
	}
	if t.Raw == "" {
		return time.Time{}, false
	}
	if tt, err := time.Parse(time.RFC3339Nano, t.Raw); err == nil {
		return tt.In(loc), true
	}
	if tt, err := time.ParseInLocation(localDateTimeLayout, t.Raw, loc); err == nil {
		return tt, true
	}
	if tt, err := time.ParseInLocation("2006-01-02T15:04", t.Raw, loc); err == nil {
		return tt, true
	}
	return time.Time{}, false
}

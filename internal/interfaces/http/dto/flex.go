package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var jsonNull = []byte("null")

// FlexInt64 accepts a JSON integer or a string holding one ("3" or 3).
// Fractions and non-numeric strings are rejected.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not an integer", raw)
	}
	*f = FlexInt64(n)
	return nil
}

// Int64 returns the plain value
func (f FlexInt64) Int64() int64 { return int64(f) }

// dateLayouts are tried in order. Layouts without a zone are read in time.Local.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime accepts an RFC 3339 timestamp or a bare calendar date. A bare
// date is midnight in server-local time.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := ParseFlexTime(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// MarshalJSON renders RFC 3339
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return f.Time.MarshalJSON()
}

// ParseFlexTime parses s with the accepted date layouts
func ParseFlexTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid date", s)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts lists the layouts accepted when decoding a [Timestamp].
// The second one is what SQLite's CURRENT_TIMESTAMP produces.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02",
}

// Timestamp is an optional point in time.
//
// Decoding never fails: null, empty and unparsable values produce a zero
// Timestamp with Valid set to false. Callers treat such values as unknown.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// NewTimestamp returns a valid Timestamp holding t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

// ParseTimestamp interprets s using the accepted layouts. The boolean result
// reports whether parsing succeeded.
func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), true
		}
	}

	return Timestamp{}, false
}

// Before reports whether ts is strictly earlier than other. An invalid
// Timestamp is earlier than every valid one.
func (ts Timestamp) Before(other Timestamp) bool {
	switch {
	case !ts.Valid && !other.Valid:
		return false
	case !ts.Valid:
		return true
	case !other.Valid:
		return false
	default:
		return ts.Time.Before(other.Time)
	}
}

// String formats a valid Timestamp in local time, and returns an empty
// string otherwise.
func (ts Timestamp) String() string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.Local().Format("2006-01-02 15:04:05")
}

// MarshalJSON encodes ts as an RFC 3339 string or null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON decodes strings in any accepted layout and numbers as unix
// seconds. Anything else leaves ts invalid without returning an error.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if parsed, ok := ParseTimestamp(s); ok {
			*ts = parsed
		}
		return nil
	}

	if secs, err := strconv.ParseFloat(string(b), 64); err == nil {
		*ts = NewTimestamp(time.Unix(int64(secs), 0).UTC())
	}

	return nil
}

// Scan implements sql.Scanner. Drivers hand timestamps over either as
// time.Time or as text; NULL and unparsable text leave ts invalid.
func (ts *Timestamp) Scan(value any) error {
	*ts = Timestamp{}

	switch v := value.(type) {
	case nil:
	case time.Time:
		*ts = NewTimestamp(v)
	case string:
		*ts, _ = ParseTimestamp(v)
	case []byte:
		*ts, _ = ParseTimestamp(string(v))
	case int64:
		*ts = NewTimestamp(time.Unix(v, 0).UTC())
	}

	return nil
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	if !ts.Valid {
		return nil, nil
	}
	return ts.Time, nil
}

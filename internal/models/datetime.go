package models

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for every timestamp in the API,
// second precision.
const DateTimeLayout = "2006-01-02 15:04:05"

var parseLayouts = []string{
	DateTimeLayout,
	time.RFC3339,
	"2006-01-02",
}

// ParseDateTime accepts the API layout plus a couple of common
// fallbacks clients tend to send.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse datetime %q", s)
}

// FormatDateTime renders an optional timestamp for JSON responses,
// nil stays nil.
func FormatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateTimeLayout)
	return &s
}

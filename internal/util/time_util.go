package util

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Today is the current date at midnight UTC
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// spreadsheets export dates in whatever shape the user typed them
var dateLayouts = []string{
	layout,
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate accepts the layouts above and returns the day at midnight UTC
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", s)
}

// ParseOptionalDate treats blank cells as missing
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

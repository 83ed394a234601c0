package utils

import "time"

// FormatTime renders t as an RFC3339Nano string in UTC.
// Nanosecond precision keeps validity-window comparisons exact across a round trip.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtr is FormatTime for optional timestamps; nil stays nil.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

// ParseTimePtr parses an RFC3339 string pointer into *time.Time.
// Returns nil if input is nil, empty, or parsing fails.
func ParseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	tt := t.UTC()
	return &tt
}

// TimeOrZero returns the dereferenced time or zero time if nil.
func TimeOrZero(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

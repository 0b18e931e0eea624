package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type scanner interface {
	Scan(dest ...interface{}) error
}

// Timestamps are stored as TEXT in UTC with a fixed-width nanosecond
// fraction. RFC3339Nano trims trailing zeros, which breaks lexicographic
// comparison in SQL ("00:00:00.5Z" sorts before "00:00:00Z"); the fixed
// width keeps string order identical to time order. An empty string stands
// for "not set" (notably a session's end timestamp).
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t.UTC(), nil
	}
	t, err = time.Parse(time.RFC3339, raw)
	if err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}

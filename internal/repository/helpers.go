package repository

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// timeLayout has no fractional seconds and is always written in UTC,
	// so stored values compare correctly as text.
	timeLayout = time.RFC3339
)

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTime(time.Now())
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

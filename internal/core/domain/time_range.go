package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// TimeRange is a closed interval of timestamps.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// NewTimeRange validates that from is not after to.
// The pair is never reordered.
func NewTimeRange(from, to time.Time) (TimeRange, error) {
	if from.After(to) {
		err := zerr.Wrap(ErrInvalidTimeRange, "invalid history window")
		err = zerr.With(err, "from", FormatTimestamp(from))
		err = zerr.With(err, "to", FormatTimestamp(to))
		return TimeRange{}, NewValidationError("from must not be after to", err)
	}
	return TimeRange{From: from, To: to}, nil
}

// FormatTimestamp renders t as ISO-8601 in UTC, the form the API expects.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FromISO returns the wire form of the start of the range.
func (r TimeRange) FromISO() string { return FormatTimestamp(r.From) }

// ToISO returns the wire form of the end of the range.
func (r TimeRange) ToISO() string { return FormatTimestamp(r.To) }

// LastWindow returns the range of length d ending at now.
func LastWindow(now time.Time, d time.Duration) TimeRange {
	return TimeRange{From: now.Add(-d), To: now}
}

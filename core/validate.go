// Package core has the statistics aggregation, forecasting and
// milestone/achievement detection engine for statscard.
package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/statscard/statscard/schema"
)

// ErrMalformedSeries marks a data-integrity fault in an input sequence.
// Later stages (forecasting, milestone detection) depend on a contiguous,
// strictly increasing day series, so a malformed record fails the whole run
// instead of being silently dropped or clamped.
var ErrMalformedSeries = errors.New("malformed day series")

// ValidateDaySeries checks the invariants the ingestion layer promises:
// dates strictly increasing at exactly one calendar day apart, all counts
// non-negative. An empty series is valid and yields empty results downstream.
func ValidateDaySeries(days []schema.DayRecord) error {
	for i, d := range days {
		if d.LinesAdded < 0 || d.LinesDeleted < 0 || d.Commits < 0 {
			return fmt.Errorf("%w: negative count on %s", ErrMalformedSeries, d.Date.Format("2006-01-02"))
		}
		if !d.Date.Equal(midnightUTC(d.Date)) {
			return fmt.Errorf("%w: %s is not aligned to UTC midnight", ErrMalformedSeries, d.Date.Format(time.RFC3339))
		}
		if i == 0 {
			continue
		}
		gap := d.Date.Sub(days[i-1].Date)
		switch {
		case gap <= 0:
			return fmt.Errorf("%w: dates not strictly increasing at %s", ErrMalformedSeries, d.Date.Format("2006-01-02"))
		case gap != 24*time.Hour:
			return fmt.Errorf("%w: gap before %s", ErrMalformedSeries, d.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// ValidateCumulativeSeries checks that a series is ordered by date and
// non-decreasing in value.
func ValidateCumulativeSeries(series []schema.SeriesPoint) error {
	for i := 1; i < len(series); i++ {
		if !series[i].Date.After(series[i-1].Date) {
			return fmt.Errorf("%w: dates not strictly increasing at %s", ErrMalformedSeries, series[i].Date.Format("2006-01-02"))
		}
		if series[i].Value < series[i-1].Value {
			return fmt.Errorf("%w: cumulative value decreases at %s", ErrMalformedSeries, series[i].Date.Format("2006-01-02"))
		}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package schema

import "time"

// BucketDays is the width of an activity bucket. Weekly buckets are aligned
// to Monday 00:00 UTC; the same boundaries are used for forecasting and
// peak-week detection.
const BucketDays = 7

// ActivityBucket is a fixed-width resampling of the daily series.
type ActivityBucket struct {
	Start        time.Time `json:"start"` // Monday 00:00 UTC
	LinesChanged int       `json:"lines_changed"`
	Commits      int       `json:"commits"`
}

// SeriesPoint is one point of a cumulative, non-decreasing series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// Horizon identifies how far a forecast extrapolates past the last
// historical bucket.
type Horizon string

// All forecast horizons supported.
const (
	SixMonthHorizon    Horizon = "6m"
	TwelveMonthHorizon Horizon = "12m"
)

// Buckets returns the number of weekly buckets the horizon extends over.
func (h Horizon) Buckets() int {
	switch h {
	case TwelveMonthHorizon:
		return 52
	default:
		return 26
	}
}

// ForecastPoint is one projected value on the fitted trend line.
type ForecastPoint struct {
	Date    time.Time `json:"date"`
	Value   float64   `json:"value"` // Projected cumulative lines changed
	Horizon Horizon   `json:"horizon"`
}

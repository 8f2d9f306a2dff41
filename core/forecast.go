package core

import (
	"time"

	"github.com/statscard/statscard/schema"
)

// BucketStart returns the Monday 00:00 UTC boundary of the bucket containing t.
func BucketStart(t time.Time) time.Time {
	day := midnightUTC(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// ResampleWeekly folds the daily series into Monday-aligned weekly buckets.
// Every bucket between the first and last activity day is present, including
// zero-activity weeks, so bucket indices form a contiguous axis for the
// regression and for peak-week detection.
func ResampleWeekly(days []schema.DayRecord) []schema.ActivityBucket {
	if len(days) == 0 {
		return nil
	}

	first := BucketStart(days[0].Date)
	last := BucketStart(days[len(days)-1].Date)
	n := int(last.Sub(first).Hours()/(24*schema.BucketDays)) + 1

	buckets := make([]schema.ActivityBucket, n)
	for i := range buckets {
		buckets[i].Start = first.AddDate(0, 0, i*schema.BucketDays)
	}
	for _, d := range days {
		i := int(BucketStart(d.Date).Sub(first).Hours() / (24 * schema.BucketDays))
		buckets[i].LinesChanged += d.LinesAdded + d.LinesDeleted
		buckets[i].Commits += d.Commits
	}
	return buckets
}

// ForecastCumulative fits an ordinary least-squares line through the
// cumulative lines-changed series (value against bucket index, over the
// entire history) and evaluates it at the bucket indices extending one
// horizon past the last historical bucket. Fewer than two buckets leave the
// slope undefined, so the projection is empty rather than an error.
// Projected values are a literal linear extrapolation; negative values are
// not clamped.
func ForecastCumulative(buckets []schema.ActivityBucket, horizon schema.Horizon) []schema.ForecastPoint {
	if len(buckets) < 2 {
		return nil
	}

	cumulative := make([]float64, len(buckets))
	sum := 0.0
	for i, b := range buckets {
		sum += float64(b.LinesChanged)
		cumulative[i] = sum
	}

	slope, intercept := fitLine(cumulative)
	n := len(buckets)
	lastStart := buckets[n-1].Start

	points := make([]schema.ForecastPoint, 0, horizon.Buckets())
	for k := 1; k <= horizon.Buckets(); k++ {
		points = append(points, schema.ForecastPoint{
			Date:    lastStart.AddDate(0, 0, k*schema.BucketDays),
			Value:   intercept + slope*float64(n-1+k),
			Horizon: horizon,
		})
	}
	return points
}

// fitLine computes the OLS slope and intercept of ys against x = 0..m-1
// in closed form. The computation is a fixed-order reduction, so identical
// input yields bit-identical output. Callers must pass at least two points.
func fitLine(ys []float64) (slope, intercept float64) {
	m := float64(len(ys))
	sx := m * (m - 1) / 2
	sx2 := m * (m - 1) * (2*m - 1) / 6
	var sy, sxy float64
	for i, y := range ys {
		sy += y
		sxy += float64(i) * y
	}
	denom := m*sx2 - sx*sx
	if denom == 0 {
		return 0, sy / m
	}
	slope = (m*sxy - sx*sy) / denom
	intercept = (sy - slope*sx) / m
	return slope, intercept
}

package core

import (
	"testing"
	"time"

	"github.com/statscard/statscard/schema"
	"github.com/stretchr/testify/assert"
)

func TestValidateDaySeries(t *testing.T) {
	tests := []struct {
		name    string
		days    []schema.DayRecord
		wantErr bool
	}{
		{
			name: "contiguous series is valid",
			days: makeDays(day0, [3]int{1, 0, 1}, [3]int{0, 0, 0}, [3]int{2, 1, 1}),
		},
		{
			name: "empty series is valid",
		},
		{
			name: "negative count",
			days: []schema.DayRecord{
				{Date: day0, LinesAdded: -1},
			},
			wantErr: true,
		},
		{
			name: "not midnight aligned",
			days: []schema.DayRecord{
				{Date: day0.Add(3 * time.Hour)},
			},
			wantErr: true,
		},
		{
			name: "duplicate date",
			days: []schema.DayRecord{
				{Date: day0},
				{Date: day0},
			},
			wantErr: true,
		},
		{
			name: "gap in series",
			days: []schema.DayRecord{
				{Date: day0},
				{Date: day0.AddDate(0, 0, 2)},
			},
			wantErr: true,
		},
		{
			name: "out of order",
			days: []schema.DayRecord{
				{Date: day0.AddDate(0, 0, 1)},
				{Date: day0},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDaySeries(tt.days)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedSeries)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCumulativeSeries(t *testing.T) {
	good := makeSeries(day0, 1, 1, 5)
	assert.NoError(t, ValidateCumulativeSeries(good))

	decreasing := makeSeries(day0, 5, 3)
	assert.ErrorIs(t, ValidateCumulativeSeries(decreasing), ErrMalformedSeries)

	sameDay := []schema.SeriesPoint{
		{Date: day0, Value: 1},
		{Date: day0, Value: 2},
	}
	assert.ErrorIs(t, ValidateCumulativeSeries(sameDay), ErrMalformedSeries)
}

package core

import (
	"sort"

	"github.com/statscard/statscard/schema"
)

// BestYear finds the calendar year (UTC) with the highest summed commit
// count. Ties break to the earliest year. Years with zero commits are never
// reported; if the whole history is zero activity the second return is false.
func BestYear(days []schema.DayRecord) (schema.Achievement, bool) {
	commitsByYear := make(map[int]int64)
	for _, d := range days {
		commitsByYear[d.Date.UTC().Year()] += int64(d.Commits)
	}

	var best schema.Achievement
	found := false
	for year, commits := range commitsByYear {
		if commits == 0 {
			continue
		}
		if !found || commits > best.Value || (commits == best.Value && year < best.Year) {
			best = schema.Achievement{Category: schema.BestYearAchievement, Value: commits, Year: year}
			found = true
		}
	}
	return best, found
}

// TopLanguageByYear picks, for each calendar year present in the yearly
// language totals, the language with the most committed bytes. Ties break
// to the alphabetically first language name. Years whose totals are all
// zero are skipped. Results are ordered ascending by year.
func TopLanguageByYear(yearly map[int]map[string]int64) []schema.Achievement {
	var achievements []schema.Achievement
	for year, langs := range yearly {
		var topName string
		var topBytes int64
		for name, size := range langs {
			if size == 0 {
				continue
			}
			if topName == "" || size > topBytes || (size == topBytes && name < topName) {
				topName, topBytes = name, size
			}
		}
		if topName == "" {
			continue
		}
		achievements = append(achievements, schema.Achievement{
			Category: schema.TopLanguageAchievement,
			Value:    topBytes,
			Language: topName,
			Year:     year,
		})
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].Year < achievements[j].Year })
	return achievements
}

// PeakWeek finds the weekly bucket with the highest commit count, using the
// same Monday-aligned boundaries as the forecaster. Ties break to the
// earliest bucket; an all-zero history yields no achievement.
func PeakWeek(buckets []schema.ActivityBucket) (schema.Achievement, bool) {
	var best schema.Achievement
	found := false
	for _, b := range buckets {
		if b.Commits == 0 {
			continue
		}
		if !found || int64(b.Commits) > best.Value {
			best = schema.Achievement{
				Category: schema.PeakWeekAchievement,
				Value:    int64(b.Commits),
				Week:     b.Start,
			}
			found = true
		}
	}
	return best, found
}

// YearlyLanguageBytes derives per-year language totals from the snapshot
// history: for each calendar year, the maximum byte count observed per
// language across that year's snapshots. The maximum (rather than the last
// value) keeps API noise from shrinking a year's totals.
func YearlyLanguageBytes(snaps []schema.Snapshot) map[int]map[string]int64 {
	yearly := make(map[int]map[string]int64)
	for _, snap := range snaps {
		year := snap.Date.UTC().Year()
		langs := yearly[year]
		if langs == nil {
			langs = make(map[string]int64)
			yearly[year] = langs
		}
		for name, size := range snap.LanguageBytes {
			if size > langs[name] {
				langs[name] = size
			}
		}
	}
	return yearly
}

// EvaluateAchievements computes the full per-category achievement set for
// one run: best year and peak week from the day series, top language per
// year from the snapshot-derived yearly totals.
func EvaluateAchievements(days []schema.DayRecord, yearly map[int]map[string]int64) []schema.Achievement {
	var achievements []schema.Achievement
	if best, ok := BestYear(days); ok {
		achievements = append(achievements, best)
	}
	achievements = append(achievements, TopLanguageByYear(yearly)...)
	if peak, ok := PeakWeek(ResampleWeekly(days)); ok {
		achievements = append(achievements, peak)
	}
	return achievements
}

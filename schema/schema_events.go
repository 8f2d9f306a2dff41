package schema

import "time"

// Metric identifies which cumulative series a milestone belongs to.
type Metric string

// All milestone metrics supported.
const (
	ContributionsMetric Metric = "contributions"
	StarsMetric         Metric = "stars"
	ReposMetric         Metric = "repos"
)

// Milestone marks the first date a cumulative metric reached a threshold.
// Detection is recomputed fresh each run from the full historical series,
// so identical inputs always reproduce the identical milestone set.
type Milestone struct {
	Date      time.Time `json:"date"`
	Metric    Metric    `json:"metric"`
	Threshold int       `json:"threshold"`
}

// AchievementCategory identifies a superlative record category.
type AchievementCategory string

// All achievement categories supported.
const (
	BestYearAchievement    AchievementCategory = "best-year"
	TopLanguageAchievement AchievementCategory = "top-language"
	PeakWeekAchievement    AchievementCategory = "peak-week"
)

// Achievement is a superlative record computed once per run. The supporting
// period is Year for best-year and top-language, and Week for peak-week.
type Achievement struct {
	Category AchievementCategory `json:"category"`
	Value    int64               `json:"value"`              // Commits for best-year/peak-week, bytes for top-language
	Language string              `json:"language,omitempty"` // Set for top-language only
	Year     int                 `json:"year,omitempty"`
	Week     time.Time           `json:"week,omitempty"` // Bucket start, set for peak-week only
}

// Default milestone threshold ladders. Each ladder is strictly ascending;
// values can be overridden through configuration.
var (
	DefaultContribThresholds = []int{100, 250, 500, 1000, 1500, 2000, 2500}
	DefaultStarThresholds    = []int{1, 5, 10, 20, 30, 50}
	DefaultRepoThresholds    = []int{5, 10, 25, 50}
)

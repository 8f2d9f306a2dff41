package schema

// RunResult bundles every derived statistic produced by one run. Artifact
// producers (tables, cards, MCP tools) receive a complete result or none;
// there is no partial or streaming consumption.
type RunResult struct {
	Totals         AggregateTotals  `json:"totals"`
	Languages      []LanguageStat   `json:"languages"`
	Buckets        []ActivityBucket `json:"buckets"`
	ForecastSix    []ForecastPoint  `json:"forecast_6m"`
	ForecastTwelve []ForecastPoint  `json:"forecast_12m"`
	Milestones     []Milestone      `json:"milestones"`
	Achievements   []Achievement    `json:"achievements"`
}

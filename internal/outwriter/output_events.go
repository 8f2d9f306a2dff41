package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMilestones outputs every detected threshold crossing, dispatching on
// the configured output format.
func WriteMilestones(milestones []schema.Milestone, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, milestones)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMilestonesCSV(w, milestones)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMilestonesTable(w, milestones, cfg, duration)
		}, "Wrote table")
	}
}

func writeMilestonesCSV(w io.Writer, milestones []schema.Milestone) error {
	header := []string{"date", "metric", "threshold"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range milestones {
			rec := []string{
				m.Date.Format(contract.DateFormat),
				string(m.Metric),
				strconv.Itoa(m.Threshold),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeMilestonesTable(w io.Writer, milestones []schema.Milestone, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Metric", "Threshold"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range milestones {
		data = append(data, []string{
			m.Date.Format(contract.DateFormat),
			paint(cfg, contract.MetricColor(m.Metric), string(m.Metric)),
			commas(m.Threshold),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s%d milestones reached. Completed in %v\n", emoji(cfg, "🏁"), len(milestones), duration)
	return err
}

// WriteAchievements outputs the per-category superlative records, dispatching
// on the configured output format.
func WriteAchievements(achievements []schema.Achievement, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, achievements)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAchievementsCSV(w, achievements)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAchievementsTable(w, achievements, cfg, duration)
		}, "Wrote table")
	}
}

// achievementPeriod renders the supporting period column: the year for
// best-year and top-language, the bucket start for peak-week.
func achievementPeriod(a schema.Achievement) string {
	if a.Category == schema.PeakWeekAchievement {
		return a.Week.Format(contract.DateFormat)
	}
	return strconv.Itoa(a.Year)
}

func writeAchievementsCSV(w io.Writer, achievements []schema.Achievement) error {
	header := []string{"category", "period", "language", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, a := range achievements {
			rec := []string{
				string(a.Category),
				achievementPeriod(a),
				a.Language,
				strconv.FormatInt(a.Value, 10),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeAchievementsTable(w io.Writer, achievements []schema.Achievement, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Period", "Language", "Value"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, a := range achievements {
		data = append(data, []string{
			paint(cfg, contract.GoldColor, string(a.Category)),
			achievementPeriod(a),
			a.Language,
			commas(a.Value),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%s%d achievements. Completed in %v\n", emoji(cfg, "🏆"), len(achievements), duration)
	return err
}

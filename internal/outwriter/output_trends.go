package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// recentBucketLimit caps the number of weekly rows shown in table output.
// CSV and JSON always carry the full series.
const recentBucketLimit = 12

// trendsRenderModel bundles the weekly series with both projections for
// structured output.
type trendsRenderModel struct {
	Buckets        []schema.ActivityBucket `json:"buckets"`
	ForecastSix    []schema.ForecastPoint  `json:"forecast_6m"`
	ForecastTwelve []schema.ForecastPoint  `json:"forecast_12m"`
}

// WriteTrends outputs the weekly activity buckets along with the 6- and
// 12-month projections, dispatching on the configured output format.
func WriteTrends(buckets []schema.ActivityBucket, six, twelve []schema.ForecastPoint, cfg *contract.Config, duration time.Duration) error {
	model := trendsRenderModel{Buckets: buckets, ForecastSix: six, ForecastTwelve: twelve}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsCSV(w, model)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(w, model, cfg, duration)
		}, "Wrote table")
	}
}

func writeTrendsCSV(w io.Writer, model trendsRenderModel) error {
	header := []string{"kind", "date", "lines_changed", "commits", "projected_value", "horizon"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range model.Buckets {
			rec := []string{
				"bucket",
				b.Start.Format(contract.DateFormat),
				strconv.Itoa(b.LinesChanged),
				strconv.Itoa(b.Commits),
				"", "",
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		for _, points := range [][]schema.ForecastPoint{model.ForecastSix, model.ForecastTwelve} {
			for _, p := range points {
				rec := []string{
					"forecast",
					p.Date.Format(contract.DateFormat),
					"", "",
					strconv.FormatFloat(p.Value, 'f', 2, 64),
					string(p.Horizon),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// activityBar renders a proportional bar for one bucket's lines changed.
// Any non-zero value gets at least one cell so quiet weeks stay visible.
func activityBar(value, peak, width int) string {
	if peak <= 0 || width <= 0 {
		return ""
	}
	n := value * width / peak
	if value > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("▇", n)
}

// trendsBarWidth budgets the bar column from the terminal width, after the
// date and numeric columns take their share.
func trendsBarWidth(cfg *contract.Config) int {
	available := terminalWidth(cfg) - 50
	if available < 0 {
		return 0
	}
	if available > 30 {
		return 30
	}
	return available
}

func writeTrendsTable(w io.Writer, model trendsRenderModel, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Week", "Lines changed", "Commits", "Activity"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	buckets := model.Buckets
	if len(buckets) > recentBucketLimit {
		buckets = buckets[len(buckets)-recentBucketLimit:]
	}
	peak := 0
	for _, b := range buckets {
		if b.LinesChanged > peak {
			peak = b.LinesChanged
		}
	}
	barWidth := trendsBarWidth(cfg)
	var data [][]string
	for _, b := range buckets {
		data = append(data, []string{
			b.Start.Format(contract.DateFormat),
			paint(cfg, contract.GreenColor, commas(b.LinesChanged)),
			commas(b.Commits),
			activityBar(b.LinesChanged, peak, barWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, points := range [][]schema.ForecastPoint{model.ForecastSix, model.ForecastTwelve} {
		if len(points) == 0 {
			continue
		}
		last := points[len(points)-1]
		if _, err := fmt.Fprintf(w, "%sProjected cumulative lines changed by %s (%s): %s\n",
			emoji(cfg, "📈"), last.Date.Format(contract.DateFormat), last.Horizon, commas(int64(last.Value))); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Showing last %d of %d weeks. Completed in %v\n", len(buckets), len(model.Buckets), duration)
	return err
}

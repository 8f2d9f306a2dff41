package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// WriteHTMLReport renders the interactive trends report into the render
// directory. The report carries the full weekly series, both projections and
// the language distribution, complementing the size-constrained SVG cards.
func WriteHTMLReport(result *schema.RunResult, cfg *contract.Config) error {
	if err := os.MkdirAll(cfg.RenderDir, 0o755); err != nil {
		return fmt.Errorf("failed to create render dir: %w", err)
	}

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		buildTrendChart(result, cfg),
		buildLanguagePie(result),
	)

	return writeArtifact(filepath.Join(cfg.RenderDir, ReportFile), func(w io.Writer) error {
		return page.Render(w)
	})
}

// buildTrendChart plots the observed cumulative lines changed alongside the
// 6- and 12-month projections on a shared weekly axis.
func buildTrendChart(result *schema.RunResult, cfg *contract.Config) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Cumulative Activity",
			Subtitle: fmt.Sprintf("Weekly lines changed for %s with linear projections", cfg.Username),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := make([]string, 0, len(result.Buckets)+len(result.ForecastTwelve))
	observed := make([]opts.LineData, 0, len(result.Buckets))
	running := 0
	for _, b := range result.Buckets {
		labels = append(labels, b.Start.Format(contract.DateFormat))
		running += b.LinesChanged
		observed = append(observed, opts.LineData{Value: running})
	}
	for _, p := range result.ForecastTwelve {
		labels = append(labels, p.Date.Format(contract.DateFormat))
	}

	line.SetXAxis(labels)
	line.AddSeries("Observed", observed)
	line.AddSeries("6m projection", forecastSeries(len(result.Buckets), result.ForecastSix))
	line.AddSeries("12m projection", forecastSeries(len(result.Buckets), result.ForecastTwelve))
	return line
}

// forecastSeries pads a projection with empty cells so it starts where the
// observed series ends.
func forecastSeries(observed int, forecast []schema.ForecastPoint) []opts.LineData {
	data := make([]opts.LineData, 0, observed+len(forecast))
	for range observed {
		data = append(data, opts.LineData{Value: "-"})
	}
	for _, p := range forecast {
		data = append(data, opts.LineData{Value: p.Value})
	}
	return data
}

func buildLanguagePie(result *schema.RunResult) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Language Share",
			Subtitle: "Committed bytes across non-excluded repositories",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	data := make([]opts.PieData, 0, len(result.Languages))
	for _, l := range result.Languages {
		data = append(data, opts.PieData{Name: l.Name, Value: l.Bytes})
	}
	pie.AddSeries("languages", data)
	return pie
}

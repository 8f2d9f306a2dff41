package render

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var cardTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Card geometry constants shared by all templates.
const (
	cardWidth    = 420
	cardHeaderY  = 48
	cardRowPitch = 26
	cardFooterY  = 20
	barMaxWidth  = 200
	maxCardRows  = 8
)

// Bar palette cycled through the language card, loosely matching GitHub's
// language colors for the common cases.
var barPalette = []string{"#00ADD8", "#3572A5", "#DEA584", "#F1E05A", "#B07219", "#701516"}

// cardRow is one label/value line positioned inside a card.
type cardRow struct {
	Label string
	Value string
	Y     int
}

// rowCard is the shared view model for the list-style cards.
type rowCard struct {
	Title  string
	Height int
	Rows   []cardRow
	Empty  string
}

func buildRowCard(title string, labels, values []string) rowCard {
	card := rowCard{Title: title}
	for i := range labels {
		if i >= maxCardRows {
			break
		}
		card.Rows = append(card.Rows, cardRow{
			Label: labels[i],
			Value: values[i],
			Y:     cardHeaderY + i*cardRowPitch,
		})
	}
	card.Height = cardHeaderY + len(card.Rows)*cardRowPitch + cardFooterY
	if len(card.Rows) == 0 {
		card.Empty = "No data yet"
		card.Height = cardHeaderY + cardFooterY + cardRowPitch
	}
	return card
}

func renderOverviewCard(w io.Writer, result *schema.RunResult, cfg *contract.Config) error {
	t := result.Totals
	labels := []string{"Stars", "Forks", "Contributions", "Lines changed", "Views", "Repositories"}
	values := []string{
		humanize.Comma(int64(t.Stars)),
		humanize.Comma(int64(t.Forks)),
		humanize.Comma(int64(t.Contributions)),
		humanize.Comma(int64(t.LinesChanged)),
		humanize.Comma(int64(t.Views)),
		humanize.Comma(int64(t.RepoCount)),
	}
	card := buildRowCard(cfg.Username+"'s GitHub Stats", labels, values)
	return cardTemplates.ExecuteTemplate(w, "rows.svg.tmpl", card)
}

func renderMilestonesCard(w io.Writer, result *schema.RunResult, cfg *contract.Config) error {
	var labels, values []string
	milestones := result.Milestones
	// Most recent milestones are the interesting ones on a small card.
	if len(milestones) > maxCardRows {
		milestones = milestones[len(milestones)-maxCardRows:]
	}
	for _, m := range milestones {
		labels = append(labels, fmt.Sprintf("%s %s", humanize.Comma(int64(m.Threshold)), m.Metric))
		values = append(values, m.Date.Format(contract.DateFormat))
	}
	card := buildRowCard("Milestones", labels, values)
	return cardTemplates.ExecuteTemplate(w, "rows.svg.tmpl", card)
}

func renderAchievementsCard(w io.Writer, result *schema.RunResult, cfg *contract.Config) error {
	var labels, values []string
	for _, a := range result.Achievements {
		switch a.Category {
		case schema.BestYearAchievement:
			labels = append(labels, fmt.Sprintf("Best year: %d", a.Year))
			values = append(values, humanize.Comma(a.Value)+" commits")
		case schema.TopLanguageAchievement:
			labels = append(labels, fmt.Sprintf("Top language %d: %s", a.Year, a.Language))
			values = append(values, humanize.Bytes(uint64(a.Value)))
		case schema.PeakWeekAchievement:
			labels = append(labels, "Peak week: "+a.Week.Format(contract.DateFormat))
			values = append(values, humanize.Comma(a.Value)+" commits")
		}
	}
	card := buildRowCard("Achievements", labels, values)
	return cardTemplates.ExecuteTemplate(w, "rows.svg.tmpl", card)
}

// langBar is one horizontal bar in the language card.
type langBar struct {
	Name    string
	Percent string
	Color   string
	Width   int
	Y       int
}

type languagesCard struct {
	Title  string
	Height int
	Bars   []langBar
	Empty  string
}

func renderLanguagesCard(w io.Writer, result *schema.RunResult, cfg *contract.Config) error {
	card := languagesCard{Title: "Most Used Languages"}
	for i, l := range result.Languages {
		if i >= maxCardRows {
			break
		}
		card.Bars = append(card.Bars, langBar{
			Name:    l.Name,
			Percent: fmt.Sprintf("%.1f%%", l.Share*100),
			Color:   barPalette[i%len(barPalette)],
			Width:   int(l.Share * barMaxWidth),
			Y:       cardHeaderY + i*cardRowPitch,
		})
	}
	card.Height = cardHeaderY + len(card.Bars)*cardRowPitch + cardFooterY
	if len(card.Bars) == 0 {
		card.Empty = "No language data yet"
		card.Height = cardHeaderY + cardFooterY + cardRowPitch
	}
	return cardTemplates.ExecuteTemplate(w, "languages.svg.tmpl", card)
}

// Trend card plot area geometry.
const (
	plotLeft   = 30
	plotTop    = 50
	plotWidth  = 360
	plotHeight = 130
)

type trendsCard struct {
	Title          string
	Height         int
	History        string // Polyline points for the observed cumulative series
	ForecastSix    string // Polyline points for the 6-month projection
	ForecastTwelve string // Polyline points for the 12-month projection
	Empty          string
}

func renderTrendsCard(w io.Writer, result *schema.RunResult, cfg *contract.Config) error {
	card := trendsCard{Title: "Activity Trend", Height: plotTop + plotHeight + 40}

	cumulative := make([]float64, len(result.Buckets))
	running := 0.0
	for i, b := range result.Buckets {
		running += float64(b.LinesChanged)
		cumulative[i] = running
	}

	total := len(cumulative) + len(result.ForecastTwelve)
	if total < 2 || len(cumulative) == 0 {
		card.Empty = "Not enough history yet"
		return cardTemplates.ExecuteTemplate(w, "trends.svg.tmpl", card)
	}

	// One shared scale keeps the observed and projected polylines aligned.
	peak := cumulative[len(cumulative)-1]
	for _, p := range result.ForecastTwelve {
		if p.Value > peak {
			peak = p.Value
		}
	}
	for _, p := range result.ForecastSix {
		if p.Value > peak {
			peak = p.Value
		}
	}
	scale := newPlotScale(total, peak)

	card.History = polyline(scale, 0, cumulative)
	card.ForecastSix = forecastPolyline(scale, len(cumulative), cumulative, result.ForecastSix)
	card.ForecastTwelve = forecastPolyline(scale, len(cumulative), cumulative, result.ForecastTwelve)
	return cardTemplates.ExecuteTemplate(w, "trends.svg.tmpl", card)
}

type plotScale struct {
	points int
	peak   float64
}

func newPlotScale(points int, peak float64) plotScale {
	if peak <= 0 {
		peak = 1
	}
	return plotScale{points: points, peak: peak}
}

func (s plotScale) x(i int) int {
	if s.points <= 1 {
		return plotLeft
	}
	return plotLeft + i*plotWidth/(s.points-1)
}

func (s plotScale) y(v float64) int {
	return plotTop + plotHeight - int(v/s.peak*plotHeight)
}

func polyline(s plotScale, offset int, values []float64) string {
	points := ""
	for i, v := range values {
		if i > 0 {
			points += " "
		}
		points += strconv.Itoa(s.x(offset+i)) + "," + strconv.Itoa(s.y(v))
	}
	return points
}

// forecastPolyline anchors a projection at the last observed point so the
// dashed line continues the solid one without a gap.
func forecastPolyline(s plotScale, offset int, cumulative []float64, forecast []schema.ForecastPoint) string {
	if len(forecast) == 0 || len(cumulative) == 0 {
		return ""
	}
	values := make([]float64, 0, len(forecast)+1)
	values = append(values, cumulative[len(cumulative)-1])
	for _, p := range forecast {
		values = append(values, p.Value)
	}
	return polyline(s, offset-1, values)
}

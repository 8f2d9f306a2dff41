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

// WriteOverview outputs the aggregate totals, dispatching on the configured
// output format.
func WriteOverview(totals schema.AggregateTotals, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, totals)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewCSV(w, totals)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverviewTable(w, totals, cfg, duration)
		}, "Wrote table")
	}
}

// overviewRows returns the metric rows in display order. Keeping the order
// here makes the table, CSV and card renderings agree.
func overviewRows(totals schema.AggregateTotals) [][2]string {
	return [][2]string{
		{"stars", strconv.Itoa(totals.Stars)},
		{"forks", strconv.Itoa(totals.Forks)},
		{"contributions", strconv.Itoa(totals.Contributions)},
		{"lines_changed", strconv.Itoa(totals.LinesChanged)},
		{"lines_added", strconv.Itoa(totals.LinesAdded)},
		{"lines_deleted", strconv.Itoa(totals.LinesDeleted)},
		{"views", strconv.Itoa(totals.Views)},
		{"repo_count", strconv.Itoa(totals.RepoCount)},
	}
}

func writeOverviewCSV(w io.Writer, totals schema.AggregateTotals) error {
	return writeCSVWithHeader(w, []string{"metric", "value"}, func(cw *csv.Writer) error {
		for _, row := range overviewRows(totals) {
			if err := cw.Write([]string{row[0], row[1]}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeOverviewTable(w io.Writer, totals schema.AggregateTotals, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{emoji(cfg, "⭐") + "Stars", paint(cfg, contract.GoldColor, commas(totals.Stars))},
		{emoji(cfg, "🍴") + "Forks", commas(totals.Forks)},
		{emoji(cfg, "📝") + "Contributions", paint(cfg, contract.PurpleColor, commas(totals.Contributions))},
		{emoji(cfg, "➕") + "Lines added", paint(cfg, contract.GreenColor, commas(totals.LinesAdded))},
		{emoji(cfg, "➖") + "Lines deleted", paint(cfg, contract.RedColor, commas(totals.LinesDeleted))},
		{emoji(cfg, "🔀") + "Lines changed", commas(totals.LinesChanged)},
		{emoji(cfg, "👀") + "Views", commas(totals.Views)},
		{emoji(cfg, "📦") + "Repositories", paint(cfg, contract.BlueColor, commas(totals.RepoCount))},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Overview for %s completed in %v\n", cfg.Username, duration)
	return err
}

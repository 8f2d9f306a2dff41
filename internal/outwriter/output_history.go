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

// WriteSnapshots outputs the persisted snapshot history, dispatching on the
// configured output format.
func WriteSnapshots(snaps []schema.Snapshot, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, snaps)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSnapshotsCSV(w, snaps)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSnapshotsTable(w, snaps, cfg, duration)
		}, "Wrote table")
	}
}

func writeSnapshotsCSV(w io.Writer, snaps []schema.Snapshot) error {
	header := []string{"date", "stars", "forks", "contributions", "views", "repo_count", "lines_added", "lines_deleted"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range snaps {
			rec := []string{
				s.Date.Format(contract.DateFormat),
				strconv.Itoa(s.Stars),
				strconv.Itoa(s.Forks),
				strconv.Itoa(s.Contributions),
				strconv.Itoa(s.Views),
				strconv.Itoa(s.RepoCount),
				strconv.Itoa(s.LinesAdded),
				strconv.Itoa(s.LinesDeleted),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeSnapshotsTable(w io.Writer, snaps []schema.Snapshot, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Stars", "Contrib", "Repos", "Views", "Added", "Deleted"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range snaps {
		data = append(data, []string{
			s.Date.Format(contract.DateFormat),
			paint(cfg, contract.GoldColor, commas(s.Stars)),
			paint(cfg, contract.PurpleColor, commas(s.Contributions)),
			paint(cfg, contract.BlueColor, commas(s.RepoCount)),
			commas(s.Views),
			paint(cfg, contract.GreenColor, commas(s.LinesAdded)),
			paint(cfg, contract.RedColor, commas(s.LinesDeleted)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d snapshots on record. Completed in %v\n", len(snaps), duration)
	return err
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLanguages outputs the normalized language share distribution,
// dispatching on the configured output format.
func WriteLanguages(langs []schema.LanguageStat, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, langs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguagesCSV(w, langs)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguagesTable(w, langs, cfg, duration)
		}, "Wrote table")
	}
}

func writeLanguagesCSV(w io.Writer, langs []schema.LanguageStat) error {
	header := []string{"rank", "language", "bytes", "share"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, l := range langs {
			rec := []string{
				strconv.Itoa(i + 1),
				l.Name,
				strconv.FormatInt(l.Bytes, 10),
				strconv.FormatFloat(l.Share, 'f', 6, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeLanguagesTable(w io.Writer, langs []schema.LanguageStat, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Language", "Bytes", "Share"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, l := range langs {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			l.Name,
			humanize.Bytes(uint64(l.Bytes)),
			fmt.Sprintf("%.1f%%", l.Share*100),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d languages. Completed in %v\n", len(langs), duration)
	return err
}

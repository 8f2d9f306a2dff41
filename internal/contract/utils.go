package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/statscard/statscard/schema"
)

// Color variables for console output.
var (
	GoldColor   = color.New(color.FgYellow, color.Bold) // Stars and best-of records
	GreenColor  = color.New(color.FgGreen)               // Additions and growth
	RedColor    = color.New(color.FgRed)                 // Deletions
	PurpleColor = color.New(color.FgMagenta)             // Contributions
	BlueColor   = color.New(color.FgCyan)                // Repositories and neutral info
)

// ParseExcludeSet splits a comma-separated exclusion list into a lowercase
// membership set. Blank entries are dropped.
func ParseExcludeSet(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range strings.Split(raw, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// MetricColor returns the display color for a milestone metric.
func MetricColor(metric schema.Metric) *color.Color {
	switch metric {
	case schema.StarsMetric:
		return GoldColor
	case schema.ReposMetric:
		return BlueColor
	default:
		return PurpleColor
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}

// Package render produces the SVG stat cards and the HTML trends report.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
)

// Card artifact file names inside the render directory.
const (
	OverviewCardFile     = "overview.svg"
	LanguagesCardFile    = "languages.svg"
	TrendsCardFile       = "trends.svg"
	MilestonesCardFile   = "milestones.svg"
	AchievementsCardFile = "achievements.svg"
	ReportFile           = "report.html"
)

// WriteCards renders one SVG card per component into the render directory.
// Cards are self-contained files suitable for embedding in a profile README.
func WriteCards(result *schema.RunResult, cfg *contract.Config) error {
	if err := os.MkdirAll(cfg.RenderDir, 0o755); err != nil {
		return fmt.Errorf("failed to create render dir: %w", err)
	}

	cards := []struct {
		name   string
		render func(io.Writer) error
	}{
		{OverviewCardFile, func(w io.Writer) error { return renderOverviewCard(w, result, cfg) }},
		{LanguagesCardFile, func(w io.Writer) error { return renderLanguagesCard(w, result, cfg) }},
		{TrendsCardFile, func(w io.Writer) error { return renderTrendsCard(w, result, cfg) }},
		{MilestonesCardFile, func(w io.Writer) error { return renderMilestonesCard(w, result, cfg) }},
		{AchievementsCardFile, func(w io.Writer) error { return renderAchievementsCard(w, result, cfg) }},
	}
	for _, card := range cards {
		if err := writeArtifact(filepath.Join(cfg.RenderDir, card.name), card.render); err != nil {
			return fmt.Errorf("failed to render %s: %w", card.name, err)
		}
	}
	return nil
}

// writeArtifact writes one render product atomically enough for our purposes:
// create, write, close, surfacing the first error.
func writeArtifact(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

package core

import (
	"context"
	"sync"
	"time"

	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/internal/outwriter"
	"github.com/statscard/statscard/internal/render"
	"github.com/statscard/statscard/schema"
)

// runInputs holds the fully-materialized, read-only inputs for one run.
// The ingestion layer must complete before any core computation begins.
type runInputs struct {
	repos    []schema.RepoRecord
	days     []schema.DayRecord
	counters schema.Counters
	snaps    []schema.Snapshot
}

// fetchInputs drives the ingestion adapter and optional history store to
// materialize all inputs up front.
func fetchInputs(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) (*runInputs, error) {
	repos, err := ing.Repos(ctx)
	if err != nil {
		return nil, err
	}
	days, err := ing.DailyActivity(ctx)
	if err != nil {
		return nil, err
	}
	views, err := ing.Views(ctx, repos)
	if err != nil {
		return nil, err
	}

	in := &runInputs{
		repos:    repos,
		days:     days,
		counters: schema.Counters{Views: views, RepoCount: len(repos)},
	}
	if store != nil {
		snaps, err := store.List(ctx)
		if err != nil {
			return nil, err
		}
		in.snaps = snaps
	}
	return in, nil
}

// ComputeRun validates the inputs and runs all five components, producing
// the complete derived-statistics set for one run. The repo-derived and
// day-derived components share no state and run concurrently; results are
// combined only after every component has finished.
func ComputeRun(in *runInputs, cfg *contract.Config) (*schema.RunResult, error) {
	if err := ValidateDaySeries(in.days); err != nil {
		return nil, err
	}

	result := &schema.RunResult{}
	var wg sync.WaitGroup

	// Repo partition: aggregate totals and language breakdown.
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Totals = Aggregate(in.repos, in.days, in.counters, cfg)
		result.Languages = LanguageBreakdown(in.repos, cfg)
	}()

	// Day partition: resampling, forecasting, milestones and achievements.
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Buckets = ResampleWeekly(in.days)
		result.ForecastSix = ForecastCumulative(result.Buckets, schema.SixMonthHorizon)
		result.ForecastTwelve = ForecastCumulative(result.Buckets, schema.TwelveMonthHorizon)

		contribs := CumulativeContributions(in.days)
		result.Milestones = DetectAllMilestones(contribs, StarSeries(in.snaps), RepoSeries(in.snaps), cfg)
		result.Achievements = EvaluateAchievements(in.days, YearlyLanguageBytes(in.snaps))
	}()

	wg.Wait()
	return result, nil
}

// GetRunResult materializes inputs and computes the full result set.
// It backs the render command and the MCP tools.
func GetRunResult(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) (*schema.RunResult, error) {
	in, err := fetchInputs(ctx, cfg, ing, store)
	if err != nil {
		return nil, err
	}
	return ComputeRun(in, cfg)
}

// ExecuteOverview prints the aggregate totals. It serves as the main entry
// point for the 'overview' command.
func ExecuteOverview(ctx context.Context, cfg *contract.Config, ing contract.Ingestor) error {
	start := time.Now()
	in, err := fetchInputs(ctx, cfg, ing, nil)
	if err != nil {
		return err
	}
	if err := ValidateDaySeries(in.days); err != nil {
		return err
	}
	totals := Aggregate(in.repos, in.days, in.counters, cfg)
	return outwriter.WriteOverview(totals, cfg, time.Since(start))
}

// ExecuteLanguages prints the normalized language share distribution.
func ExecuteLanguages(ctx context.Context, cfg *contract.Config, ing contract.Ingestor) error {
	start := time.Now()
	repos, err := ing.Repos(ctx)
	if err != nil {
		return err
	}
	langs := LanguageBreakdown(repos, cfg)
	return outwriter.WriteLanguages(langs, cfg, time.Since(start))
}

// ExecuteTrends prints the weekly activity buckets along with the 6- and
// 12-month linear projections of cumulative lines changed.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, ing contract.Ingestor) error {
	start := time.Now()
	days, err := ing.DailyActivity(ctx)
	if err != nil {
		return err
	}
	if err := ValidateDaySeries(days); err != nil {
		return err
	}
	buckets := ResampleWeekly(days)
	six := ForecastCumulative(buckets, schema.SixMonthHorizon)
	twelve := ForecastCumulative(buckets, schema.TwelveMonthHorizon)
	return outwriter.WriteTrends(buckets, six, twelve, cfg, time.Since(start))
}

// ExecuteMilestones prints every threshold crossing detected across the
// contribution, star and repo series, ascending by date.
func ExecuteMilestones(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) error {
	start := time.Now()
	in, err := fetchInputs(ctx, cfg, ing, store)
	if err != nil {
		return err
	}
	if err := ValidateDaySeries(in.days); err != nil {
		return err
	}
	contribs := CumulativeContributions(in.days)
	milestones := DetectAllMilestones(contribs, StarSeries(in.snaps), RepoSeries(in.snaps), cfg)
	return outwriter.WriteMilestones(milestones, cfg, time.Since(start))
}

// ExecuteAchievements prints the per-category superlative records.
func ExecuteAchievements(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) error {
	start := time.Now()
	in, err := fetchInputs(ctx, cfg, ing, store)
	if err != nil {
		return err
	}
	if err := ValidateDaySeries(in.days); err != nil {
		return err
	}
	achievements := EvaluateAchievements(in.days, YearlyLanguageBytes(in.snaps))
	return outwriter.WriteAchievements(achievements, cfg, time.Since(start))
}

// ExecuteRender computes the full result set and writes the SVG cards and
// the HTML trends report into the configured render directory.
func ExecuteRender(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) error {
	result, err := GetRunResult(ctx, cfg, ing, store)
	if err != nil {
		return err
	}
	if err := render.WriteCards(result, cfg); err != nil {
		return err
	}
	return render.WriteHTMLReport(result, cfg)
}

// ExecuteHistoryRecord computes today's aggregate snapshot and persists it
// in the history store.
func ExecuteHistoryRecord(ctx context.Context, cfg *contract.Config, ing contract.Ingestor, store contract.HistoryStore) error {
	in, err := fetchInputs(ctx, cfg, ing, nil)
	if err != nil {
		return err
	}
	if err := ValidateDaySeries(in.days); err != nil {
		return err
	}
	totals := Aggregate(in.repos, in.days, in.counters, cfg)
	langs := LanguageBreakdown(in.repos, cfg)
	snap := schema.SnapshotFromTotals(time.Now().UTC(), totals, langs)
	return store.Record(ctx, snap)
}

// ExecuteHistoryList prints the persisted snapshot history.
func ExecuteHistoryList(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	snaps, err := store.List(ctx)
	if err != nil {
		return err
	}
	return outwriter.WriteSnapshots(snaps, cfg, time.Since(start))
}

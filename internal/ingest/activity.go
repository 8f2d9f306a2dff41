package ingest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/statscard/statscard/schema"
)

// dayTotals accumulates one day's counts while the sources merge.
type dayTotals struct {
	commits      int
	linesAdded   int
	linesDeleted int
}

// DailyActivity builds the contiguous day series from two sources: the
// contribution calendar supplies per-day commit counts, and the per-repo
// contributor stats supply weekly line counts which are spread across each
// week's days. Days between the first activity and today with no activity
// are zero-filled so downstream resampling sees no gaps.
func (c *Client) DailyActivity(ctx context.Context) ([]schema.DayRecord, error) {
	totals := make(map[time.Time]*dayTotals)

	if err := c.mergeCalendar(ctx, totals); err != nil {
		return nil, err
	}
	if err := c.mergeContributorStats(ctx, totals); err != nil {
		return nil, err
	}
	return flattenDays(totals), nil
}

// mergeCalendar fills per-day commit counts from the contribution calendar,
// one aliased query section per contribution year.
func (c *Client) mergeCalendar(ctx context.Context, totals map[time.Time]*dayTotals) error {
	parsed, err := c.queryGraphQL(ctx, contribYearsQuery())
	if err != nil {
		return err
	}
	var years []int
	for _, y := range parsed.Get("data.viewer.contributionsCollection.contributionYears").Array() {
		years = append(years, int(y.Int()))
	}
	if len(years) == 0 {
		return nil
	}

	parsed, err = c.queryGraphQL(ctx, calendarQuery(years))
	if err != nil {
		return err
	}
	today := todayUTC()
	for _, year := range years {
		weeks := parsed.Get(fmt.Sprintf("data.viewer.year%d.contributionCalendar.weeks", year))
		for _, week := range weeks.Array() {
			for _, day := range week.Get("contributionDays").Array() {
				date, err := time.ParseInLocation(time.DateOnly, day.Get("date").String(), time.UTC)
				if err != nil {
					return fmt.Errorf("bad calendar date %q: %w", day.Get("date").String(), err)
				}
				if date.After(today) {
					continue
				}
				count := int(day.Get("contributionCount").Int())
				if count == 0 {
					continue
				}
				ensureDay(totals, date).commits += count
			}
		}
	}
	return nil
}

// mergeContributorStats folds the user's weekly line counts from every
// repository into the day map. The REST API reports weeks as Sunday-start
// Unix timestamps; each week's additions and deletions are spread evenly
// across its seven days, with the remainder on the earliest days, so weekly
// resampling reproduces the reported totals.
func (c *Client) mergeContributorStats(ctx context.Context, totals map[time.Time]*dayTotals) error {
	repos, err := c.Repos(ctx)
	if err != nil {
		return err
	}
	login := strings.ToLower(c.username)
	today := todayUTC()

	for _, repo := range repos {
		parsed, err := c.queryREST(ctx, "repos/"+repo.FullName+"/stats/contributors")
		if err != nil {
			return err
		}
		for _, author := range parsed.Array() {
			if strings.ToLower(author.Get("author.login").String()) != login {
				continue
			}
			for _, week := range author.Get("weeks").Array() {
				added := int(week.Get("a").Int())
				deleted := int(week.Get("d").Int())
				if added == 0 && deleted == 0 {
					continue
				}
				start := time.Unix(week.Get("w").Int(), 0).UTC()
				start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
				spreadWeek(totals, start, today, added, deleted)
			}
		}
	}
	return nil
}

// spreadWeek distributes one week's line counts across its days, clamped to
// today.
func spreadWeek(totals map[time.Time]*dayTotals, start, today time.Time, added, deleted int) {
	for i := range 7 {
		date := start.AddDate(0, 0, i)
		if date.After(today) {
			break
		}
		day := ensureDay(totals, date)
		day.linesAdded += added / 7
		day.linesDeleted += deleted / 7
		if i < added%7 {
			day.linesAdded++
		}
		if i < deleted%7 {
			day.linesDeleted++
		}
	}
}

func ensureDay(totals map[time.Time]*dayTotals, date time.Time) *dayTotals {
	if day, ok := totals[date]; ok {
		return day
	}
	day := &dayTotals{}
	totals[date] = day
	return day
}

// flattenDays turns the sparse day map into the contiguous, zero-filled
// series the engine requires.
func flattenDays(totals map[time.Time]*dayTotals) []schema.DayRecord {
	if len(totals) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	first, last := dates[0], dates[len(dates)-1]
	var days []schema.DayRecord
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		record := schema.DayRecord{Date: date}
		if day, ok := totals[date]; ok {
			record.Commits = day.commits
			record.LinesAdded = day.linesAdded
			record.LinesDeleted = day.linesDeleted
		}
		days = append(days, record)
	}
	return days
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

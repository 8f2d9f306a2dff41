package ingest

import (
	"context"

	"github.com/statscard/statscard/schema"
)

// Views sums the last 14 days of project page views across the given
// repositories, which is as far back as the traffic API reports. Repositories
// where traffic data is inaccessible count as zero.
func (c *Client) Views(ctx context.Context, repos []schema.RepoRecord) (int, error) {
	total := 0
	for _, repo := range repos {
		parsed, err := c.queryREST(ctx, "repos/"+repo.FullName+"/traffic/views")
		if err != nil {
			return 0, err
		}
		total += int(parsed.Get("count").Int())
	}
	return total, nil
}

package ingest

import (
	"context"

	"github.com/statscard/statscard/schema"
	"github.com/tidwall/gjson"
)

// Repos fetches every repository the user owns or has contributed to,
// deduplicated by "owner/name" identity. The result is cached for the
// lifetime of the client so follow-up calls reuse the pagination walk.
func (c *Client) Repos(ctx context.Context) ([]schema.RepoRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.repos != nil {
		return c.repos, nil
	}

	seen := make(map[string]struct{})
	var records []schema.RepoRecord
	var ownedCursor, contribCursor string

	for {
		parsed, err := c.queryGraphQL(ctx, reposOverviewQuery(ownedCursor, contribCursor))
		if err != nil {
			return nil, err
		}
		viewer := parsed.Get("data.viewer")
		owned := viewer.Get("repositories")
		contributed := viewer.Get("repositoriesContributedTo")

		for _, conn := range []gjson.Result{owned, contributed} {
			for _, node := range conn.Get("nodes").Array() {
				record := parseRepoNode(node)
				if record.FullName == "" {
					continue
				}
				if _, dup := seen[record.FullName]; dup {
					continue
				}
				seen[record.FullName] = struct{}{}
				records = append(records, record)
			}
		}

		if !owned.Get("pageInfo.hasNextPage").Bool() && !contributed.Get("pageInfo.hasNextPage").Bool() {
			break
		}
		if cursor := owned.Get("pageInfo.endCursor").String(); cursor != "" {
			ownedCursor = cursor
		}
		if cursor := contributed.Get("pageInfo.endCursor").String(); cursor != "" {
			contribCursor = cursor
		}
	}

	Log.Debugf("fetched %d repositories for %s", len(records), c.username)
	c.repos = records
	return records, nil
}

func parseRepoNode(node gjson.Result) schema.RepoRecord {
	record := schema.RepoRecord{
		FullName:  node.Get("nameWithOwner").String(),
		Stars:     int(node.Get("stargazers.totalCount").Int()),
		Forks:     int(node.Get("forkCount").Int()),
		IsFork:    node.Get("isFork").Bool(),
		Languages: make(map[string]int64),
	}
	for _, edge := range node.Get("languages.edges").Array() {
		name := edge.Get("node.name").String()
		if name == "" {
			continue
		}
		record.Languages[name] += edge.Get("size").Int()
	}
	return record
}

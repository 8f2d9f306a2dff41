package ingest

import (
	"fmt"
	"strings"
)

// reposOverviewQuery builds one page of the repository overview query. Owned
// repositories and contributed-to repositories paginate on independent
// cursors; a nil cursor is rendered as null for the first page.
func reposOverviewQuery(ownedCursor, contribCursor string) string {
	return fmt.Sprintf(`{
  viewer {
    login
    repositories(
      first: 100,
      orderBy: {field: UPDATED_AT, direction: DESC},
      after: %s
    ) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        nameWithOwner
        isFork
        stargazers {
          totalCount
        }
        forkCount
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              name
            }
          }
        }
      }
    }
    repositoriesContributedTo(
      first: 100,
      includeUserRepositories: false,
      orderBy: {field: UPDATED_AT, direction: DESC},
      contributionTypes: [COMMIT, PULL_REQUEST, REPOSITORY, PULL_REQUEST_REVIEW],
      after: %s
    ) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        nameWithOwner
        isFork
        stargazers {
          totalCount
        }
        forkCount
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              name
            }
          }
        }
      }
    }
  }
}`, cursorLiteral(ownedCursor), cursorLiteral(contribCursor))
}

func cursorLiteral(cursor string) string {
	if cursor == "" {
		return "null"
	}
	return `"` + cursor + `"`
}

// contribYearsQuery asks for every year the user has contributions in.
func contribYearsQuery() string {
	return `{
  viewer {
    contributionsCollection {
      contributionYears
    }
  }
}`
}

// calendarQuery builds one query covering the daily contribution calendar for
// every given year, aliased yearNNNN so the results stay distinguishable.
func calendarQuery(years []int) string {
	var b strings.Builder
	b.WriteString("{\n  viewer {\n")
	for _, year := range years {
		fmt.Fprintf(&b, `    year%d: contributionsCollection(
      from: "%d-01-01T00:00:00Z",
      to: "%d-01-01T00:00:00Z"
    ) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
`, year, year, year+1)
	}
	b.WriteString("  }\n}")
	return b.String()
}

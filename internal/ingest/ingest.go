// Package ingest fetches repository metadata and activity history from the
// GitHub GraphQL and REST APIs.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/statscard/statscard/internal/contract"
	"github.com/statscard/statscard/schema"
	"github.com/tidwall/gjson"
)

// Log is the package logger. The CLI adjusts its level at startup.
var Log = logrus.New()

const (
	defaultGraphQLEndpoint = "https://api.github.com/graphql"
	defaultRESTEndpoint    = "https://api.github.com"

	// GitHub returns 202 while it computes contributor stats in the
	// background. The retry budget mirrors the documented worst case.
	statsRetryMax  = 10
	statsRetryWait = 5 * time.Second
)

// Client talks to the GitHub APIs for one user. It implements
// contract.Ingestor. Repository metadata is cached after the first fetch so
// the activity and views calls do not repeat the pagination walk.
type Client struct {
	username string
	token    string
	http     *retryablehttp.Client

	graphqlURL string
	restURL    string

	mu    sync.Mutex
	repos []schema.RepoRecord
}

// NewClient builds a GitHub client from the run configuration.
func NewClient(cfg *contract.Config) *Client {
	retry := retryablehttp.NewClient()
	retry.Logger = nil
	retry.RetryMax = statsRetryMax
	retry.RetryWaitMin = statsRetryWait
	retry.RetryWaitMax = 10 * time.Minute
	retry.HTTPClient.Timeout = cfg.Timeout
	// 202 means "still computing", which the default policy treats as done.
	retry.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err == nil && resp != nil && resp.StatusCode == http.StatusAccepted {
			return true, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &Client{
		username:   cfg.Username,
		token:      cfg.Token,
		http:       retry,
		graphqlURL: defaultGraphQLEndpoint,
		restURL:    defaultRESTEndpoint,
	}
}

// queryGraphQL posts one GraphQL query and returns the parsed response body.
func (c *Client) queryGraphQL(ctx context.Context, query string) (gjson.Result, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return gjson.Result{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, payload)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("graphql request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("graphql returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	parsed := gjson.ParseBytes(body)
	if errs := parsed.Get("errors"); errs.Exists() && len(errs.Array()) > 0 {
		return gjson.Result{}, fmt.Errorf("graphql errors: %s", errs.Raw)
	}
	return parsed, nil
}

// queryREST gets one REST path and returns the parsed response body. Statuses
// the API uses for "nothing to report" (204, 403 on traffic endpoints) yield
// an empty result rather than an error, matching how partial data is treated
// as zero activity.
func (c *Client) queryREST(ctx context.Context, path string) (gjson.Result, error) {
	url := c.restURL + "/" + strings.TrimPrefix(path, "/")
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("rest request for %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return gjson.Result{}, err
		}
		return gjson.ParseBytes(body), nil
	case http.StatusAccepted:
		// Retries exhausted while GitHub was still computing.
		Log.Warnf("gave up waiting for %s, treating as empty", path)
		return gjson.Result{}, nil
	case http.StatusNoContent, http.StatusForbidden:
		Log.Debugf("%s returned %d, treating as empty", path, resp.StatusCode)
		return gjson.Result{}, nil
	default:
		return gjson.Result{}, fmt.Errorf("rest %s returned %d", path, resp.StatusCode)
	}
}

// Package github reads pull requests and branches through go-github, paging
// through results and keeping within the API rate limit.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v72/github"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/paging"
	"github.com/renato0307/pickcheck/internal/ports"
)

const (
	// DefaultBaseURL is the public GitHub API
	DefaultBaseURL = "https://api.github.com"
	// DefaultMaxWait is the longest we sleep for a rate limit reset before giving up
	DefaultMaxWait = 120 * time.Second

	acceptHeader        = "application/vnd.github+json"
	apiVersion          = "2022-11-28"
	defaultLowRemaining = 5
	defaultThrottle     = 2 * time.Second
	requestTimeout      = 30 * time.Second

	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

var _ ports.GitHubReader = (*Client)(nil)

// WaitNotifier is told when the client sleeps until the rate limit resets
type WaitNotifier func(wait time.Duration, resetAt time.Time)

// Client talks to the GitHub REST API. It is not safe for concurrent use:
// requests are meant to be issued one at a time so the quota of the last
// response describes the whole run.
type Client struct {
	api          *gh.Client
	autoWait     bool
	baseURL      string
	httpClient   *http.Client
	lowRemaining int
	maxWait      time.Duration
	notify       WaitNotifier
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
	throttle     time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithAutoWait enables or disables sleeping through an exhausted rate limit
func WithAutoWait(enabled bool) Option {
	return func(c *Client) { c.autoWait = enabled }
}

// WithBaseURL points the client at another API root, e.g. https://ghe.example.com/api/v3
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithMaxWait sets the longest rate limit wait the client accepts
func WithMaxWait(d time.Duration) Option {
	return func(c *Client) { c.maxWait = d }
}

// WithThrottle sets when (remaining calls below lowRemaining) and how long the client slows down
func WithThrottle(lowRemaining int, pause time.Duration) Option {
	return func(c *Client) {
		c.lowRemaining = lowRemaining
		c.throttle = pause
	}
}

// WithWaitNotifier registers a callback for rate limit waits
func WithWaitNotifier(notify WaitNotifier) Option {
	return func(c *Client) { c.notify = notify }
}

// WithClock replaces time.Now and the sleep function
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
	}
}

// NewClient creates a client authenticated with token
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		autoWait:     true,
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		lowRemaining: defaultLowRemaining,
		maxWait:      DefaultMaxWait,
		now:          time.Now,
		sleep:        sleepContext,
		throttle:     defaultThrottle,
	}
	for _, opt := range opts {
		opt(c)
	}

	httpClient := *c.httpClient
	httpClient.Transport = &headerTransport{base: httpClient.Transport}
	c.api = gh.NewClient(&httpClient).WithAuthToken(token)

	// go-github resolves request paths against BaseURL, which must end with a slash
	baseURL, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
	if err != nil {
		logging.Logger.Warn("Ignoring invalid API base URL", "url", c.baseURL, "error", err)
	} else {
		c.api.BaseURL = baseURL
	}

	return c
}

// SearchIssues streams the results of a /search/issues query
func (c *Client) SearchIssues(ctx context.Context, query string) *paging.Stream[ports.PullRequestRecord] {
	logging.Logger.Debug("Searching issues", "query", query)

	return paging.New(ctx, paging.DefaultPageSize, func(ctx context.Context, page int) ([]ports.PullRequestRecord, error) {
		opts := &gh.SearchOptions{
			ListOptions: gh.ListOptions{Page: page, PerPage: paging.DefaultPageSize},
		}

		var result *gh.IssuesSearchResult
		err := c.call(ctx, func(ctx context.Context) (*gh.Response, error) {
			var resp *gh.Response
			var err error
			result, resp, err = c.api.Search.Issues(ctx, query, opts)
			return resp, err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search issues: %w", err)
		}
		if result.GetIncompleteResults() {
			logging.Logger.Warn("Search returned incomplete results", "query", query, "page", page)
		}

		records := make([]ports.PullRequestRecord, len(result.Issues))
		for i, issue := range result.Issues {
			records[i] = issueToRecord(issue)
		}
		logging.Logger.Debug("Fetched search page", "page", page, "items", len(records), "total", result.GetTotal())
		return records, nil
	})
}

// SearchPullRequests streams pull requests matching query
func (c *Client) SearchPullRequests(ctx context.Context, query string) *paging.Stream[ports.PullRequestRecord] {
	return c.SearchIssues(ctx, query)
}

// Paginate streams the raw items of a listing endpoint that returns a JSON array
func (c *Client) Paginate(ctx context.Context, endpoint string) *paging.Stream[json.RawMessage] {
	return paging.New(ctx, paging.DefaultPageSize, c.listPages(endpoint))
}

// ListBranches streams the branch names of repo (owner/name)
func (c *Client) ListBranches(ctx context.Context, repo string) *paging.Stream[string] {
	endpoint := fmt.Sprintf("repos/%s/branches", repo)
	return paging.New(ctx, paging.DefaultPageSize, paging.MapPages(c.listPages(endpoint), branchName))
}

// GetPullRequest fetches one pull request of repo (owner/name)
func (c *Client) GetPullRequest(ctx context.Context, repo string, number int) (ports.PullRequestRecord, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return ports.PullRequestRecord{}, err
	}

	var pr *gh.PullRequest
	err = c.call(ctx, func(ctx context.Context) (*gh.Response, error) {
		var resp *gh.Response
		var err error
		pr, resp, err = c.api.PullRequests.Get(ctx, owner, name, number)
		return resp, err
	})
	if err != nil {
		return ports.PullRequestRecord{}, fmt.Errorf("failed to get pull request #%d: %w", number, err)
	}
	return pullRequestToRecord(pr), nil
}

// listPages fetches pages of a listing endpoint as raw JSON items
func (c *Client) listPages(endpoint string) paging.PageFunc[json.RawMessage] {
	return func(ctx context.Context, page int) ([]json.RawMessage, error) {
		u, err := pageURL(endpoint, page)
		if err != nil {
			return nil, err
		}

		var items []json.RawMessage
		err = c.call(ctx, func(ctx context.Context) (*gh.Response, error) {
			req, err := c.api.NewRequest(http.MethodGet, u, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to build request: %w", err)
			}
			items = nil
			return c.api.Do(ctx, req, &items)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", endpoint, err)
		}
		return items, nil
	}
}

// call runs one API request, retrying it for as long as the rate limit policy says to wait.
// go-github's own pre-request quota check is bypassed so this policy alone decides.
func (c *Client) call(ctx context.Context, do func(ctx context.Context) (*gh.Response, error)) error {
	reqCtx := context.WithValue(ctx, gh.BypassRateLimitCheck, true)

	for {
		resp, err := do(reqCtx)

		// Quota is checked before the status: an exhausted quota comes back
		// as 403/429 and is not a real failure if we can wait it out
		retry, rlErr := c.handleRateLimit(ctx, resp)
		if rlErr != nil {
			return rlErr
		}
		if retry {
			continue
		}

		if err != nil {
			return toDomainError(err)
		}
		return nil
	}
}

// handleRateLimit inspects the quota of a response.
// It returns true when the request should be retried after waiting.
func (c *Client) handleRateLimit(ctx context.Context, resp *gh.Response) (bool, error) {
	// go-github reports a missing header as zero, so presence is read from the raw headers
	if resp == nil || resp.Response == nil || !hasIntHeader(resp.Header, headerRateRemaining) {
		return false, nil
	}
	remaining := resp.Rate.Remaining

	if remaining == 0 {
		if !hasIntHeader(resp.Header, headerRateReset) {
			return false, &domain.RateLimitExceededError{}
		}

		reset := resp.Rate.Reset.Unix()
		resetAt := time.Unix(reset, 0)
		wait := time.Duration(max(0, reset-c.now().Unix())+1) * time.Second

		if !c.autoWait || wait > c.maxWait {
			logging.Logger.Error("Rate limit exceeded", "reset_at", resetAt, "wait", wait, "auto_wait", c.autoWait)
			return false, &domain.RateLimitExceededError{ResetAt: resetAt, Wait: wait}
		}

		logging.Logger.Warn("Rate limit reached, waiting for reset", "wait", wait, "reset_at", resetAt)
		if c.notify != nil {
			c.notify(wait, resetAt)
		}
		if err := c.sleep(ctx, wait); err != nil {
			return false, err
		}
		return true, nil
	}

	if remaining < c.lowRemaining {
		logging.Logger.Debug("Rate limit almost exhausted, slowing down", "remaining", remaining, "pause", c.throttle)
		if err := c.sleep(ctx, c.throttle); err != nil {
			return false, err
		}
	}

	return false, nil
}

func hasIntHeader(h http.Header, key string) bool {
	v := h.Get(key)
	if v == "" {
		return false
	}
	if _, err := strconv.ParseInt(v, 10, 64); err != nil {
		logging.Logger.Debug("Ignoring malformed rate limit header", "header", key, "value", v)
		return false
	}
	return true
}

// toDomainError turns go-github errors into domain errors
func toDomainError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.RateLimitExceededError{ResetAt: rateErr.Rate.Reset.Time}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return newHTTPError(abuseErr.Response, abuseErr.Message)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return newHTTPError(respErr.Response, respErr.Message)
	}

	return err
}

func newHTTPError(resp *http.Response, message string) error {
	httpErr := &domain.HTTPError{Message: message}
	if resp != nil {
		httpErr.StatusCode = resp.StatusCode
		if resp.Request != nil {
			httpErr.Method = resp.Request.Method
			httpErr.URL = resp.Request.URL.Path
		}
	}
	if httpErr.Message == "" {
		httpErr.Message = http.StatusText(httpErr.StatusCode)
	}

	logging.Logger.Debug("GitHub request failed",
		"method", httpErr.Method,
		"url", httpErr.URL,
		"status", httpErr.StatusCode,
		"message", httpErr.Message)
	return httpErr
}

// pageURL adds paging parameters to a relative endpoint
func pageURL(endpoint string, page int) (string, error) {
	u, err := url.Parse(strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	q := u.Query()
	q.Set("per_page", strconv.Itoa(paging.DefaultPageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected format 'owner/repo'", repo)
	}
	return owner, name, nil
}

// headerTransport sets the media type and API version on every request
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	req = req.Clone(req.Context())
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	return base.RoundTrip(req)
}

// sleepContext sleeps for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package ports

import (
	"context"
	"time"

	"github.com/renato0307/pickcheck/internal/paging"
)

// PullRequestRecord is a pull request or issue as returned by GitHub
type PullRequestRecord struct {
	Author    string
	BaseRef   string // Empty when the API did not include the base branch
	Body      string
	CreatedAt *time.Time
	MergedAt  *time.Time
	Number    int
	State     string
	Title     string
	URL       string
}

// PullRequestSearcher searches and fetches pull requests
type PullRequestSearcher interface {
	// GetPullRequest fetches the full details of one pull request
	GetPullRequest(ctx context.Context, repo string, number int) (PullRequestRecord, error)

	// SearchPullRequests runs a search query and streams the matching pull requests
	SearchPullRequests(ctx context.Context, query string) *paging.Stream[PullRequestRecord]
}

// BranchLister lists repository branches
type BranchLister interface {
	ListBranches(ctx context.Context, repo string) *paging.Stream[string]
}

// GitHubReader is the composite interface
type GitHubReader interface {
	BranchLister
	PullRequestSearcher
}

package domain

import (
	"strings"
	"time"
)

// PRState represents the lifecycle state of a pull request
type PRState string

const (
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged"
	PRStateOpen   PRState = "open"
)

// ParsePRState derives the state from the raw API state and whether a merge timestamp is present.
// A merge timestamp always wins; unknown states fall back to open.
func ParsePRState(state string, merged bool) PRState {
	if merged {
		return PRStateMerged
	}

	switch strings.ToLower(state) {
	case "closed":
		return PRStateClosed
	case "open":
		return PRStateOpen
	default:
		return PRStateOpen
	}
}

// PullRequestInfo represents a GitHub pull request as seen by a detection run
type PullRequestInfo struct {
	Author     string     // Login of the PR author
	BaseBranch string     // Branch the PR targets
	CreatedAt  *time.Time // Creation time (nil if unknown)
	MergedAt   *time.Time // Merge time (nil unless merged)
	Number     int        // PR number, unique within a repository
	State      PRState    // open, merged, closed
	Title      string     // PR title
	URL        string     // PR URL for browser
}

// IsOpen reports whether the PR is still open
func (p PullRequestInfo) IsOpen() bool {
	return p.State == PRStateOpen
}

// SourceQuery describes which PRs are audited
type SourceQuery struct {
	Author      string     // GitHub login whose PRs are checked
	BaseBranch  string     // Source branch, e.g. master
	IncludeOpen bool       // Also include PRs that are still open
	Repo        string     // owner/name
	Since       *time.Time // Lower bound on merge/creation date (optional)
}

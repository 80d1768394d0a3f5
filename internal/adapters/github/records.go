package github

import (
	"encoding/json"
	"fmt"
	"time"

	gh "github.com/google/go-github/v72/github"

	"github.com/renato0307/pickcheck/internal/ports"
)

// issueToRecord converts a search result item to a PullRequestRecord.
// Search results carry the merge time under pull_request and no base ref.
func issueToRecord(issue *gh.Issue) ports.PullRequestRecord {
	rec := ports.PullRequestRecord{
		Author:    issue.GetUser().GetLogin(),
		Body:      issue.GetBody(),
		CreatedAt: timePtr(issue.CreatedAt),
		Number:    issue.GetNumber(),
		State:     issue.GetState(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
	}
	if links := issue.PullRequestLinks; links != nil {
		rec.MergedAt = timePtr(links.MergedAt)
	}
	return rec
}

// pullRequestToRecord converts a /pulls/{n} response to a PullRequestRecord
func pullRequestToRecord(pr *gh.PullRequest) ports.PullRequestRecord {
	return ports.PullRequestRecord{
		Author:    pr.GetUser().GetLogin(),
		BaseRef:   pr.GetBase().GetRef(),
		Body:      pr.GetBody(),
		CreatedAt: timePtr(pr.CreatedAt),
		MergedAt:  timePtr(pr.MergedAt),
		Number:    pr.GetNumber(),
		State:     pr.GetState(),
		Title:     pr.GetTitle(),
		URL:       pr.GetHTMLURL(),
	}
}

// branchName decodes one item of /repos/{repo}/branches
func branchName(raw json.RawMessage) (string, error) {
	var branch gh.Branch
	if err := json.Unmarshal(raw, &branch); err != nil {
		return "", fmt.Errorf("failed to decode branch: %w", err)
	}
	return branch.GetName(), nil
}

func timePtr(ts *gh.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}

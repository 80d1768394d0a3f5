package services

import (
	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/ports"
)

// unknownBranch is used when neither the caller nor the API knows the base branch
const unknownBranch = "unknown"

// toPullRequestInfo converts an API record to a domain PullRequestInfo.
// baseBranch overrides the record's base ref when set.
func toPullRequestInfo(rec ports.PullRequestRecord, baseBranch string) domain.PullRequestInfo {
	if baseBranch == "" {
		baseBranch = rec.BaseRef
	}
	if baseBranch == "" {
		baseBranch = unknownBranch
	}

	state := domain.ParsePRState(rec.State, rec.MergedAt != nil)

	info := domain.PullRequestInfo{
		Author:     rec.Author,
		BaseBranch: baseBranch,
		CreatedAt:  rec.CreatedAt,
		Number:     rec.Number,
		State:      state,
		Title:      rec.Title,
		URL:        rec.URL,
	}
	if state == domain.PRStateMerged {
		info.MergedAt = rec.MergedAt
	}
	return info
}

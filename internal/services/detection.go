package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/ports"
)

const sinceDateFormat = "2006-01-02"

// ProgressFunc is called after each source PR has been checked
type ProgressFunc func(done, total int, pr domain.PullRequestInfo)

// DetectionService finds backports of pull requests on release branches
type DetectionService struct {
	progress ProgressFunc
	searcher ports.PullRequestSearcher
}

// NewDetectionService creates a new DetectionService
func NewDetectionService(searcher ports.PullRequestSearcher) *DetectionService {
	return &DetectionService{
		searcher: searcher,
	}
}

// OnProgress registers a progress callback
func (s *DetectionService) OnProgress(fn ProgressFunc) {
	s.progress = fn
}

// SourcePullRequests fetches the PRs the audit is about: merged ones first, then open ones
func (s *DetectionService) SourcePullRequests(ctx context.Context, q domain.SourceQuery) ([]domain.PullRequestInfo, error) {
	logging.Logger.Info("Fetching source pull requests",
		"repo", q.Repo,
		"author", q.Author,
		"branch", q.BaseBranch,
		"include_open", q.IncludeOpen)

	var prs []domain.PullRequestInfo
	for _, query := range sourceQueries(q) {
		stream := s.searcher.SearchPullRequests(ctx, query)
		for stream.Next() {
			prs = append(prs, toPullRequestInfo(stream.Item(), q.BaseBranch))
		}
		if err := stream.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch pull requests by %s: %w", q.Author, err)
		}
	}

	logging.Logger.Info("Fetched source pull requests", "count", len(prs))
	return prs, nil
}

// sourceQueries builds the search queries for merged and (optionally) open PRs
func sourceQueries(q domain.SourceQuery) []string {
	base := fmt.Sprintf("repo:%s is:pr %%s author:%s base:%s", q.Repo, q.Author, q.BaseBranch)

	merged := fmt.Sprintf(base, "is:merged")
	if q.Since != nil {
		merged += " merged:>=" + q.Since.Format(sinceDateFormat)
	}
	queries := []string{merged}

	if q.IncludeOpen {
		open := fmt.Sprintf(base, "is:open")
		if q.Since != nil {
			open += " created:>=" + q.Since.Format(sinceDateFormat)
		}
		queries = append(queries, open)
	}
	return queries
}

// Detect checks every source PR against every branch and returns one result per pair,
// ordered by source PR and then by branch.
func (s *DetectionService) Detect(ctx context.Context, repo string, sources []domain.PullRequestInfo, branches []string) ([]domain.DetectionResult, error) {
	branches = uniqueBranches(branches)
	results := make([]domain.DetectionResult, 0, len(sources)*len(branches))

	for i, source := range sources {
		picked, err := s.findBackports(ctx, repo, source, branches)
		if err != nil {
			return nil, err
		}

		for _, branch := range branches {
			if related, ok := picked[branch]; ok {
				results = append(results, domain.NewPickedResult(source, branch, related))
			} else {
				results = append(results, domain.NewNotPickedResult(source, branch))
			}
		}

		if s.progress != nil {
			s.progress(i+1, len(sources), source)
		}
	}

	return results, nil
}

// findBackports maps each requested branch to the backport PR found for source.
// When several candidates land on the same branch, the last one processed wins.
func (s *DetectionService) findBackports(ctx context.Context, repo string, source domain.PullRequestInfo, branches []string) (map[string]domain.PullRequestInfo, error) {
	wanted := make(map[string]bool, len(branches))
	for _, b := range branches {
		wanted[b] = true
	}

	query := fmt.Sprintf("repo:%s is:pr %d in:body", repo, source.Number)
	logging.Logger.Debug("Searching for backports", "source", source.Number, "query", query)

	picked := make(map[string]domain.PullRequestInfo)
	stream := s.searcher.SearchPullRequests(ctx, query)
	for stream.Next() {
		candidate := stream.Item()
		if candidate.Number == source.Number {
			continue
		}
		if !domain.IsCherryPickReference(candidate.Body, source.Number) {
			continue
		}

		detail, err := s.searcher.GetPullRequest(ctx, repo, candidate.Number)
		if err != nil {
			// Cancellation ends the run; any other failure only costs this candidate
			if ctx.Err() != nil {
				return nil, err
			}
			level := slog.LevelDebug
			if domain.IsRateLimited(err) {
				level = slog.LevelWarn
			}
			logging.Logger.Log(ctx, level, "Skipping candidate, failed to fetch details",
				"source", source.Number,
				"candidate", candidate.Number,
				"error", err)
			continue
		}

		branch := detail.BaseRef
		if !wanted[branch] {
			logging.Logger.Debug("Candidate targets another branch", "candidate", candidate.Number, "branch", branch)
			continue
		}

		if prev, exists := picked[branch]; exists {
			logging.Logger.Warn("Multiple backports found for branch, keeping the last one",
				"source", source.Number,
				"branch", branch,
				"previous", prev.Number,
				"current", detail.Number)
		}
		picked[branch] = toPullRequestInfo(detail, branch)
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to search backports of #%d: %w", source.Number, err)
	}

	logging.Logger.Debug("Backport search done", "source", source.Number, "picked", len(picked))
	return picked, nil
}

// uniqueBranches drops repeated branch names, keeping first occurrences in order
func uniqueBranches(branches []string) []string {
	seen := make(map[string]bool, len(branches))
	result := make([]string, 0, len(branches))
	for _, b := range branches {
		if seen[b] {
			continue
		}
		seen[b] = true
		result = append(result, b)
	}
	return result
}

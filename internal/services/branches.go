package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/paging"
	"github.com/renato0307/pickcheck/internal/ports"
)

// TargetRequest describes which branches a detection run checks
type TargetRequest struct {
	AllRelease   bool     // Auto mode: include patch and .x branches, not only major.minor
	Explicit     []string // Branches asked for by the user; empty means auto-detect
	Limit        int      // Auto mode: keep at most this many (0 = all)
	Repo         string
	SourceBranch string // Never auto-selected as a target
}

// BranchService resolves target branches
type BranchService struct {
	lister ports.BranchLister
}

// NewBranchService creates a new BranchService
func NewBranchService(lister ports.BranchLister) *BranchService {
	return &BranchService{
		lister: lister,
	}
}

// ListBranches returns every branch name of repo
func (s *BranchService) ListBranches(ctx context.Context, repo string) ([]string, error) {
	branches, err := paging.Collect(s.lister.ListBranches(ctx, repo))
	if err != nil {
		return nil, fmt.Errorf("failed to list branches of %s: %w", repo, err)
	}
	logging.Logger.Debug("Listed branches", "repo", repo, "count", len(branches))
	return branches, nil
}

// ResolveTargets returns the branches to check.
// Explicit branches are filtered to the ones that exist, in the order given;
// otherwise release branches are auto-detected, newest first.
func (s *BranchService) ResolveTargets(ctx context.Context, req TargetRequest) ([]string, error) {
	all, err := s.ListBranches(ctx, req.Repo)
	if err != nil {
		return nil, err
	}

	if len(req.Explicit) > 0 {
		targets := domain.FilterBranches(all, req.Explicit)
		if len(targets) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoTargetBranches, strings.Join(req.Explicit, ", "))
		}
		if len(targets) < len(req.Explicit) {
			logging.Logger.Warn("Some target branches do not exist", "requested", req.Explicit, "found", targets)
		}
		return targets, nil
	}

	targets := domain.DetectReleaseBranches(all, req.SourceBranch, !req.AllRelease, req.Limit)
	logging.Logger.Info("Detected release branches", "branches", targets)
	return targets, nil
}

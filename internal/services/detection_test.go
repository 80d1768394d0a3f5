package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/paging"
	"github.com/renato0307/pickcheck/internal/paging/pagingtest"
	"github.com/renato0307/pickcheck/internal/ports"
	portsmocks "github.com/renato0307/pickcheck/internal/ports/mocks"
)

const testRepo = "milvus-io/milvus"

func referenceQuery(n int) string {
	return fmt.Sprintf("repo:%s is:pr %d in:body", testRepo, n)
}

func streamOf(records ...ports.PullRequestRecord) func(context.Context, string) *paging.Stream[ports.PullRequestRecord] {
	return func(context.Context, string) *paging.Stream[ports.PullRequestRecord] {
		return pagingtest.FromSlice(records)
	}
}

func TestSourcePullRequests_MergedThenOpen(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mergedAt := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	searcher.EXPECT().
		SearchPullRequests(mock.Anything, "repo:milvus-io/milvus is:pr is:merged author:alice base:master merged:>=2024-05-01").
		RunAndReturn(streamOf(ports.PullRequestRecord{Number: 1, State: "closed", MergedAt: &mergedAt}))
	searcher.EXPECT().
		SearchPullRequests(mock.Anything, "repo:milvus-io/milvus is:pr is:open author:alice base:master created:>=2024-05-01").
		RunAndReturn(streamOf(ports.PullRequestRecord{Number: 2, State: "open"}))

	service := NewDetectionService(searcher)

	prs, err := service.SourcePullRequests(context.Background(), domain.SourceQuery{
		Author:      "alice",
		BaseBranch:  "master",
		IncludeOpen: true,
		Repo:        testRepo,
		Since:       &since,
	})

	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.Equal(t, 1, prs[0].Number)
	assert.Equal(t, domain.PRStateMerged, prs[0].State)
	assert.Equal(t, "master", prs[0].BaseBranch)
	assert.Equal(t, 2, prs[1].Number)
	assert.Equal(t, domain.PRStateOpen, prs[1].State)
	assert.Nil(t, prs[1].MergedAt)
}

func TestSourcePullRequests_MergedOnlyWithoutSince(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	searcher.EXPECT().
		SearchPullRequests(mock.Anything, "repo:o/r is:pr is:merged author:bob base:main").
		RunAndReturn(streamOf())

	service := NewDetectionService(searcher)

	prs, err := service.SourcePullRequests(context.Background(), domain.SourceQuery{
		Author:     "bob",
		BaseBranch: "main",
		Repo:       "o/r",
	})

	require.NoError(t, err)
	assert.Empty(t, prs)
}

func TestSourcePullRequests_SearchError(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	searcher.EXPECT().SearchPullRequests(mock.Anything, mock.Anything).
		Return(pagingtest.Failed[ports.PullRequestRecord](&domain.RateLimitExceededError{}))

	service := NewDetectionService(searcher)

	_, err := service.SourcePullRequests(context.Background(), domain.SourceQuery{Repo: "o/r", Author: "a", BaseBranch: "main"})

	require.Error(t, err)
	assert.True(t, domain.IsRateLimited(err))
}

func TestDetect_PicksBackportFromBodyReference(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	source := domain.PullRequestInfo{Number: 45911, State: domain.PRStateMerged, BaseBranch: "master"}
	mergedAt := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(45911)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 45911, Body: "pr: #45911"},
		ports.PullRequestRecord{Number: 46000, Body: "Cherry-pick from master\npr: #45911"},
		ports.PullRequestRecord{Number: 46001, Body: "mentions 45911 in passing"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 46000).Return(ports.PullRequestRecord{
		Number:   46000,
		Title:    "[2.5] fix",
		State:    "closed",
		MergedAt: &mergedAt,
		BaseRef:  "2.5",
	}, nil)

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{source}, []string{"2.5", "2.4"})

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "2.5", results[0].TargetBranch)
	assert.Equal(t, domain.PickStatusPicked, results[0].Status)
	assert.Equal(t, domain.DetectionMethodBodyReference, results[0].DetectionMethod)
	require.NotNil(t, results[0].RelatedPR)
	assert.Equal(t, 46000, results[0].RelatedPR.Number)
	assert.Equal(t, domain.PRStateMerged, results[0].RelatedPR.State)
	assert.Equal(t, "2.5", results[0].RelatedPR.BaseBranch)

	assert.Equal(t, "2.4", results[1].TargetBranch)
	assert.Equal(t, domain.PickStatusNotPicked, results[1].Status)
	assert.Nil(t, results[1].RelatedPR)
}

func TestDetect_FullCrossProduct(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	sources := []domain.PullRequestInfo{{Number: 1}, {Number: 2}, {Number: 3}}
	branches := []string{"2.5", "2.4", "2.3", "2.2"}

	searcher.EXPECT().SearchPullRequests(mock.Anything, mock.Anything).RunAndReturn(streamOf())

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, sources, branches)

	require.NoError(t, err)
	require.Len(t, results, len(sources)*len(branches))

	seen := make(map[string]bool)
	for i, r := range results {
		key := fmt.Sprintf("%d/%s", r.SourcePR.Number, r.TargetBranch)
		assert.False(t, seen[key], "duplicate result %s", key)
		seen[key] = true

		assert.Equal(t, sources[i/len(branches)].Number, r.SourcePR.Number)
		assert.Equal(t, branches[i%len(branches)], r.TargetBranch)
	}
}

func TestDetect_DuplicateRequestedBranchesYieldOneResult(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	searcher.EXPECT().SearchPullRequests(mock.Anything, mock.Anything).RunAndReturn(streamOf())

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 1}}, []string{"2.4", "2.4"})

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestDetect_SkipsCandidateWhenDetailFetchFails(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	source := domain.PullRequestInfo{Number: 100}

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(100)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 200, Body: "backport #100"},
		ports.PullRequestRecord{Number: 201, Body: "backport #100"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 200).
		Return(ports.PullRequestRecord{}, &domain.HTTPError{StatusCode: 502})
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 201).
		Return(ports.PullRequestRecord{Number: 201, State: "open", BaseRef: "2.4"}, nil)

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{source}, []string{"2.4"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.PickStatusPicked, results[0].Status)
	assert.Equal(t, 201, results[0].RelatedPR.Number)
	assert.Equal(t, domain.PRStateOpen, results[0].RelatedPR.State)
}

func TestDetect_RateLimitDuringDetailFetchSkipsCandidate(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(100)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 200, Body: "backport #100"},
		ports.PullRequestRecord{Number: 201, Body: "backport #100"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 200).
		Return(ports.PullRequestRecord{}, &domain.RateLimitExceededError{ResetAt: time.Now().Add(time.Hour)})
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 201).
		Return(ports.PullRequestRecord{Number: 201, State: "closed", BaseRef: "2.4"}, nil)

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 100}}, []string{"2.4"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.PickStatusPicked, results[0].Status)
	assert.Equal(t, 201, results[0].RelatedPR.Number)
}

func TestDetect_CanceledDuringDetailFetchAborts(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	ctx, cancel := context.WithCancel(context.Background())

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(100)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 200, Body: "backport #100"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 200).
		RunAndReturn(func(context.Context, string, int) (ports.PullRequestRecord, error) {
			cancel()
			return ports.PullRequestRecord{}, context.Canceled
		})

	service := NewDetectionService(searcher)

	results, err := service.Detect(ctx, testRepo, []domain.PullRequestInfo{{Number: 100}}, []string{"2.4"})

	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetect_SearchFailureAbortsRun(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(1)).
		Return(pagingtest.Failed[ports.PullRequestRecord](errors.New("connection reset")))

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 1}, {Number: 2}}, []string{"2.4"})

	assert.Nil(t, results)
	assert.ErrorContains(t, err, "connection reset")
}

func TestDetect_IgnoresBackportsToOtherBranches(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(7)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 8, Body: "cherry-pick #7"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 8).
		Return(ports.PullRequestRecord{Number: 8, State: "open", BaseRef: "2.1"}, nil)

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 7}}, []string{"2.4"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.PickStatusNotPicked, results[0].Status)
}

func TestDetect_LastCandidateForBranchWins(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)

	searcher.EXPECT().SearchPullRequests(mock.Anything, referenceQuery(7)).RunAndReturn(streamOf(
		ports.PullRequestRecord{Number: 8, Body: "cherry-pick #7"},
		ports.PullRequestRecord{Number: 9, Body: "cherry-pick #7 again"},
	))
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 8).
		Return(ports.PullRequestRecord{Number: 8, State: "closed", BaseRef: "2.4"}, nil)
	searcher.EXPECT().GetPullRequest(mock.Anything, testRepo, 9).
		Return(ports.PullRequestRecord{Number: 9, State: "open", BaseRef: "2.4"}, nil)

	service := NewDetectionService(searcher)

	results, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 7}}, []string{"2.4"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 9, results[0].RelatedPR.Number)
}

func TestDetect_ReportsProgress(t *testing.T) {
	searcher := portsmocks.NewMockPullRequestSearcher(t)
	searcher.EXPECT().SearchPullRequests(mock.Anything, mock.Anything).RunAndReturn(streamOf())

	service := NewDetectionService(searcher)
	var calls [][2]int
	service.OnProgress(func(done, total int, pr domain.PullRequestInfo) {
		calls = append(calls, [2]int{done, total})
	})

	_, err := service.Detect(context.Background(), testRepo, []domain.PullRequestInfo{{Number: 1}, {Number: 2}}, []string{"2.4"})

	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, calls)
}

func TestToPullRequestInfo_BaseBranchFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		rec      ports.PullRequestRecord
		override string
		expected string
	}{
		{"override wins", ports.PullRequestRecord{BaseRef: "2.4"}, "master", "master"},
		{"record base ref", ports.PullRequestRecord{BaseRef: "2.4"}, "", "2.4"},
		{"unknown", ports.PullRequestRecord{}, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toPullRequestInfo(tt.rec, tt.override).BaseBranch)
		})
	}
}

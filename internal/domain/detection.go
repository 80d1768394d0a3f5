package domain

// PickStatus is the cherry-pick classification for a (source PR, branch) pair
type PickStatus string

const (
	PickStatusNotPicked PickStatus = "not_picked"
	PickStatusPicked    PickStatus = "picked"
	PickStatusUnknown   PickStatus = "unknown"
)

// DetectionMethodBodyReference labels results found through a PR body reference
const DetectionMethodBodyReference = "PR body reference"

// DetectionResult is the outcome of checking one source PR against one target branch
type DetectionResult struct {
	DetectionMethod string
	RelatedPR       *PullRequestInfo // Backport PR (nil unless Status is picked)
	SourcePR        PullRequestInfo
	Status          PickStatus
	TargetBranch    string
}

// NewPickedResult builds a result pointing to the backport PR found for branch
func NewPickedResult(source PullRequestInfo, branch string, related PullRequestInfo) DetectionResult {
	return DetectionResult{
		DetectionMethod: DetectionMethodBodyReference,
		RelatedPR:       &related,
		SourcePR:        source,
		Status:          PickStatusPicked,
		TargetBranch:    branch,
	}
}

// NewNotPickedResult builds a result for a branch with no backport
func NewNotPickedResult(source PullRequestInfo, branch string) DetectionResult {
	return DetectionResult{
		SourcePR:     source,
		Status:       PickStatusNotPicked,
		TargetBranch: branch,
	}
}

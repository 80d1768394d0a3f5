package domain

import (
	"fmt"
	"strings"
)

// cherryPickKeywords are phrases that mark a PR as a backport
var cherryPickKeywords = []string{
	"cherry-pick",
	"cherry pick",
	"cherrypick",
	"backport",
	"pick pr",
}

// IsCherryPickReference reports whether a PR body marks the PR as a backport of source.
//
// Recognized forms include:
//   - "Cherry-pick from master\npr: #45911"
//   - "pr: https://github.com/milvus-io/milvus/pull/45111"
//   - "also pick pr: #45237"
//
// A "pr:" label next to a reference is enough on its own; otherwise both a
// keyword and a reference to the source PR must be present.
func IsCherryPickReference(body string, source int) bool {
	if body == "" {
		return false
	}

	lower := strings.ToLower(body)

	hasKeyword := false
	for _, kw := range cherryPickKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}

	hasReference := false
	for _, ref := range referencePatterns(source) {
		if strings.Contains(body, ref) || strings.Contains(lower, ref) {
			hasReference = true
			break
		}
	}

	hasLabel := strings.Contains(lower, "pr:") || strings.Contains(lower, "pr :")
	if hasLabel && hasReference {
		return true
	}

	return hasKeyword && hasReference
}

func referencePatterns(source int) []string {
	return []string{
		fmt.Sprintf("#%d", source),
		fmt.Sprintf("pull/%d", source),
		fmt.Sprintf("pr: #%d", source),
		fmt.Sprintf("pr: %d", source),
		fmt.Sprintf("pr:#%d", source),
		fmt.Sprintf("pr:%d", source),
	}
}

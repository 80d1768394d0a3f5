package domain

import (
	"regexp"
	"slices"
)

var (
	// majorBranchPattern matches major.minor only (2.4, 2.5)
	majorBranchPattern = regexp.MustCompile(`^\d+\.\d+$`)

	// releaseBranchPatterns lists every release branch shape we recognize:
	// 2.4, 2.2.5, 2.x and 2.4.x
	releaseBranchPatterns = []*regexp.Regexp{
		majorBranchPattern,
		regexp.MustCompile(`^\d+\.\d+\.\d+$`),
		regexp.MustCompile(`^\d+\.x$`),
		regexp.MustCompile(`^\d+\.\d+\.x$`),
	}
)

// IsReleaseBranch reports whether name looks like a release branch.
// With majorOnly set, only major.minor names qualify.
func IsReleaseBranch(name string, majorOnly bool) bool {
	if majorOnly {
		return majorBranchPattern.MatchString(name)
	}
	for _, p := range releaseBranchPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// DetectReleaseBranches picks release branches out of all branch names,
// newest version first. The excluded branch is never returned.
// A limit <= 0 means no limit.
func DetectReleaseBranches(all []string, exclude string, majorOnly bool, limit int) []string {
	release := make([]string, 0, len(all))
	for _, name := range all {
		if name == exclude {
			continue
		}
		if IsReleaseBranch(name, majorOnly) {
			release = append(release, name)
		}
	}

	// Stable so equal versions keep their input order
	slices.SortStableFunc(release, func(a, b string) int {
		return CompareVersions(b, a)
	})

	if limit > 0 && len(release) > limit {
		return release[:limit]
	}
	return release
}

// FilterBranches returns the targets that exist in all, in the order they were requested
func FilterBranches(all, targets []string) []string {
	existing := make(map[string]bool, len(all))
	for _, name := range all {
		existing[name] = true
	}

	result := make([]string, 0, len(targets))
	for _, t := range targets {
		if existing[t] {
			result = append(result, t)
		}
	}
	return result
}

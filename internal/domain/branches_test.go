package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectReleaseBranches_Basic(t *testing.T) {
	branches := []string{"main", "2.4", "2.5", "2.3", "feature-x"}

	result := DetectReleaseBranches(branches, "main", true, 0)

	assert.Equal(t, []string{"2.5", "2.4", "2.3"}, result)
}

func TestDetectReleaseBranches_NumericOrdering(t *testing.T) {
	branches := []string{"2.9", "2.10", "2.8"}

	result := DetectReleaseBranches(branches, "", true, 0)

	assert.Equal(t, []string{"2.10", "2.9", "2.8"}, result)
}

func TestDetectReleaseBranches_ExcludedBranchNeverReturned(t *testing.T) {
	tests := []struct {
		name      string
		branches  []string
		exclude   string
		majorOnly bool
	}{
		{"major branch excluded", []string{"2.4", "2.5"}, "2.5", true},
		{"patch branch excluded", []string{"2.4.1", "2.4"}, "2.4.1", false},
		{"x branch excluded", []string{"2.x", "3.x"}, "3.x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectReleaseBranches(tt.branches, tt.exclude, tt.majorOnly, 0)
			assert.NotContains(t, result, tt.exclude)
			assert.NotEmpty(t, result)
		})
	}
}

func TestDetectReleaseBranches_MajorOnlyExcludesPatch(t *testing.T) {
	branches := []string{"master", "2.4", "2.4.1", "2.4.x", "2.x"}

	majors := DetectReleaseBranches(branches, "master", true, 0)
	all := DetectReleaseBranches(branches, "master", false, 0)

	assert.Equal(t, []string{"2.4"}, majors)
	assert.Contains(t, all, "2.4.1")
	assert.Contains(t, all, "2.4.x")
	assert.Contains(t, all, "2.x")
	assert.Equal(t, "2.4.1", all[0])
}

func TestDetectReleaseBranches_EqualVersionsKeepInputOrder(t *testing.T) {
	branches := []string{"2.4.x", "2.4", "2.3"}

	result := DetectReleaseBranches(branches, "", false, 0)

	assert.Equal(t, []string{"2.4.x", "2.4", "2.3"}, result)
}

func TestDetectReleaseBranches_Limit(t *testing.T) {
	branches := []string{"2.1", "2.2", "2.3", "2.4"}

	result := DetectReleaseBranches(branches, "", true, 2)

	assert.Equal(t, []string{"2.4", "2.3"}, result)
}

func TestDetectReleaseBranches_RejectsNonNumeric(t *testing.T) {
	branches := []string{"v2.4", "2.4-rc", "release-2.4", "a.b", "2.4.1.x.y"}

	assert.Empty(t, DetectReleaseBranches(branches, "", false, 0))
}

func TestFilterBranches(t *testing.T) {
	tests := []struct {
		name     string
		all      []string
		targets  []string
		expected []string
	}{
		{"all exist", []string{"main", "2.4", "2.5", "2.3"}, []string{"2.4", "2.5"}, []string{"2.4", "2.5"}},
		{"missing dropped", []string{"main", "2.4", "2.5"}, []string{"2.5", "2.6"}, []string{"2.5"}},
		{"requested order kept", []string{"2.4", "2.5"}, []string{"2.4", "2.5"}, []string{"2.4", "2.5"}},
		{"reverse requested order kept", []string{"2.4", "2.5"}, []string{"2.5", "2.4"}, []string{"2.5", "2.4"}},
		{"none exist", []string{"main"}, []string{"2.6"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterBranches(tt.all, tt.targets))
		})
	}
}

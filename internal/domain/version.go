package domain

import (
	"cmp"
	"strings"
)

// VersionComponents extracts the numeric components of a version-like branch name
// as digit strings without leading zeros. A trailing ".x" is ignored and
// non-numeric components are skipped, so "2.4.x" gives ["2" "4"] and
// "2.010.1" gives ["2" "10" "1"]. Components are never converted to ints,
// so arbitrarily long numbers compare correctly.
func VersionComponents(branch string) []string {
	clean := strings.TrimSuffix(branch, ".x")

	var parts []string
	for _, p := range strings.Split(clean, ".") {
		if !isDigits(p) {
			continue
		}
		if p = strings.TrimLeft(p, "0"); p == "" {
			p = "0"
		}
		parts = append(parts, p)
	}
	return parts
}

// CompareVersions compares two branch names numerically, component by component.
// Missing components count as 0. Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	va := VersionComponents(a)
	vb := VersionComponents(b)

	for i := 0; i < max(len(va), len(vb)); i++ {
		na, nb := "0", "0"
		if i < len(va) {
			na = va[i]
		}
		if i < len(vb) {
			nb = vb[i]
		}
		if c := compareDigits(na, nb); c != 0 {
			return c
		}
	}
	return 0
}

// compareDigits orders two digit strings without leading zeros:
// the longer one is larger, equal lengths compare lexically
func compareDigits(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

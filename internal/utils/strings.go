package utils

import (
	"strings"
)

// NormalizeSpace trims and collapses repeated whitespace into one space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList flattens repeated and comma separated query values
// (?category=a&category=b,c) into trimmed, de-duplicated entries.
func SplitList(values ...string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, raw := range values {
		for _, p := range strings.Split(raw, ",") {
			p = NormalizeSpace(p)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

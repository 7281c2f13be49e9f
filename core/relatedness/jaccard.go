package relatedness

import "strings"

// tokenize lowercases the content and splits it on whitespace,
// returning the resulting word set.
func tokenize(content string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(content))
	if len(fields) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// jaccard computes intersection-over-union similarity of two word
// sets. Empty sets yield 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for word := range a {
		if _, ok := b[word]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

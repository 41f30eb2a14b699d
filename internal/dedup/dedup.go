package dedup

import (
	"log/slog"
	"strings"
)

// DefaultThreshold is the similarity above which two elements of the same
// kind count as near-duplicates.
const DefaultThreshold = 0.85

// Ratio is the normalized character-sequence similarity of two strings,
// case-insensitive: 2*LCS(a,b)/(len(a)+len(b)). Symmetric, 1.0 for
// identical inputs, 0.0 for disjoint character sequences.
func Ratio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	lcs := longestCommonSubsequence(ra, rb)
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}

func longestCommonSubsequence(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Dedupe keeps candidates whose similarity against every already-kept
// candidate and every excluded element stays strictly below threshold.
// First seen wins; later near-duplicates are dropped and logged.
func Dedupe(candidates []string, threshold float64, exclude []string) []string {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var kept []string
	for _, candidate := range candidates {
		if tooSimilar(candidate, kept, threshold) || tooSimilar(candidate, exclude, threshold) {
			slog.Debug("[SimilarityDeduplicator] Dropping near-duplicate",
				slog.String("candidate", candidate))
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}

func tooSimilar(candidate string, against []string, threshold float64) bool {
	for _, existing := range against {
		if Ratio(candidate, existing) >= threshold {
			return true
		}
	}
	return false
}

// JaccardOverlap is the exact-string overlap of two element sets divided
// by the larger set's size. Used as a cross-ad diagnostic only.
func JaccardOverlap(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	if larger == 0 {
		return 0.0
	}
	common := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			common++
		}
	}
	return float64(common) / float64(larger)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

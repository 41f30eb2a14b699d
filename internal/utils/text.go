package utils

import "strings"

// TruncateAtWord cuts s down to at most limit runes, ending at the last
// whitespace boundary at or before the limit. When the prefix contains no
// whitespace the cut is a hard one at the limit.
func TruncateAtWord(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	prefix := string(runes[:limit])
	if idx := strings.LastIndexAny(prefix, " \t\n"); idx > 0 {
		return strings.TrimRight(prefix[:idx], " \t\n")
	}
	return prefix
}

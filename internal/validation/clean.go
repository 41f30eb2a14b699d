package validation

import (
	"strings"

	"github.com/spacesedan/adforge/internal/utils"
)

// CleanText repairs a single element so it meets the basic policy rules.
// Short all-caps acronyms (3 letters or fewer) are preserved here even
// though Validate still flags any 3+ caps run; callers relying on both
// should expect that mismatch.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = emojiPattern.ReplaceAllString(strings.TrimSpace(text), "")
	for _, p := range prohibitedPunctuation {
		text = strings.ReplaceAll(text, p, "")
	}
	text = doubleSpacePattern.ReplaceAllString(text, " ")

	text = consecutiveCapsPattern.ReplaceAllStringFunc(text, func(word string) string {
		if len([]rune(word)) <= 3 {
			return word
		}
		runes := []rune(strings.ToLower(word))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		return string(runes)
	})

	return strings.TrimSpace(text)
}

// QuickFix repairs every element of an ad and truncates over-length ones
// at a word boundary.
func (v *Validator) QuickFix(headlines, descriptions []string) ([]string, []string) {
	var fixedHeadlines, fixedDescriptions []string

	for _, h := range headlines {
		if strings.TrimSpace(h) == "" {
			continue
		}
		fixed := CleanText(h)
		if len([]rune(fixed)) > v.limits.HeadlineMax {
			fixed = utils.TruncateAtWord(fixed, v.limits.HeadlineMax)
		}
		fixedHeadlines = append(fixedHeadlines, fixed)
	}
	for _, d := range descriptions {
		if strings.TrimSpace(d) == "" {
			continue
		}
		fixed := CleanText(d)
		if len([]rune(fixed)) > v.limits.DescriptionMax {
			fixed = utils.TruncateAtWord(fixed, v.limits.DescriptionMax)
		}
		fixedDescriptions = append(fixedDescriptions, fixed)
	}

	return fixedHeadlines, fixedDescriptions
}

package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/adforge/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1")

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText strips any markdown a provider smuggled into the copy
// before scoring it.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

func AnalyzeWithVADER(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	sentiment := analyzer.PolarityScores(plainText)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

// AnalyzeAdTone runs the full ad copy through VADER as a diagnostic. The
// result is logged alongside the requested tone, never enforced.
func AnalyzeAdTone(ad models.GeneratedAd) (float64, string) {
	parts := make([]string, 0, len(ad.Headlines)+len(ad.Descriptions))
	parts = append(parts, ad.Headlines...)
	parts = append(parts, ad.Descriptions...)

	return AnalyzeWithVADER(strings.Join(parts, ". "))
}

// Package scoring computes the weighted multi-category quality score for a
// finished ad: six categories on a 50 point sub-scale combined into an
// overall 0-100 score with grade, benchmark, and recommendations.
package scoring

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/spacesedan/adforge/internal/models"
)

const categoryMax = 50.0

var categoryWeights = map[string]float64{
	"quality":      0.25,
	"relevance":    0.20,
	"engagement":   0.20,
	"compliance":   0.15,
	"optimization": 0.10,
	"uniqueness":   0.10,
}

// Engine scores ads against a per-industry benchmark.
type Engine struct {
	businessType string
}

func NewEngine(businessType string) *Engine {
	if _, ok := industryBenchmarks[businessType]; !ok {
		businessType = models.BusinessTypeGeneric
	}
	return &Engine{businessType: businessType}
}

// Score computes the full quality report for one ad. It never fails;
// missing keywords yield a neutral relevance score.
func (e *Engine) Score(headlines, descriptions, kws []string, withBenchmark bool) models.ScoreResult {
	categories := map[string]models.CategoryScore{
		"quality":      scoreQuality(headlines, descriptions),
		"relevance":    scoreRelevance(headlines, descriptions, kws),
		"engagement":   scoreEngagement(headlines, descriptions),
		"compliance":   scoreCompliance(headlines, descriptions),
		"optimization": scoreOptimization(headlines, descriptions),
		"uniqueness":   scoreUniqueness(headlines, descriptions),
	}

	// Each category lives on a 50 point sub-scale, so its percentage times
	// its weight is its contribution to the overall 0-100 score.
	overall := 0.0
	for name, cat := range categories {
		overall += cat.Percentage * categoryWeights[name]
	}
	overall = round1(overall)

	result := models.ScoreResult{
		OverallScore:    overall,
		Grade:           Grade(overall),
		Categories:      categories,
		Strengths:       identifyStrengths(categories),
		Weaknesses:      identifyWeaknesses(categories),
		Recommendations: recommendations(categories, overall),
	}
	if withBenchmark {
		result.Benchmark = compareToBenchmark(e.businessType, overall)
	}

	slog.Info("[ScoreEngine] Scoring completed",
		slog.Float64("overall_score", overall),
		slog.String("grade", result.Grade))

	return result
}

func newCategory(score float64) models.CategoryScore {
	if score < 0 {
		score = 0
	}
	if score > categoryMax {
		score = categoryMax
	}
	return models.CategoryScore{
		Score:      round1(score),
		MaxScore:   categoryMax,
		Percentage: round1(score / categoryMax * 100),
	}
}

func scoreQuality(headlines, descriptions []string) models.CategoryScore {
	score := 0.0
	all := append(append([]string{}, headlines...), descriptions...)

	// Length optimality, 10 pts.
	optimalHeadlines := 0
	for _, h := range headlines {
		if l := runeLen(h); l >= 15 && l <= 30 {
			optimalHeadlines++
		}
	}
	optimalDescriptions := 0
	for _, d := range descriptions {
		if l := runeLen(d); l >= 50 && l <= 90 {
			optimalDescriptions++
		}
	}
	if len(headlines) > 0 {
		score += float64(optimalHeadlines) / float64(len(headlines)) * 5
	}
	if len(descriptions) > 0 {
		score += float64(optimalDescriptions) / float64(len(descriptions)) * 5
	}

	// Grammar, 10 pts with fixed penalties.
	grammar := 10.0
	for _, text := range all {
		if isUpperText(text) {
			grammar -= 2
		}
		if strings.Count(text, "!") > 1 || strings.Count(text, "?") > 1 {
			grammar--
		}
		if strings.Contains(text, "  ") {
			grammar -= 0.5
		}
	}
	score += math.Max(0, grammar)

	// Clarity, 10 pts: long unpunctuated sentences cost a point each.
	clarity := 8.0
	for _, text := range all {
		if len(strings.Fields(text)) > 15 && !strings.ContainsAny(text, ",.") {
			clarity--
		}
	}
	score += math.Max(0, math.Min(10, clarity))

	// Structure, 10 pts.
	structure := 0.0
	if varietyOfLengths(headlines) > 1 {
		structure += 3
	}
	for _, d := range descriptions {
		if strings.ContainsAny(d, ".,") {
			structure += 3
			break
		}
	}
	if len(headlines) >= 10 {
		structure += 2
	}
	if len(descriptions) >= 3 {
		structure += 2
	}
	score += structure

	// Coherence, 10 pts: excess vocabulary repetition subtracts.
	coherence := 8.0
	counts := map[string]int{}
	for _, w := range strings.Fields(strings.ToLower(strings.Join(all, " "))) {
		counts[w]++
	}
	for word, count := range counts {
		if count > 5 {
			if _, common := repetitionStopwords[word]; !common {
				coherence -= 0.5
			}
		}
	}
	score += math.Max(0, coherence)

	return newCategory(score)
}

func scoreRelevance(headlines, descriptions, kws []string) models.CategoryScore {
	if len(kws) == 0 {
		// Neutral half credit when no keywords are supplied.
		return newCategory(25)
	}

	score := 0.0
	allText := strings.ToLower(strings.Join(append(append([]string{}, headlines...), descriptions...), " "))
	headlinesText := strings.ToLower(strings.Join(headlines, " "))

	// Keyword presence, 15 pts.
	matches := 0
	for _, kw := range kws {
		if strings.Contains(allText, strings.ToLower(kw)) {
			matches++
		}
	}
	score += float64(matches) / float64(len(kws)) * 15

	// Keyword placement in headlines, 10 pts.
	inHeadlines := 0
	for _, kw := range kws {
		if strings.Contains(headlinesText, strings.ToLower(kw)) {
			inHeadlines++
		}
	}
	score += float64(inHeadlines) / float64(len(kws)) * 10

	// Semantic variation, 10 pts: base 8, bonus when most keyword stems land.
	semantic := 8.0
	variations := 0
	for _, kw := range kws {
		base := kw
		if idx := strings.Index(kw, " "); idx > 0 {
			base = kw[:idx]
		}
		if strings.Contains(allText, strings.ToLower(base)) {
			variations++
		}
	}
	if float64(variations) > float64(len(kws))*0.7 {
		semantic += 2
	}
	score += semantic

	// Topic focus, 10 pts: top keywords repeated earn a bonus.
	focus := 8.0
	top := kws
	if len(top) > 3 {
		top = top[:3]
	}
	repetition := 0
	for _, kw := range top {
		c := strings.Count(allText, strings.ToLower(kw))
		if c > 3 {
			c = 3
		}
		repetition += c
	}
	if repetition >= 5 {
		focus += 2
	}
	score += focus

	return newCategory(score)
}

func scoreEngagement(headlines, descriptions []string) models.CategoryScore {
	allText := strings.ToLower(strings.Join(append(append([]string{}, headlines...), descriptions...), " "))

	countHits := func(category string) int {
		hits := 0
		for _, w := range powerWords[category] {
			if strings.Contains(allText, w) {
				hits++
			}
		}
		return hits
	}

	score := 0.0
	score += math.Min(float64(countHits("emocionales"))*2, 10)
	score += math.Min(float64(countHits("accion"))*5, 15)
	score += math.Min(float64(countHits("beneficios"))*3, 10)
	score += math.Min(float64(countHits("urgencia"))*3, 10)
	score += math.Min(float64(countHits("profesionales"))*1.5, 5)

	return newCategory(score)
}

func scoreCompliance(headlines, descriptions []string) models.CategoryScore {
	score := categoryMax
	allText := strings.ToLower(strings.Join(append(append([]string{}, headlines...), descriptions...), " "))

	for _, forbidden := range complianceForbidden {
		if strings.Contains(allText, forbidden) {
			score -= 10
		}
	}
	for _, h := range headlines {
		if runeLen(h) > 30 {
			score -= 5
		}
		if isUpperText(h) {
			score -= 3
		}
		if strings.ContainsAny(h, "!?¡¿") {
			score -= 2
		}
	}
	for _, d := range descriptions {
		if runeLen(d) > 90 {
			score -= 5
		}
		if isUpperText(d) {
			score -= 3
		}
	}

	return newCategory(score)
}

func scoreOptimization(headlines, descriptions []string) models.CategoryScore {
	score := 0.0

	// Element counts, 20 pts.
	switch {
	case len(headlines) >= 15:
		score += 10
	case len(headlines) >= 10:
		score += 7
	case len(headlines) >= 5:
		score += 4
	}
	switch {
	case len(descriptions) >= 4:
		score += 10
	case len(descriptions) >= 2:
		score += 5
	}

	// Variety, 15 pts.
	if len(headlines) > 0 && float64(varietyOfLengths(headlines)) > float64(len(headlines))*0.5 {
		score += 5
	}
	if len(headlines) > 0 && uniqueCount(headlines) == len(headlines) {
		score += 5
	}
	if len(descriptions) > 0 && uniqueCount(descriptions) == len(descriptions) {
		score += 5
	}

	// Numerals, 10 pts (5 without).
	hasDigit := strings.ContainsFunc(strings.Join(append(append([]string{}, headlines...), descriptions...), " "), unicode.IsDigit)
	if hasDigit {
		score += 10
	} else {
		score += 5
	}

	// Mobile friendliness, 5 pts: short headline ratio.
	if len(headlines) > 0 {
		short := 0
		for _, h := range headlines {
			if runeLen(h) <= 25 {
				short++
			}
		}
		score += float64(short) / float64(len(headlines)) * 5
	}

	return newCategory(score)
}

func scoreUniqueness(headlines, descriptions []string) models.CategoryScore {
	score := 30.0
	allText := strings.ToLower(strings.Join(append(append([]string{}, headlines...), descriptions...), " "))

	// Vocabulary diversity, up to 10 pts.
	var candidates []string
	for _, w := range strings.Fields(allText) {
		if len([]rune(w)) > 3 {
			if _, common := commonWords[w]; !common {
				candidates = append(candidates, w)
			}
		}
	}
	if len(candidates) > 0 {
		score += float64(uniqueCount(candidates)) / float64(len(candidates)) * 10
	}

	// Template-boilerplate penalty.
	templates := 0
	for _, phrase := range templatePhrases {
		if strings.Contains(allText, phrase) {
			templates++
		}
	}
	if templates > 2 {
		score -= 5
	}

	// Creativity bonus.
	creative := 0
	for _, w := range creativeWords {
		if strings.Contains(allText, w) {
			creative++
		}
	}
	if creative > 2 {
		score += 5
	}

	return newCategory(score)
}

func identifyStrengths(categories map[string]models.CategoryScore) []string {
	type entry struct {
		name string
		cat  models.CategoryScore
	}
	var entries []entry
	for name, cat := range categories {
		if cat.Percentage >= 80 {
			entries = append(entries, entry{name, cat})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].cat.Score > entries[j].cat.Score })

	strengths := make([]string, 0, len(entries))
	for _, e := range entries {
		strengths = append(strengths, fmt.Sprintf("Excelente %s (%.1f%%)", e.name, e.cat.Percentage))
	}
	return strengths
}

func identifyWeaknesses(categories map[string]models.CategoryScore) []string {
	type entry struct {
		name string
		cat  models.CategoryScore
	}
	var entries []entry
	for name, cat := range categories {
		if cat.Percentage < 60 {
			entries = append(entries, entry{name, cat})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].cat.Score < entries[j].cat.Score })

	weaknesses := make([]string, 0, len(entries))
	for _, e := range entries {
		weaknesses = append(weaknesses, fmt.Sprintf("%s necesita mejoras (%.1f%%)", e.name, e.cat.Percentage))
	}
	return weaknesses
}

var categoryAdvice = map[string]string{
	"quality":      "Revisa longitud de textos y gramática",
	"relevance":    "Incluye más keywords en headlines",
	"engagement":   "Agrega CTAs claros y urgencia",
	"compliance":   "Corrige violaciones de políticas inmediatamente",
	"optimization": "Agrega más variaciones de headlines",
	"uniqueness":   "Usa lenguaje más único y creativo",
}

// recommendationOrder keeps weak-category advice deterministic, worst first.
func recommendations(categories map[string]models.CategoryScore, overall float64) []string {
	type entry struct {
		name string
		cat  models.CategoryScore
	}
	var weak []entry
	for name, cat := range categories {
		if cat.Percentage < 60 {
			weak = append(weak, entry{name, cat})
		}
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i].cat.Score < weak[j].cat.Score })

	var recs []string
	if overall < 60 {
		recs = append(recs, "Score bajo: considera regenerar el anuncio")
	}
	for _, e := range weak {
		recs = append(recs, categoryAdvice[e.name])
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

func runeLen(s string) int { return len([]rune(s)) }

func isUpperText(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func varietyOfLengths(values []string) int {
	lengths := map[int]struct{}{}
	for _, v := range values {
		lengths[runeLen(v)] = struct{}{}
	}
	return len(lengths)
}

func uniqueCount(values []string) int {
	set := map[string]struct{}{}
	for _, v := range values {
		set[v] = struct{}{}
	}
	return len(set)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

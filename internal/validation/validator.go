package validation

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spacesedan/adforge/internal/models"
)

var prohibitedPunctuation = []string{"!", "¡", "?", "¿"}

var emojiPattern = regexp.MustCompile("[" +
	"\U0001F600-\U0001F64F" +
	"\U0001F300-\U0001F5FF" +
	"\U0001F680-\U0001F6FF" +
	"\U0001F1E0-\U0001F1FF" +
	"✂-➰" +
	"Ⓜ-\U0001F251" +
	"\U0001F900-\U0001F9FF" +
	"\U0001FA00-\U0001FA6F" +
	"\U0001FA70-\U0001FAFF" +
	"]+")

var (
	consecutiveCapsPattern = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ]{3,}`)
	doubleSpacePattern     = regexp.MustCompile(`\s{2,}`)
	digitsOnlyPattern      = regexp.MustCompile(`^[\d\s]+$`)
)

var forbiddenPhrases = []string{
	"click aqui",
	"haz clic",
	"clic aqui",
	"descarga ya",
	"descarga ahora",
	"100% gratis",
	"100% garantizado",
	"garantia total",
	"totalmente gratis",
}

// ForbiddenPhrases exposes the blocklist for the compliance scoring pass.
func ForbiddenPhrases() []string { return forbiddenPhrases }

// Validator checks generated copy against the output contract.
type Validator struct {
	limits models.Limits
}

func New(limits models.Limits) *Validator {
	return &Validator{limits: limits}
}

// Validate runs the full rule set over one ad's headlines and descriptions.
// Duplicates are warnings; everything else in the rule set is a violation.
func (v *Validator) Validate(headlines, descriptions []string) models.ValidationResult {
	result := models.ValidationResult{
		Valid:        true,
		Headlines:    make(map[int]models.ElementResult, len(headlines)),
		Descriptions: make(map[int]models.ElementResult, len(descriptions)),
	}
	result.Summary.TotalHeadlines = len(headlines)
	result.Summary.TotalDescriptions = len(descriptions)

	nonEmptyHeadlines := countNonEmpty(headlines)
	nonEmptyDescriptions := countNonEmpty(descriptions)

	if nonEmptyHeadlines < v.limits.MinValidHeadlines {
		result.Violations = append(result.Violations,
			fmt.Sprintf("Se requieren al menos %d títulos válidos (tienes %d)", v.limits.MinValidHeadlines, nonEmptyHeadlines))
		result.Valid = false
	}
	if nonEmptyDescriptions < v.limits.MinValidDescs {
		result.Violations = append(result.Violations,
			fmt.Sprintf("Se requieren al menos %d descripciones válidas (tienes %d)", v.limits.MinValidDescs, nonEmptyDescriptions))
		result.Valid = false
	}

	for i, h := range headlines {
		if strings.TrimSpace(h) == "" {
			continue
		}
		elem := v.validateElement(h, v.limits.HeadlineMin, v.limits.HeadlineMax)
		result.Headlines[i] = elem
		if elem.Valid {
			result.Summary.ValidHeadlines++
		} else {
			result.Summary.InvalidHeadlines++
			result.Valid = false
		}
	}
	for i, d := range descriptions {
		if strings.TrimSpace(d) == "" {
			continue
		}
		elem := v.validateElement(d, v.limits.DescriptionMin, v.limits.DescriptionMax)
		result.Descriptions[i] = elem
		if elem.Valid {
			result.Summary.ValidDescriptions++
		} else {
			result.Summary.InvalidDescriptions++
			result.Valid = false
		}
	}

	if dup := duplicateCount(headlines); dup > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Se encontraron %d título(s) duplicado(s)", dup))
	}
	if dup := duplicateCount(descriptions); dup > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Se encontraron %d descripción(es) duplicada(s)", dup))
	}

	if result.Valid {
		slog.Info("[ResponseValidator] Ad valid",
			slog.Int("valid_headlines", result.Summary.ValidHeadlines),
			slog.Int("valid_descriptions", result.Summary.ValidDescriptions))
	} else {
		slog.Warn("[ResponseValidator] Ad invalid",
			slog.Int("violations", len(result.Violations)+result.Summary.InvalidHeadlines+result.Summary.InvalidDescriptions))
	}

	return result
}

func (v *Validator) validateElement(text string, minLen, maxLen int) models.ElementResult {
	text = strings.TrimSpace(text)
	length := len([]rune(text))
	var violations []string

	if length > maxLen {
		violations = append(violations, fmt.Sprintf("Excede %d caracteres (%d caracteres)", maxLen, length))
	}
	if length < minLen {
		violations = append(violations, fmt.Sprintf("Texto muy corto (menos de %d caracteres)", minLen))
	}
	if matches := consecutiveCapsPattern.FindAllString(text, -1); len(matches) > 0 {
		violations = append(violations, "Mayúsculas consecutivas encontradas: "+strings.Join(matches, ", "))
	}
	var foundPunct []string
	for _, p := range prohibitedPunctuation {
		if strings.Contains(text, p) {
			foundPunct = append(foundPunct, p)
		}
	}
	if len(foundPunct) > 0 {
		violations = append(violations, "Puntuación prohibida: "+strings.Join(foundPunct, ", "))
	}
	if emojiPattern.MatchString(text) {
		violations = append(violations, "Contiene emojis (no permitidos)")
	}
	if doubleSpacePattern.MatchString(text) {
		violations = append(violations, "Contiene espacios dobles o múltiples")
	}
	lower := strings.ToLower(text)
	var foundPhrases []string
	for _, phrase := range forbiddenPhrases {
		if strings.Contains(lower, phrase) {
			foundPhrases = append(foundPhrases, phrase)
		}
	}
	if len(foundPhrases) > 0 {
		violations = append(violations, "Frases prohibidas: "+strings.Join(foundPhrases, ", "))
	}
	if digitsOnlyPattern.MatchString(text) {
		violations = append(violations, "No puede contener solo números")
	}

	return models.ElementResult{
		Text:       text,
		Valid:      len(violations) == 0,
		Violations: violations,
		Length:     length,
	}
}

func countNonEmpty(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

func duplicateCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	nonEmpty := countNonEmpty(values)
	return nonEmpty - len(seen)
}

package providers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/utils"
)

// cleanProviderResponse strips Markdown code fences off the raw body and
// trims it down to the JSON object the provider was asked for.
func cleanProviderResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	// Handles "```json\n{...}\n```" and "```\n{...}\n```", including bodies
	// where only the prefix or suffix fence survived.
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "\n")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	cleaned = strings.TrimSpace(cleaned)

	if !(strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}")) {
		snippet := cleaned
		if len(snippet) > 100 {
			snippet = snippet[:100] + "..."
		}
		slog.Warn("[ProviderGateway] Response body does not look like a JSON object",
			slog.String("cleaned_snippet", snippet))
	}
	return cleaned
}

// rawPayload mirrors the provider contract before the schema check. Pointers
// distinguish an absent key from an empty array.
type rawPayload struct {
	Headlines    *[]string `json:"headlines"`
	Descriptions *[]string `json:"descriptions"`
}

// parsePayload turns a cleaned response body into a typed payload. A body
// missing either required key is a malformed response.
func parsePayload(cleaned string) (models.ProviderPayload, error) {
	var raw rawPayload
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return models.ProviderPayload{}, fmt.Errorf("respuesta no es JSON válido: %w", err)
	}
	if raw.Headlines == nil || raw.Descriptions == nil {
		return models.ProviderPayload{}, fmt.Errorf("respuesta sin claves requeridas 'headlines' y 'descriptions'")
	}
	return models.ProviderPayload{
		Headlines:    *raw.Headlines,
		Descriptions: *raw.Descriptions,
	}, nil
}

// repairElements truncates over-length elements at a word boundary, then
// drops anything still outside the [min,max] window.
func repairElements(elements []string, minLen, maxLen int) []string {
	var kept []string
	for _, elem := range elements {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		if len([]rune(elem)) > maxLen {
			elem = utils.TruncateAtWord(elem, maxLen)
		}
		length := len([]rune(elem))
		if length < minLen || length > maxLen {
			slog.Debug("[ProviderGateway] Dropping out-of-window element",
				slog.String("element", elem),
				slog.Int("length", length))
			continue
		}
		kept = append(kept, elem)
	}
	return kept
}

// finalizeResponse runs the shared post-call path: fence cleaning, schema
// parse, length repair, and the minimum-count floors.
func finalizeResponse(raw, providerName, model string, req models.GenerationRequest, limits models.Limits) models.ProviderResult {
	payload, err := parsePayload(cleanProviderResponse(raw))
	if err != nil {
		return failure(models.ErrMalformed, providerName, req.VariationSeed, err.Error())
	}

	headlines := repairElements(payload.Headlines, limits.HeadlineMin, limits.HeadlineMax)
	descriptions := repairElements(payload.Descriptions, limits.DescriptionMin, limits.DescriptionMax)

	if len(headlines) < limits.MinValidHeadlines {
		return failure(models.ErrInsufficient, providerName, req.VariationSeed,
			fmt.Sprintf("Insuficientes títulos válidos: %d/%d", len(headlines), limits.MinValidHeadlines))
	}
	if len(descriptions) < limits.MinValidDescs {
		return failure(models.ErrInsufficient, providerName, req.VariationSeed,
			fmt.Sprintf("Insuficientes descripciones válidas: %d/%d", len(descriptions), limits.MinValidDescs))
	}

	return models.ProviderResult{
		Ad: &models.GeneratedAd{
			Headlines:     headlines,
			Descriptions:  descriptions,
			Provider:      providerName,
			Model:         model,
			Tone:          req.Tone,
			VariationSeed: req.VariationSeed,
		},
	}
}

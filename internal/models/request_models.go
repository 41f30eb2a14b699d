package models

import "strings"

const (
	MinRequestedHeadlines    = 3
	MaxRequestedHeadlines    = 15
	MinRequestedDescriptions = 2
	MaxRequestedDescriptions = 4
)

// GenerationRequest carries everything one provider call needs.
type GenerationRequest struct {
	Keywords        []string `json:"keywords"`
	NumHeadlines    int      `json:"num_headlines"`
	NumDescriptions int      `json:"num_descriptions"`
	Tone            string   `json:"tone"`
	Temperature     float32  `json:"temperature"`
	VariationSeed   int      `json:"variation_seed"`
	RawPrompt       string   `json:"raw_prompt,omitempty"`
	LandingURL      string   `json:"landing_url,omitempty"`
	BusinessDesc    string   `json:"business_description,omitempty"`
	IncludeLocation bool     `json:"include_location,omitempty"`
}

// Normalize dedupes keywords case-insensitively preserving first occurrence
// and clamps the requested counts into their allowed windows.
func (r *GenerationRequest) Normalize() {
	seen := make(map[string]struct{}, len(r.Keywords))
	kept := r.Keywords[:0]
	for _, kw := range r.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, kw)
	}
	r.Keywords = kept

	r.NumHeadlines = clamp(r.NumHeadlines, MinRequestedHeadlines, MaxRequestedHeadlines)
	r.NumDescriptions = clamp(r.NumDescriptions, MinRequestedDescriptions, MaxRequestedDescriptions)
	if r.Temperature < 0 {
		r.Temperature = 0
	}
	if r.Temperature > 2 {
		r.Temperature = 2
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Limits holds the configurable content bounds shared by the gateway,
// the validator, and the deduplicator.
type Limits struct {
	HeadlineMin         int     `json:"headline_min"`
	HeadlineMax         int     `json:"headline_max"`
	DescriptionMin      int     `json:"description_min"`
	DescriptionMax      int     `json:"description_max"`
	MinValidHeadlines   int     `json:"min_valid_headlines"`
	MinValidDescs       int     `json:"min_valid_descriptions"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

func DefaultLimits() Limits {
	return Limits{
		HeadlineMin:         10,
		HeadlineMax:         30,
		DescriptionMin:      30,
		DescriptionMax:      90,
		MinValidHeadlines:   3,
		MinValidDescs:       2,
		SimilarityThreshold: 0.85,
	}
}

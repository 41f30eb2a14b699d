package models

// ElementResult is the per-element verdict inside a ValidationResult.
type ElementResult struct {
	Text       string   `json:"text"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
	Length     int      `json:"length"`
}

// ValidationSummary carries the aggregate counts for one validated ad.
type ValidationSummary struct {
	TotalHeadlines      int `json:"total_headlines"`
	ValidHeadlines      int `json:"valid_headlines"`
	InvalidHeadlines    int `json:"invalid_headlines"`
	TotalDescriptions   int `json:"total_descriptions"`
	ValidDescriptions   int `json:"valid_descriptions"`
	InvalidDescriptions int `json:"invalid_descriptions"`
}

// ValidationResult belongs to exactly one GeneratedAd.
type ValidationResult struct {
	Valid        bool                  `json:"valid"`
	Headlines    map[int]ElementResult `json:"headlines"`
	Descriptions map[int]ElementResult `json:"descriptions"`
	Summary      ValidationSummary     `json:"summary"`
	Violations   []string              `json:"violations,omitempty"`
	Warnings     []string              `json:"warnings,omitempty"`
}

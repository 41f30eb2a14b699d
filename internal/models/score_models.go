package models

// CategoryScore is one scoring category's raw points and share of its max.
type CategoryScore struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// BenchmarkComparison places a score against a stored industry average.
type BenchmarkComparison struct {
	Industry        string  `json:"industry"`
	IndustryAverage float64 `json:"industry_average"`
	Difference      float64 `json:"difference"`
	Standing        string  `json:"standing"`
	Percentile      int     `json:"percentile"`
}

// ScoreResult is the full quality report for one finished ad.
type ScoreResult struct {
	OverallScore    float64                  `json:"overall_score"`
	Grade           string                   `json:"grade"`
	Categories      map[string]CategoryScore `json:"categories"`
	Strengths       []string                 `json:"strengths"`
	Weaknesses      []string                 `json:"weaknesses"`
	Recommendations []string                 `json:"recommendations"`
	Benchmark       *BenchmarkComparison     `json:"benchmark,omitempty"`
}

// RankedAd is one entry of a RankAds ordering, best first.
type RankedAd struct {
	Index        int     `json:"index"`
	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`
}

// AdComparison is the head-to-head output of CompareAds.
type AdComparison struct {
	Winner         string             `json:"winner"`
	ScoreA         float64            `json:"score_a"`
	ScoreB         float64            `json:"score_b"`
	CategoryDeltas map[string]float64 `json:"category_deltas"`
}

package scoring

import (
	"log/slog"
	"sort"

	"github.com/spacesedan/adforge/internal/models"
)

// RankAds scores every ad and returns a best-first ordering. Index refers
// to the ad's position in the input slice.
func (e *Engine) RankAds(ads []models.GeneratedAd, kws []string) []models.RankedAd {
	ranked := make([]models.RankedAd, 0, len(ads))
	for i, ad := range ads {
		result := e.Score(ad.Headlines, ad.Descriptions, kws, false)
		ranked = append(ranked, models.RankedAd{
			Index:        i,
			OverallScore: result.OverallScore,
			Grade:        result.Grade,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	if len(ranked) > 0 {
		slog.Info("[ScoreEngine] Ranking completed",
			slog.Int("ads", len(ranked)),
			slog.Float64("best", ranked[0].OverallScore),
			slog.Float64("worst", ranked[len(ranked)-1].OverallScore))
	}
	return ranked
}

// CompareAds scores two ads head to head with per-category deltas (a - b).
func (e *Engine) CompareAds(a, b models.GeneratedAd, kws []string) models.AdComparison {
	scoreA := e.Score(a.Headlines, a.Descriptions, kws, false)
	scoreB := e.Score(b.Headlines, b.Descriptions, kws, false)

	winner := "a"
	if scoreB.OverallScore > scoreA.OverallScore {
		winner = "b"
	}

	deltas := make(map[string]float64, len(scoreA.Categories))
	for name, catA := range scoreA.Categories {
		deltas[name] = round1(catA.Score - scoreB.Categories[name].Score)
	}

	return models.AdComparison{
		Winner:         winner,
		ScoreA:         scoreA.OverallScore,
		ScoreB:         scoreB.OverallScore,
		CategoryDeltas: deltas,
	}
}

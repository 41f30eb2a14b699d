package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adforge/internal/models"
)

var (
	cleanHeadlines = []string{
		"Amarres de Amor Efectivos",
		"Consulta Tarot del Amor",
		"Recupera a tu Pareja Hoy",
	}
	cleanDescriptions = []string{
		"Consulta con expertos en amarres de amor. Resultados reales.",
		"Vidente profesional te ayuda a recuperar a tu pareja hoy mismo.",
	}
	adKeywords = []string{"amarres de amor", "tarot"}
)

func TestScore(t *testing.T) {
	engine := NewEngine(models.BusinessTypeEsoteric)

	t.Run("overall and categories stay in bounds", func(t *testing.T) {
		result := engine.Score(cleanHeadlines, cleanDescriptions, adKeywords, false)
		assert.GreaterOrEqual(t, result.OverallScore, 0.0)
		assert.LessOrEqual(t, result.OverallScore, 100.0)
		require.Len(t, result.Categories, 6)
		for name, cat := range result.Categories {
			assert.GreaterOrEqual(t, cat.Percentage, 0.0, name)
			assert.LessOrEqual(t, cat.Percentage, 100.0, name)
			assert.Equal(t, 50.0, cat.MaxScore, name)
		}
	})

	t.Run("clean ad gets maximum compliance", func(t *testing.T) {
		result := engine.Score(cleanHeadlines, cleanDescriptions, adKeywords, false)
		compliance := result.Categories["compliance"]
		assert.Equal(t, 50.0, compliance.Score)
		assert.Equal(t, 100.0, compliance.Percentage)
	})

	t.Run("forbidden phrase lowers compliance", func(t *testing.T) {
		dirty := append([]string{}, cleanDescriptions...)
		dirty[0] = "Amarres de amor 100% garantizado para todos los casos hoy."
		result := engine.Score(cleanHeadlines, dirty, adKeywords, false)
		assert.Less(t, result.Categories["compliance"].Score, 50.0)
	})

	t.Run("missing keywords yield neutral relevance", func(t *testing.T) {
		result := engine.Score(cleanHeadlines, cleanDescriptions, nil, false)
		assert.Equal(t, 25.0, result.Categories["relevance"].Score)
	})

	t.Run("never fails on empty input", func(t *testing.T) {
		result := engine.Score(nil, nil, nil, false)
		assert.GreaterOrEqual(t, result.OverallScore, 0.0)
		assert.NotEmpty(t, result.Grade)
	})

	t.Run("benchmark included only when requested", func(t *testing.T) {
		with := engine.Score(cleanHeadlines, cleanDescriptions, adKeywords, true)
		without := engine.Score(cleanHeadlines, cleanDescriptions, adKeywords, false)
		require.NotNil(t, with.Benchmark)
		assert.Equal(t, models.BusinessTypeEsoteric, with.Benchmark.Industry)
		assert.Equal(t, 68.5, with.Benchmark.IndustryAverage)
		assert.Nil(t, without.Benchmark)
	})

	t.Run("unknown business type falls back to generic benchmark", func(t *testing.T) {
		e := NewEngine("plumbing")
		result := e.Score(cleanHeadlines, cleanDescriptions, adKeywords, true)
		require.NotNil(t, result.Benchmark)
		assert.Equal(t, models.BusinessTypeGeneric, result.Benchmark.Industry)
	})
}

func TestGrade(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{95, "A+"}, {90, "A+"}, {87, "A"}, {82, "A-"}, {77, "B+"},
		{72, "B"}, {67, "B-"}, {62, "C+"}, {55, "C"}, {52, "C-"},
		{45, "D"}, {30, "F"},
	}
	for _, c := range cases {
		assert.Equal(t, c.grade, Grade(c.score), "score %.0f", c.score)
	}

	t.Run("monotonic", func(t *testing.T) {
		order := map[string]int{"A+": 11, "A": 10, "A-": 9, "B+": 8, "B": 7,
			"B-": 6, "C+": 5, "C": 4, "C-": 3, "D": 2, "F": 1}
		prev := order[Grade(0)]
		for s := 1.0; s <= 100; s++ {
			curr := order[Grade(s)]
			assert.GreaterOrEqual(t, curr, prev)
			prev = curr
		}
	})
}

func TestRankAndCompare(t *testing.T) {
	engine := NewEngine(models.BusinessTypeEsoteric)

	strong := models.GeneratedAd{Headlines: cleanHeadlines, Descriptions: cleanDescriptions}
	weak := models.GeneratedAd{
		Headlines:    []string{"AMARRES YA MISMO", "AMARRES YA MISMO", "ok"},
		Descriptions: []string{"corto", "Amarres de amor 100% garantizado con descarga ya incluida."},
	}

	t.Run("ranking puts stronger ad first", func(t *testing.T) {
		ranked := engine.RankAds([]models.GeneratedAd{weak, strong}, adKeywords)
		require.Len(t, ranked, 2)
		assert.Equal(t, 1, ranked[0].Index)
		assert.GreaterOrEqual(t, ranked[0].OverallScore, ranked[1].OverallScore)
	})

	t.Run("comparison picks the same winner", func(t *testing.T) {
		cmp := engine.CompareAds(strong, weak, adKeywords)
		assert.Equal(t, "a", cmp.Winner)
		assert.Greater(t, cmp.ScoreA, cmp.ScoreB)
		assert.Len(t, cmp.CategoryDeltas, 6)
	})
}

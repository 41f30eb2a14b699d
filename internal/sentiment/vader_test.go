package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/adforge/internal/models"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "consult now", RemoveLinks("[consult now](https://example.com/amarres)"))
	assert.Equal(t, "visit ", RemoveLinks("visit https://example.com"))
}

func TestAnalyzeWithVADER(t *testing.T) {
	t.Run("positive copy labeled positive", func(t *testing.T) {
		score, label := AnalyzeWithVADER("Love, happiness and great results guaranteed for you")
		assert.Greater(t, score, 0.0)
		assert.Equal(t, "positive", label)
	})

	t.Run("neutral copy labeled neutral", func(t *testing.T) {
		_, label := AnalyzeWithVADER("The office opens at nine")
		assert.Equal(t, "neutral", label)
	})
}

func TestAnalyzeAdTone(t *testing.T) {
	ad := models.GeneratedAd{
		Headlines:    []string{"Find love again today", "Trusted experts"},
		Descriptions: []string{"Professional help to recover your happiness and peace"},
	}
	score, label := AnalyzeAdTone(ad)
	assert.GreaterOrEqual(t, score, -1.0)
	assert.LessOrEqual(t, score, 1.0)
	assert.Contains(t, []string{"positive", "neutral", "negative"}, label)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("dedupes keywords case-insensitively keeping first", func(t *testing.T) {
		req := GenerationRequest{
			Keywords:        []string{"Amarres de Amor", "amarres de amor", " tarot ", "Tarot"},
			NumHeadlines:    5,
			NumDescriptions: 3,
		}
		req.Normalize()
		assert.Equal(t, []string{"Amarres de Amor", "tarot"}, req.Keywords)
	})

	t.Run("clamps counts into allowed windows", func(t *testing.T) {
		req := GenerationRequest{Keywords: []string{"tarot"}, NumHeadlines: 50, NumDescriptions: 0}
		req.Normalize()
		assert.Equal(t, MaxRequestedHeadlines, req.NumHeadlines)
		assert.Equal(t, MinRequestedDescriptions, req.NumDescriptions)
	})

	t.Run("clamps temperature into provider range", func(t *testing.T) {
		req := GenerationRequest{Keywords: []string{"tarot"}, NumHeadlines: 5, NumDescriptions: 2, Temperature: 3.5}
		req.Normalize()
		assert.Equal(t, float32(2), req.Temperature)

		req.Temperature = -1
		req.Normalize()
		assert.Equal(t, float32(0), req.Temperature)
	})

	t.Run("drops blank keywords", func(t *testing.T) {
		req := GenerationRequest{Keywords: []string{"", "  ", "tarot"}, NumHeadlines: 5, NumDescriptions: 2}
		req.Normalize()
		assert.Equal(t, []string{"tarot"}, req.Keywords)
	})
}

func TestProviderResult(t *testing.T) {
	ok := ProviderResult{Ad: &GeneratedAd{}}
	assert.True(t, ok.OK())

	failed := ProviderResult{Err: &GenerationError{Kind: ErrMalformed, Message: "sin claves"}}
	assert.False(t, failed.OK())
	assert.Equal(t, "malformed_response: sin claves", failed.Err.Error())
}

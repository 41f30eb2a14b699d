package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/adforge/internal/keywords"
	"github.com/spacesedan/adforge/internal/models"
)

func baseRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Keywords:        []string{"amarres de amor", "recuperar ex", "tarot"},
		NumHeadlines:    15,
		NumDescriptions: 4,
		Tone:            "emocional",
		Temperature:     0.9,
	}
}

func TestCompose(t *testing.T) {
	limits := models.DefaultLimits()

	t.Run("raw prompt override skips composition", func(t *testing.T) {
		req := baseRequest()
		req.RawPrompt = "escribe cinco anuncios de zapatos"
		profile := keywords.Analyze(req.Keywords)
		assert.Equal(t, req.RawPrompt, Compose(profile, req, limits))
	})

	t.Run("esoteric profile selects specialized template", func(t *testing.T) {
		req := baseRequest()
		profile := keywords.Analyze(req.Keywords)
		prompt := Compose(profile, req, limits)
		assert.Contains(t, prompt, "ANÁLISIS DEL GRUPO")
		assert.Contains(t, prompt, "P.A.S.C.A")
	})

	t.Run("generic profile selects AIDA template", func(t *testing.T) {
		req := baseRequest()
		req.Keywords = []string{"zapatos deportivos", "ofertas"}
		profile := keywords.Analyze(req.Keywords)
		prompt := Compose(profile, req, limits)
		assert.Contains(t, prompt, "AIDA")
		assert.NotContains(t, prompt, "ANÁLISIS DEL GRUPO")
	})

	t.Run("prompt embeds keywords counts and limits", func(t *testing.T) {
		req := baseRequest()
		profile := keywords.Analyze(req.Keywords)
		prompt := Compose(profile, req, limits)

		assert.Contains(t, prompt, "amarres de amor, recuperar ex, tarot")
		assert.Contains(t, prompt, fmt.Sprintf("(%d requeridos)", req.NumHeadlines))
		assert.Contains(t, prompt, fmt.Sprintf("(%d requeridas)", req.NumDescriptions))
		assert.Contains(t, prompt, fmt.Sprintf("mínimo %d, máximo ABSOLUTO %d", limits.HeadlineMin, limits.HeadlineMax))
		assert.Contains(t, prompt, `"headlines"`)
		assert.Contains(t, prompt, `"descriptions"`)
	})

	t.Run("variation seed rotates keyword order", func(t *testing.T) {
		req := baseRequest()
		profile := keywords.Analyze(req.Keywords)
		first := Compose(profile, req, limits)

		req.VariationSeed = 1
		second := Compose(profile, req, limits)

		assert.Contains(t, first, "amarres de amor, recuperar ex, tarot")
		assert.Contains(t, second, "recuperar ex, tarot, amarres de amor")
		assert.NotEqual(t, first, second)
	})

	t.Run("location flag appends reinforcement", func(t *testing.T) {
		req := baseRequest()
		req.IncludeLocation = true
		profile := keywords.Analyze(req.Keywords)
		prompt := Compose(profile, req, limits)
		assert.True(t, strings.Contains(prompt, "UBICACIÓN"))
	})
}

func TestRotateKeywords(t *testing.T) {
	kws := []string{"a", "b", "c"}

	t.Run("zero seed keeps order", func(t *testing.T) {
		assert.Equal(t, kws, rotateKeywords(kws, 0))
	})

	t.Run("seed wraps around length", func(t *testing.T) {
		assert.Equal(t, kws, rotateKeywords(kws, 3))
		assert.Equal(t, []string{"b", "c", "a"}, rotateKeywords(kws, 4))
	})

	t.Run("empty list tolerated", func(t *testing.T) {
		assert.Empty(t, rotateKeywords(nil, 2))
	})
}

func TestSystemInstruction(t *testing.T) {
	assert.Contains(t, SystemInstruction, "Nunca copies")
	assert.Contains(t, SystemInstruction, "JSON")
}

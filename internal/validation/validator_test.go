package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adforge/internal/models"
)

var (
	goodHeadlines = []string{
		"Amarres de Amor Efectivos",
		"Tarot del Amor Certero",
		"Recupera a tu Pareja",
	}
	goodDescriptions = []string{
		"Consulta con expertos en amarres de amor. Resultados reales.",
		"Vidente profesional te ayuda a recuperar a tu pareja hoy.",
	}
)

func TestValidate(t *testing.T) {
	v := New(models.DefaultLimits())

	t.Run("clean ad passes", func(t *testing.T) {
		result := v.Validate(goodHeadlines, goodDescriptions)
		assert.True(t, result.Valid)
		assert.Equal(t, 3, result.Summary.ValidHeadlines)
		assert.Equal(t, 2, result.Summary.ValidDescriptions)
		assert.Empty(t, result.Violations)
	})

	t.Run("over-length headline flagged", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[0] = "Amarres de amor efectivos con resultados garantizados siempre"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
		assert.Equal(t, 1, result.Summary.InvalidHeadlines)
	})

	t.Run("short headline flagged", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[1] = "Amor ya"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
		elem := result.Headlines[1]
		require.NotEmpty(t, elem.Violations)
		assert.Contains(t, elem.Violations[0], "muy corto")
	})

	t.Run("consecutive caps flagged regardless of length", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[0] = "Amarres VIP de Amor Real"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
	})

	t.Run("prohibited punctuation flagged", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[2] = "¿Quieres Recuperarlo Ya?"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
	})

	t.Run("emoji flagged", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[0] = "Amarres de Amor Hoy 🔮"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
	})

	t.Run("double space flagged", func(t *testing.T) {
		headlines := append([]string{}, goodHeadlines...)
		headlines[0] = "Amarres de  Amor Reales"
		result := v.Validate(headlines, goodDescriptions)
		assert.False(t, result.Valid)
	})

	t.Run("forbidden phrase flagged", func(t *testing.T) {
		descriptions := append([]string{}, goodDescriptions...)
		descriptions[0] = "Amarres de amor 100% garantizado, consulta con videntes hoy."
		result := v.Validate(goodHeadlines, descriptions)
		assert.False(t, result.Valid)
	})

	t.Run("below headline floor is a violation", func(t *testing.T) {
		result := v.Validate(goodHeadlines[:2], goodDescriptions)
		assert.False(t, result.Valid)
		require.NotEmpty(t, result.Violations)
		assert.Contains(t, result.Violations[0], "al menos 3")
	})

	t.Run("exact duplicates are warnings not violations", func(t *testing.T) {
		headlines := []string{
			"Amarres de Amor Efectivos",
			"amarres de amor efectivos",
			"Tarot del Amor Certero",
		}
		result := v.Validate(headlines, goodDescriptions)
		assert.True(t, result.Valid)
		assert.NotEmpty(t, result.Warnings)
	})
}

func TestCleanText(t *testing.T) {
	t.Run("collapses whitespace and strips punctuation", func(t *testing.T) {
		got := CleanText("¡Amarres  de amor!  efectivos")
		assert.Equal(t, "Amarres de amor efectivos", got)
	})

	t.Run("strips emojis", func(t *testing.T) {
		got := CleanText("Tarot del amor 🔮 certero")
		assert.Equal(t, "Tarot del amor certero", got)
	})

	t.Run("preserves short acronyms", func(t *testing.T) {
		got := CleanText("Consulta VIP disponible")
		assert.Equal(t, "Consulta VIP disponible", got)
	})

	t.Run("lowercases longer caps runs", func(t *testing.T) {
		got := CleanText("AMARRES de amor")
		assert.Equal(t, "Amarres de amor", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanText(""))
	})
}

func TestQuickFix(t *testing.T) {
	v := New(models.DefaultLimits())

	t.Run("truncates over-length elements at word boundary", func(t *testing.T) {
		headlines := []string{"Amarres de amor efectivos garantizados para siempre"}
		fixed, _ := v.QuickFix(headlines, nil)
		require.Len(t, fixed, 1)
		assert.LessOrEqual(t, len([]rune(fixed[0])), 30)
		assert.Equal(t, "Amarres de amor efectivos", fixed[0])
	})

	t.Run("drops empty elements", func(t *testing.T) {
		fixed, _ := v.QuickFix([]string{"", "  ", "Tarot del Amor Certero"}, nil)
		assert.Equal(t, []string{"Tarot del Amor Certero"}, fixed)
	})
}

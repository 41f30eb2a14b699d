package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("Consulta ahora", "Consulta ahora"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("AMARRES DE AMOR", "amarres de amor"))
	})

	t.Run("disjoint sequences", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	})

	t.Run("symmetric", func(t *testing.T) {
		a, b := "Consulta ahora amor", "Consulta ahora el amor"
		assert.Equal(t, Ratio(a, b), Ratio(b, a))
	})

	t.Run("near identical pair crosses threshold", func(t *testing.T) {
		got := Ratio("Consulta ahora amor", "Consulta ahora el amor")
		assert.GreaterOrEqual(t, got, DefaultThreshold)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("one empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("amor", ""))
	})
}

func TestDedupe(t *testing.T) {
	t.Run("drops later near-duplicate, first seen wins", func(t *testing.T) {
		candidates := []string{"Consulta ahora amor", "Consulta ahora el amor"}
		kept := Dedupe(candidates, DefaultThreshold, nil)
		assert.Equal(t, []string{"Consulta ahora amor"}, kept)
	})

	t.Run("keeps dissimilar candidates in order", func(t *testing.T) {
		candidates := []string{
			"Amarres de Amor Efectivos",
			"Tarot Profesional Online",
			"Limpias Espirituales Hoy",
		}
		kept := Dedupe(candidates, DefaultThreshold, nil)
		assert.Equal(t, candidates, kept)
	})

	t.Run("idempotent on already deduped list", func(t *testing.T) {
		candidates := []string{
			"Amarres de Amor Efectivos",
			"Tarot Profesional Online",
			"Consulta ahora amor",
			"Consulta ahora el amor",
		}
		once := Dedupe(candidates, DefaultThreshold, nil)
		twice := Dedupe(once, DefaultThreshold, nil)
		assert.Equal(t, once, twice)
	})

	t.Run("exclude list rejects matches", func(t *testing.T) {
		kept := Dedupe([]string{"Consulta ahora amor"}, DefaultThreshold, []string{"Consulta ahora el amor"})
		assert.Empty(t, kept)
	})

	t.Run("kept pairs stay strictly below threshold", func(t *testing.T) {
		candidates := []string{
			"Recupera a tu Ex Pareja",
			"Recupera a tu Ex Pareja Ya",
			"Vidente Experta en Amor",
			"Rituales de Proteccion",
		}
		kept := Dedupe(candidates, DefaultThreshold, nil)
		for i := 0; i < len(kept); i++ {
			for j := i + 1; j < len(kept); j++ {
				assert.Less(t, Ratio(kept[i], kept[j]), DefaultThreshold)
			}
		}
	})
}

func TestJaccardOverlap(t *testing.T) {
	t.Run("identical sets", func(t *testing.T) {
		a := []string{"Amarres de Amor", "Tarot Online"}
		assert.Equal(t, 1.0, JaccardOverlap(a, a))
	})

	t.Run("intersection over larger set", func(t *testing.T) {
		a := []string{"Amarres de Amor", "Tarot Online", "Limpias Hoy"}
		b := []string{"Amarres de Amor"}
		assert.InDelta(t, 1.0/3.0, JaccardOverlap(a, b), 1e-9)
	})

	t.Run("empty sets", func(t *testing.T) {
		assert.Equal(t, 0.0, JaccardOverlap(nil, nil))
	})

	t.Run("case insensitive matching", func(t *testing.T) {
		a := []string{"AMARRES DE AMOR"}
		b := []string{"amarres de amor"}
		assert.Equal(t, 1.0, JaccardOverlap(a, b))
	})
}

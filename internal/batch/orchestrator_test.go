package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/providers"
)

// scriptedProvider replays canned results in order, repeating the last one.
type scriptedProvider struct {
	name     string
	results  []models.ProviderResult
	calls    int
	probeErr error
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func (p *scriptedProvider) TestConnection(ctx context.Context) error { return p.probeErr }

func (p *scriptedProvider) Generate(ctx context.Context, req models.GenerationRequest) models.ProviderResult {
	idx := p.calls
	if idx >= len(p.results) {
		idx = len(p.results) - 1
	}
	p.calls++
	res := p.results[idx]
	if res.Ad != nil {
		ad := *res.Ad
		ad.Provider = p.name
		ad.Model = p.Model()
		ad.Tone = req.Tone
		ad.VariationSeed = req.VariationSeed
		res.Ad = &ad
	}
	return res
}

func goodAd() models.ProviderResult {
	return models.ProviderResult{Ad: &models.GeneratedAd{
		Headlines: []string{
			"Amarres de Amor Efectivos",
			"Consulta Tarot del Amor",
			"Recupera a tu Pareja Hoy",
		},
		Descriptions: []string{
			"Consulta con expertos en amarres de amor. Resultados reales.",
			"Vidente profesional te ayuda a recuperar a tu pareja hoy mismo.",
		},
	}}
}

func secondAd() models.ProviderResult {
	return models.ProviderResult{Ad: &models.GeneratedAd{
		Headlines: []string{
			"Vidente Experta en Uniones",
			"Rituales de Union Seguros",
			"Limpias Espirituales Hoy",
		},
		Descriptions: []string{
			"Rituales espirituales serios con seguimiento personalizado diario.",
			"Maestra espiritual con experiencia real en casos dificiles.",
		},
	}}
}

func shortAd() models.ProviderResult {
	return models.ProviderResult{Ad: &models.GeneratedAd{
		Headlines: []string{
			"Amarres de Amor Efectivos",
			"Consulta Tarot del Amor",
		},
		Descriptions: []string{
			"Consulta con expertos en amarres de amor. Resultados reales.",
			"Vidente profesional te ayuda a recuperar a tu pareja hoy mismo.",
		},
	}}
}

func baseRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Keywords:        []string{"amarres de amor", "tarot"},
		NumHeadlines:    3,
		NumDescriptions: 2,
		Tone:            "emocional",
	}
}

func newTestOrchestrator(p providers.Provider) *Orchestrator {
	o := NewOrchestrator(models.DefaultLimits()).WithThrottle(0)
	o.Registry().Register("scripted", func() (providers.Provider, error) { return p, nil })
	return o
}

func TestGenerateAd(t *testing.T) {
	t.Run("successful unit carries ad and validation", func(t *testing.T) {
		o := newTestOrchestrator(&scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd()}})
		unit := o.GenerateAd(context.Background(), "scripted", "", baseRequest())

		require.False(t, unit.Failed())
		assert.Len(t, unit.Ad.Headlines, 3)
		require.NotNil(t, unit.Validation)
		assert.True(t, unit.Validation.Valid)
		assert.Equal(t, "emocional", unit.Tone)
	})

	t.Run("unknown provider fails with configuration error", func(t *testing.T) {
		o := NewOrchestrator(models.DefaultLimits()).WithThrottle(0)
		unit := o.GenerateAd(context.Background(), "nope", "", baseRequest())

		require.True(t, unit.Failed())
		assert.Equal(t, models.ErrConfiguration, unit.Err.Kind)
	})

	t.Run("probe failure fails the unit with connection error", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd()}, probeErr: errors.New("dial tcp: refused")}
		o := newTestOrchestrator(p)
		unit := o.GenerateAd(context.Background(), "scripted", "", baseRequest())

		require.True(t, unit.Failed())
		assert.Equal(t, models.ErrConnection, unit.Err.Kind)
		assert.Zero(t, p.calls)
	})

	t.Run("too few valid headlines fails with count message", func(t *testing.T) {
		o := newTestOrchestrator(&scriptedProvider{name: "scripted", results: []models.ProviderResult{shortAd()}})
		unit := o.GenerateAd(context.Background(), "scripted", "", baseRequest())

		require.True(t, unit.Failed())
		assert.Equal(t, models.ErrInsufficient, unit.Err.Kind)
		assert.Equal(t, "Insuficientes títulos válidos: 2/3", unit.Err.Message)
	})
}

func TestGenerateBatch(t *testing.T) {
	t.Run("failure never aborts sibling units", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{
			goodAd(),
			{Err: &models.GenerationError{Kind: models.ErrMalformed, Message: "respuesta rota", Provider: "scripted"}},
			secondAd(),
		}}
		o := newTestOrchestrator(p)
		result := o.GenerateBatch(context.Background(), "scripted", "", baseRequest(), 3)

		assert.Equal(t, 3, result.Requested)
		assert.Equal(t, 2, result.Successful)
		assert.Equal(t, 1, result.Failed)
		assert.InDelta(t, 66.67, result.SuccessRate, 0.01)
		require.Len(t, result.Units, 3)
		assert.False(t, result.Units[0].Failed())
		assert.True(t, result.Units[1].Failed())
		assert.False(t, result.Units[2].Failed())
		assert.Equal(t, 3, p.calls)
	})

	t.Run("units share one batch id and keep submission order", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), secondAd()}}
		o := newTestOrchestrator(p)
		result := o.GenerateBatch(context.Background(), "scripted", "", baseRequest(), 2)

		require.Len(t, result.Units, 2)
		assert.Equal(t, result.BatchID+"_ad_1", result.Units[0].ID)
		assert.Equal(t, result.BatchID+"_ad_2", result.Units[1].ID)
	})

	t.Run("repeated ad is rejected by in-batch exclusion", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), goodAd()}}
		o := newTestOrchestrator(p)
		result := o.GenerateBatch(context.Background(), "scripted", "", baseRequest(), 2)

		assert.Equal(t, 1, result.Successful)
		require.True(t, result.Units[1].Failed())
		assert.Equal(t, models.ErrInsufficient, result.Units[1].Err.Kind)
	})

	t.Run("tone rotates when not pinned", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), secondAd()}}
		o := newTestOrchestrator(p)
		req := baseRequest()
		req.Tone = ""
		result := o.GenerateBatch(context.Background(), "scripted", "", req, 2)

		assert.NotEqual(t, result.Units[0].Tone, result.Units[1].Tone)
	})

	t.Run("successful units emit one record each", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), secondAd()}}
		o := newTestOrchestrator(p)
		o.GenerateBatch(context.Background(), "scripted", "camp-1", baseRequest(), 2)

		records := o.DrainRecords()
		require.Len(t, records, 2)
		assert.Equal(t, "camp-1", records[0].CampaignID)
		assert.Equal(t, "scripted", records[0].Provider)
		assert.Equal(t, "valid", records[0].ValidationStatus)
		assert.NotEmpty(t, records[0].ID)
		assert.Empty(t, o.DrainRecords())
	})
}

func TestGenerateForGroups(t *testing.T) {
	campaign := models.CampaignConfig{
		CampaignName:    "verano",
		Provider:        "scripted",
		AdsPerGroup:     1,
		NumHeadlines:    3,
		NumDescriptions: 2,
		Tone:            "emocional",
		Groups: []models.AdGroupConfig{
			{GroupName: "amarres", Keywords: []string{"amarres de amor"}},
			{GroupName: "vacio"},
			{GroupName: "tarot", Keywords: []string{"tarot online"}},
		},
	}

	t.Run("group failures stay isolated", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), secondAd()}}
		o := newTestOrchestrator(p)
		result := o.GenerateForGroups(context.Background(), campaign)

		assert.Equal(t, 3, result.TotalGroups)
		require.Len(t, result.Groups, 3)
		assert.Empty(t, result.Groups[0].Err)
		assert.NotEmpty(t, result.Groups[1].Err)
		assert.Empty(t, result.Groups[2].Err)
		assert.InDelta(t, 66.67, result.SuccessRate, 0.01)
		assert.False(t, result.Success)
	})

	t.Run("all groups succeeding marks campaign successful", func(t *testing.T) {
		p := &scriptedProvider{name: "scripted", results: []models.ProviderResult{goodAd(), secondAd()}}
		o := newTestOrchestrator(p)
		cfg := campaign
		cfg.Groups = []models.AdGroupConfig{
			{GroupName: "amarres", Keywords: []string{"amarres de amor"}},
			{GroupName: "tarot", Keywords: []string{"tarot online"}},
		}
		result := o.GenerateForGroups(context.Background(), cfg)

		assert.True(t, result.Success)
		assert.Equal(t, 100.0, result.SuccessRate)
	})
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, 0.0, successRate(0, 0))
	assert.Equal(t, 0.0, successRate(0, 4))
	assert.Equal(t, 100.0, successRate(4, 4))
	assert.Equal(t, 50.0, successRate(2, 4))
}

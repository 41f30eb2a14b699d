package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/adforge/internal/dedup"
	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/prompts"
	"github.com/spacesedan/adforge/internal/providers"
	"github.com/spacesedan/adforge/internal/sentiment"
	"github.com/spacesedan/adforge/internal/usedstore"
	"github.com/spacesedan/adforge/internal/utils"
	"github.com/spacesedan/adforge/internal/validation"
)

const (
	// Pause between consecutive provider calls. Never applied before the
	// first call of a batch.
	DefaultThrottle = 2 * time.Second

	crossAdOverlapWarn = 0.30
)

// Orchestrator drives independent generation units sequentially, isolating
// per-unit failures and aggregating literal success accounting.
type Orchestrator struct {
	registry  *providers.Registry
	validator *validation.Validator
	limits    models.Limits
	throttle  time.Duration

	// Optional cross-run exclusion source. When nil, only in-batch
	// exclusion applies.
	used *usedstore.Store

	// Records buffers the flat rows emitted at the persistence boundary.
	// Callers drain it into storage or the publisher between runs.
	records *utils.BatchBuffer[models.AdRecord]
}

func NewOrchestrator(limits models.Limits) *Orchestrator {
	return &Orchestrator{
		registry:  providers.NewRegistry(limits),
		validator: validation.New(limits),
		limits:    limits,
		throttle:  DefaultThrottle,
		records:   utils.NewBatchBuffer[models.AdRecord](),
	}
}

// WithUsedStore wires the cross-run used-copy store into the orchestrator.
func (o *Orchestrator) WithUsedStore(s *usedstore.Store) *Orchestrator {
	o.used = s
	return o
}

// WithThrottle overrides the inter-call pause. Zero disables it.
func (o *Orchestrator) WithThrottle(d time.Duration) *Orchestrator {
	o.throttle = d
	return o
}

// Registry exposes the provider registry for callers that probe or list
// providers directly.
func (o *Orchestrator) Registry() *providers.Registry { return o.registry }

// DrainRecords returns and clears the buffered persistence rows.
func (o *Orchestrator) DrainRecords() []models.AdRecord {
	return o.records.GetAndClear()
}

// GenerateAd runs one unit end to end.
func (o *Orchestrator) GenerateAd(ctx context.Context, providerName, campaignID string, req models.GenerationRequest) models.UnitResult {
	batch := o.GenerateBatch(ctx, providerName, campaignID, req, 1)
	return batch.Units[0]
}

// GenerateBatch generates numAds variations for one keyword set. Units run
// sequentially in submission order; a unit failure never aborts its siblings.
func (o *Orchestrator) GenerateBatch(ctx context.Context, providerName, campaignID string, req models.GenerationRequest, numAds int) models.BatchResult {
	started := time.Now()
	batchID := fmt.Sprintf("batch_%s", started.Format("20060102_150405"))

	if numAds < 1 {
		numAds = 1
	}
	req.Normalize()

	result := models.BatchResult{
		BatchID:   batchID,
		Timestamp: started.Format(time.RFC3339),
		Requested: numAds,
		Units:     make([]models.UnitResult, 0, numAds),
	}

	slog.Info("[BatchOrchestrator] Starting batch",
		slog.String("batch_id", batchID),
		slog.String("provider", providerName),
		slog.Int("requested", numAds))

	provider, provErr := o.registry.Get(providerName)
	var probeErr *models.GenerationError
	if provErr == nil {
		if err := provider.TestConnection(ctx); err != nil {
			probeErr = &models.GenerationError{
				Kind:     models.ErrConnection,
				Message:  err.Error(),
				Provider: providerName,
			}
			slog.Error("[BatchOrchestrator] Connectivity probe failed",
				slog.String("provider", providerName),
				slog.String("error", err.Error()))
		}
	}

	excludeHeadlines, excludeDescriptions := o.loadExclusions(ctx, campaignID)

	for i := 0; i < numAds; i++ {
		if i > 0 && o.throttle > 0 {
			time.Sleep(o.throttle)
		}

		unitReq := req
		unitReq.VariationSeed = req.VariationSeed + i
		if unitReq.Tone == "" {
			unitReq.Tone = prompts.DefaultTones[i%len(prompts.DefaultTones)]
		}

		unitID := fmt.Sprintf("%s_ad_%d", batchID, i+1)

		var unit models.UnitResult
		switch {
		case provErr != nil:
			unit = failedUnit(unitID, unitReq, provErr)
		case probeErr != nil:
			e := *probeErr
			e.Seed = unitReq.VariationSeed
			unit = failedUnit(unitID, unitReq, &e)
		default:
			unit = o.runUnit(ctx, provider, unitID, unitReq, excludeHeadlines, excludeDescriptions)
		}

		if !unit.Failed() {
			excludeHeadlines = append(excludeHeadlines, unit.Ad.Headlines...)
			excludeDescriptions = append(excludeDescriptions, unit.Ad.Descriptions...)
			o.markUsed(ctx, campaignID, unit.Ad)
			o.records.Add(buildRecord(unit, campaignID))
		}

		result.Units = append(result.Units, unit)
	}

	for _, unit := range result.Units {
		if !unit.Failed() {
			result.Successful++
		}
	}
	result.Failed = result.Requested - result.Successful
	result.SuccessRate = successRate(result.Successful, result.Requested)

	o.checkCrossAdOverlap(result.Units)

	slog.Info("[BatchOrchestrator] Batch finished",
		slog.String("batch_id", batchID),
		slog.Int("successful", result.Successful),
		slog.Int("failed", result.Failed),
		slog.Float64("success_rate", result.SuccessRate))

	return result
}

// GenerateForGroups runs one batch per ad group in listed order. Group
// failures are isolated the same way unit failures are.
func (o *Orchestrator) GenerateForGroups(ctx context.Context, cfg models.CampaignConfig) models.CampaignResult {
	result := models.CampaignResult{
		TotalGroups: len(cfg.Groups),
		Groups:      make([]models.GroupResult, 0, len(cfg.Groups)),
	}

	slog.Info("[BatchOrchestrator] Starting campaign run",
		slog.String("campaign", cfg.CampaignName),
		slog.Int("groups", len(cfg.Groups)))

	adsPerGroup := cfg.AdsPerGroup
	if adsPerGroup < 1 {
		adsPerGroup = 1
	}

	successfulGroups := 0
	for _, group := range cfg.Groups {
		groupResult := models.GroupResult{
			GroupName: group.GroupName,
			Keywords:  group.Keywords,
		}

		if len(group.Keywords) == 0 {
			groupResult.Err = "el grupo no tiene keywords"
			slog.Warn("[BatchOrchestrator] Skipping group without keywords",
				slog.String("group", group.GroupName))
			result.Groups = append(result.Groups, groupResult)
			continue
		}

		req := models.GenerationRequest{
			Keywords:        group.Keywords,
			NumHeadlines:    cfg.NumHeadlines,
			NumDescriptions: cfg.NumDescriptions,
			Tone:            cfg.Tone,
			Temperature:     cfg.Temperature,
			LandingURL:      group.LandingURL,
			BusinessDesc:    group.BusinessDesc,
		}

		groupResult.Batch = o.GenerateBatch(ctx, cfg.Provider, cfg.CampaignName, req, adsPerGroup)
		if groupResult.Batch.Successful > 0 {
			successfulGroups++
		} else {
			groupResult.Err = firstUnitError(groupResult.Batch)
		}

		result.Groups = append(result.Groups, groupResult)
	}

	result.SuccessRate = successRate(successfulGroups, result.TotalGroups)
	result.Success = result.TotalGroups > 0 && successfulGroups == result.TotalGroups

	slog.Info("[BatchOrchestrator] Campaign run finished",
		slog.String("campaign", cfg.CampaignName),
		slog.Int("successful_groups", successfulGroups),
		slog.Float64("success_rate", result.SuccessRate))

	return result
}

// runUnit walks one unit through its lifecycle. Any failure is converted into
// a structured error on the unit, never propagated.
func (o *Orchestrator) runUnit(ctx context.Context, provider providers.Provider, unitID string, req models.GenerationRequest, excludeHeadlines, excludeDescriptions []string) models.UnitResult {
	unit := models.UnitResult{
		ID:        unitID,
		Timestamp: time.Now().Format(time.RFC3339),
		Keywords:  req.Keywords,
		Tone:      req.Tone,
	}

	logUnitState(unitID, models.UnitPending)

	logUnitState(unitID, models.UnitGenerating)
	res := provider.Generate(ctx, req)
	if !res.OK() {
		unit.Err = res.Err
		logUnitState(unitID, models.UnitFailed)
		return unit
	}
	ad := res.Ad

	logUnitState(unitID, models.UnitValidating)
	initial := o.validator.Validate(ad.Headlines, ad.Descriptions)
	if len(initial.Violations) > 0 {
		slog.Warn("[BatchOrchestrator] Validation flagged elements",
			slog.String("unit_id", unitID),
			slog.Int("violations", len(initial.Violations)))
	}

	logUnitState(unitID, models.UnitDeduping)
	ad.Headlines = dedup.Dedupe(ad.Headlines, o.limits.SimilarityThreshold, excludeHeadlines)
	ad.Descriptions = dedup.Dedupe(ad.Descriptions, o.limits.SimilarityThreshold, excludeDescriptions)

	final := o.validator.Validate(ad.Headlines, ad.Descriptions)
	unit.Validation = &final

	if final.Summary.ValidHeadlines < o.limits.MinValidHeadlines {
		unit.Err = &models.GenerationError{
			Kind: models.ErrInsufficient,
			Message: fmt.Sprintf("Insuficientes títulos válidos: %d/%d",
				final.Summary.ValidHeadlines, o.limits.MinValidHeadlines),
			Provider: ad.Provider,
			Seed:     req.VariationSeed,
		}
		logUnitState(unitID, models.UnitFailed)
		return unit
	}
	if final.Summary.ValidDescriptions < o.limits.MinValidDescs {
		unit.Err = &models.GenerationError{
			Kind: models.ErrInsufficient,
			Message: fmt.Sprintf("Insuficientes descripciones válidas: %d/%d",
				final.Summary.ValidDescriptions, o.limits.MinValidDescs),
			Provider: ad.Provider,
			Seed:     req.VariationSeed,
		}
		logUnitState(unitID, models.UnitFailed)
		return unit
	}

	unit.Ad = ad
	logUnitState(unitID, models.UnitSucceeded)

	toneScore, toneLabel := sentiment.AnalyzeAdTone(*ad)
	slog.Info("[BatchOrchestrator] Tone diagnostic",
		slog.String("unit_id", unitID),
		slog.String("requested_tone", req.Tone),
		slog.Float64("vader_score", toneScore),
		slog.String("vader_label", toneLabel))

	return unit
}

// checkCrossAdOverlap logs headline-set overlap between successful ads.
// Overlap above the threshold is a diagnostic, not a failure.
func (o *Orchestrator) checkCrossAdOverlap(units []models.UnitResult) {
	for i := 0; i < len(units); i++ {
		if units[i].Failed() {
			continue
		}
		for j := i + 1; j < len(units); j++ {
			if units[j].Failed() {
				continue
			}
			overlap := dedup.JaccardOverlap(units[i].Ad.Headlines, units[j].Ad.Headlines)
			if overlap > crossAdOverlapWarn {
				slog.Warn("[BatchOrchestrator] High headline overlap between ads",
					slog.String("unit_a", units[i].ID),
					slog.String("unit_b", units[j].ID),
					slog.Float64("overlap", overlap))
			}
		}
	}
}

func (o *Orchestrator) loadExclusions(ctx context.Context, campaignID string) ([]string, []string) {
	if o.used == nil || campaignID == "" {
		return nil, nil
	}
	headlines := o.used.UsedElements(ctx, campaignID, usedstore.ElementHeadlines)
	descriptions := o.used.UsedElements(ctx, campaignID, usedstore.ElementDescriptions)
	if len(headlines) > 0 || len(descriptions) > 0 {
		slog.Info("[BatchOrchestrator] Loaded used-copy exclusions",
			slog.String("campaign_id", campaignID),
			slog.Int("headlines", len(headlines)),
			slog.Int("descriptions", len(descriptions)))
	}
	return headlines, descriptions
}

func (o *Orchestrator) markUsed(ctx context.Context, campaignID string, ad *models.GeneratedAd) {
	if o.used == nil || campaignID == "" {
		return
	}
	if err := o.used.MarkUsed(ctx, campaignID, usedstore.ElementHeadlines, ad.Headlines); err != nil {
		slog.Warn("[BatchOrchestrator] Failed to mark headlines as used",
			slog.String("error", err.Error()))
	}
	if err := o.used.MarkUsed(ctx, campaignID, usedstore.ElementDescriptions, ad.Descriptions); err != nil {
		slog.Warn("[BatchOrchestrator] Failed to mark descriptions as used",
			slog.String("error", err.Error()))
	}
}

func failedUnit(unitID string, req models.GenerationRequest, err *models.GenerationError) models.UnitResult {
	logUnitState(unitID, models.UnitFailed)
	return models.UnitResult{
		ID:        unitID,
		Timestamp: time.Now().Format(time.RFC3339),
		Keywords:  req.Keywords,
		Tone:      req.Tone,
		Err:       err,
	}
}

func firstUnitError(batch models.BatchResult) string {
	for _, unit := range batch.Units {
		if unit.Err != nil {
			return unit.Err.Error()
		}
	}
	return ""
}

func successRate(successful, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successful) / float64(total) * 100
}

func logUnitState(unitID string, state models.UnitState) {
	slog.Debug("[BatchOrchestrator] Unit state",
		slog.String("unit_id", unitID),
		slog.String("state", string(state)))
}

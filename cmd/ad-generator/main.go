package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/adforge/config"
	"github.com/spacesedan/adforge/internal/batch"
	"github.com/spacesedan/adforge/internal/clients"
	"github.com/spacesedan/adforge/internal/db"
	"github.com/spacesedan/adforge/internal/keywords"
	"github.com/spacesedan/adforge/internal/logging"
	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/publisher"
	"github.com/spacesedan/adforge/internal/usedstore"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		provider     = flag.String("provider", "openai", "provider to generate with (openai|gemini)")
		keywordsFlag = flag.String("keywords", "", "comma-separated keyword list (suggested from -business when empty)")
		numAds       = flag.Int("ads", 1, "number of ad variations to generate")
		headlines    = flag.Int("headlines", 15, "headlines per ad")
		descriptions = flag.Int("descriptions", 4, "descriptions per ad")
		tone         = flag.String("tone", "", "tone override (empty rotates per ad)")
		temperature  = flag.Float64("temperature", 0.9, "provider creativity, 0.0 to 2.0")
		seed         = flag.Int("seed", 0, "variation seed base")
		campaignID   = flag.String("campaign", "", "campaign id for used-copy exclusion and record linkage")
		landingURL   = flag.String("landing-url", "", "landing page url for prompt context")
		business     = flag.String("business", "", "business description for prompt context")
		rawPrompt    = flag.String("raw-prompt", "", "verbatim prompt override, skips composition")
		store        = flag.Bool("store", false, "persist generation records to DynamoDB")
		publish      = flag.Bool("publish", false, "publish generation records to Kafka")
	)
	flag.Parse()

	kws := splitKeywords(*keywordsFlag)
	if len(kws) == 0 && *business != "" {
		kws = suggestKeywords(*business, 8)
		slog.Info("[AdGenerator] Suggested keywords from business description",
			slog.String("keywords", strings.Join(kws, ", ")))
	}
	if len(kws) == 0 && *rawPrompt == "" {
		slog.Error("[AdGenerator] No keywords supplied")
		os.Exit(1)
	}

	ctx := context.Background()

	orchestrator := batch.NewOrchestrator(models.DefaultLimits())
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" && *campaignID != "" {
		vc := clients.InitValkey()
		defer clients.CloseValkey()
		orchestrator = orchestrator.WithUsedStore(usedstore.New(vc))
	}

	req := models.GenerationRequest{
		Keywords:        kws,
		NumHeadlines:    *headlines,
		NumDescriptions: *descriptions,
		Tone:            *tone,
		Temperature:     float32(*temperature),
		VariationSeed:   *seed,
		RawPrompt:       *rawPrompt,
		LandingURL:      *landingURL,
		BusinessDesc:    *business,
	}

	result := orchestrator.GenerateBatch(ctx, *provider, *campaignID, req, *numAds)

	if err := flushRecords(ctx, orchestrator, *store, *publish); err != nil {
		slog.Error("[AdGenerator] Failed to flush records",
			slog.String("error", err.Error()))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		slog.Error("[AdGenerator] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.Successful == 0 {
		os.Exit(1)
	}
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func suggestKeywords(description string, max int) []string {
	terms := keywords.ExtractTerms(description)
	suggested := make([]string, 0, max)
	for _, term := range terms {
		if term.Kind != "single" && !term.IsDomain {
			continue
		}
		suggested = append(suggested, term.Keyword)
		if len(suggested) == max {
			break
		}
	}
	return suggested
}

func flushRecords(ctx context.Context, orchestrator *batch.Orchestrator, store, publish bool) error {
	records := orchestrator.DrainRecords()
	if len(records) == 0 {
		return nil
	}

	if store {
		db.InitDynamoDB()
		if err := db.StoreBatchedAdRecords(ctx, records); err != nil {
			return err
		}
	}

	if publish {
		if err := publisher.InitKafkaPublisher(); err != nil {
			return err
		}
		defer publisher.CloseKafkaPublisher()
		if err := publisher.PublishAdRecords(records); err != nil {
			return err
		}
	}

	return nil
}

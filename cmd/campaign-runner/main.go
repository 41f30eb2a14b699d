package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/spacesedan/adforge/config"
	"github.com/spacesedan/adforge/internal/batch"
	"github.com/spacesedan/adforge/internal/clients"
	"github.com/spacesedan/adforge/internal/db"
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
		configPath = flag.String("config", "campaign.yaml", "path to the campaign YAML definition")
		store      = flag.Bool("store", true, "persist generation records to DynamoDB")
		publish    = flag.Bool("publish", false, "publish generation records to Kafka")
	)
	flag.Parse()

	campaign, err := config.LoadCampaign(*configPath)
	if err != nil {
		slog.Error("[CampaignRunner] Failed to load campaign config",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	orchestrator := batch.NewOrchestrator(models.DefaultLimits())
	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		vc := clients.InitValkey()
		defer clients.CloseValkey()
		orchestrator = orchestrator.WithUsedStore(usedstore.New(vc))
	}

	result := orchestrator.GenerateForGroups(ctx, campaign)

	records := orchestrator.DrainRecords()
	if len(records) > 0 {
		if *store {
			db.InitDynamoDB()
			if err := db.StoreBatchedAdRecords(ctx, records); err != nil {
				slog.Error("[CampaignRunner] Failed to store records",
					slog.String("error", err.Error()))
			}
		}
		if *publish {
			if err := publisher.InitKafkaPublisher(); err != nil {
				slog.Error("[CampaignRunner] Failed to init Kafka publisher",
					slog.String("error", err.Error()))
			} else {
				defer publisher.CloseKafkaPublisher()
				if err := publisher.PublishAdRecords(records); err != nil {
					slog.Error("[CampaignRunner] Failed to publish records",
						slog.String("error", err.Error()))
				}
			}
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		slog.Error("[CampaignRunner] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !result.Success {
		os.Exit(1)
	}
}

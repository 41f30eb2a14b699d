package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spacesedan/adforge/internal/models"
)

// LoadCampaign reads a campaign definition from a YAML file.
func LoadCampaign(path string) (models.CampaignConfig, error) {
	var cfg models.CampaignConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read campaign config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse campaign config %s: %w", path, err)
	}

	if cfg.CampaignName == "" {
		return cfg, fmt.Errorf("campaign config %s is missing campaign_name", path)
	}
	if len(cfg.Groups) == 0 {
		return cfg, fmt.Errorf("campaign config %s has no groups", path)
	}

	return cfg, nil
}

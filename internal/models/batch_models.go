package models

// UnitState tracks where one generation unit is in its lifecycle.
type UnitState string

const (
	UnitPending    UnitState = "PENDING"
	UnitGenerating UnitState = "GENERATING"
	UnitValidating UnitState = "VALIDATING"
	UnitDeduping   UnitState = "DEDUPING"
	UnitSucceeded  UnitState = "SUCCEEDED"
	UnitFailed     UnitState = "FAILED"
)

// BatchResult aggregates one batch call. Units keep submission order.
type BatchResult struct {
	BatchID     string       `json:"batch_id"`
	Timestamp   string       `json:"timestamp"`
	Requested   int          `json:"requested"`
	Successful  int          `json:"successful"`
	Failed      int          `json:"failed"`
	SuccessRate float64      `json:"success_rate"`
	Units       []UnitResult `json:"units"`
}

// GroupResult is one ad group's outcome inside a campaign run.
type GroupResult struct {
	GroupName string      `json:"group_name"`
	Keywords  []string    `json:"keywords"`
	Batch     BatchResult `json:"batch"`
	Err       string      `json:"error,omitempty"`
}

// CampaignResult aggregates a multi-group run.
type CampaignResult struct {
	Success     bool          `json:"success"`
	TotalGroups int           `json:"total_groups"`
	SuccessRate float64       `json:"success_rate"`
	Groups      []GroupResult `json:"groups"`
}

// AdGroupConfig is one externally supplied group definition.
type AdGroupConfig struct {
	GroupName    string   `json:"group_name" yaml:"group_name"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	LandingURL   string   `json:"landing_url" yaml:"landing_url"`
	BusinessDesc string   `json:"business_description" yaml:"business_description"`
}

// CampaignConfig drives GenerateForGroups. Groups run in listed order.
type CampaignConfig struct {
	CampaignName    string          `json:"campaign_name" yaml:"campaign_name"`
	Groups          []AdGroupConfig `json:"groups" yaml:"groups"`
	AdsPerGroup     int             `json:"ads_per_group" yaml:"ads_per_group"`
	NumHeadlines    int             `json:"num_headlines" yaml:"num_headlines"`
	NumDescriptions int             `json:"num_descriptions" yaml:"num_descriptions"`
	Tone            string          `json:"tone" yaml:"tone"`
	Temperature     float32         `json:"temperature" yaml:"temperature"`
	Provider        string          `json:"provider" yaml:"provider"`
}

package models

// AdRecord is the flat row the pipeline emits at the persistence boundary.
// The storage layer owns the schema; the pipeline only fills it.
type AdRecord struct {
	ID                string `json:"id" dynamodbav:"id"`
	Timestamp         string `json:"timestamp" dynamodbav:"timestamp"`
	User              string `json:"user" dynamodbav:"user"`
	Provider          string `json:"provider" dynamodbav:"provider"`
	Model             string `json:"model" dynamodbav:"model"`
	Keywords          string `json:"keywords" dynamodbav:"keywords"`
	Tone              string `json:"tone" dynamodbav:"tone"`
	NumAds            int    `json:"num_ads" dynamodbav:"num_ads"`
	NumHeadlines      int    `json:"num_headlines" dynamodbav:"num_headlines"`
	NumDescriptions   int    `json:"num_descriptions" dynamodbav:"num_descriptions"`
	Headlines         string `json:"headlines" dynamodbav:"headlines"`
	Descriptions      string `json:"descriptions" dynamodbav:"descriptions"`
	ValidationStatus  string `json:"validation_status" dynamodbav:"validation_status"`
	ValidHeadlines    int    `json:"valid_headlines" dynamodbav:"valid_headlines"`
	InvalidHeadlines  int    `json:"invalid_headlines" dynamodbav:"invalid_headlines"`
	ValidDescriptions int    `json:"valid_descriptions" dynamodbav:"valid_descriptions"`
	InvalidDescs      int    `json:"invalid_descriptions" dynamodbav:"invalid_descriptions"`
	ValidationErrors  string `json:"validation_errors" dynamodbav:"validation_errors"`
	Published         bool   `json:"published" dynamodbav:"published"`
	CampaignID        string `json:"campaign_id" dynamodbav:"campaign_id"`
	AdGroupID         string `json:"ad_group_id" dynamodbav:"ad_group_id"`
	PublishedAt       string `json:"published_at" dynamodbav:"published_at"`
}

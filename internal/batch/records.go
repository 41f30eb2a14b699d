package batch

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/spacesedan/adforge/internal/models"
)

// buildRecord flattens one successful unit into the row shape the storage
// layer expects. The unit ID keeps the batch linkage; the record ID is its
// own identity.
func buildRecord(unit models.UnitResult, campaignID string) models.AdRecord {
	ad := unit.Ad

	headlinesJSON, _ := json.Marshal(ad.Headlines)
	descriptionsJSON, _ := json.Marshal(ad.Descriptions)

	status := "valid"
	var validationErrors string
	if unit.Validation != nil {
		if !unit.Validation.Valid {
			status = "invalid"
		}
		if len(unit.Validation.Violations) > 0 {
			errsJSON, _ := json.Marshal(unit.Validation.Violations)
			validationErrors = string(errsJSON)
		}
	}

	user := os.Getenv("ADFORGE_USER")
	if user == "" {
		user = "pipeline"
	}

	record := models.AdRecord{
		ID:               uuid.NewString(),
		Timestamp:        unit.Timestamp,
		User:             user,
		Provider:         ad.Provider,
		Model:            ad.Model,
		Keywords:         strings.Join(unit.Keywords, ", "),
		Tone:             unit.Tone,
		NumAds:           1,
		NumHeadlines:     len(ad.Headlines),
		NumDescriptions:  len(ad.Descriptions),
		Headlines:        string(headlinesJSON),
		Descriptions:     string(descriptionsJSON),
		ValidationStatus: status,
		ValidationErrors: validationErrors,
		CampaignID:       campaignID,
		AdGroupID:        unit.ID,
	}

	if unit.Validation != nil {
		record.ValidHeadlines = unit.Validation.Summary.ValidHeadlines
		record.InvalidHeadlines = unit.Validation.Summary.InvalidHeadlines
		record.ValidDescriptions = unit.Validation.Summary.ValidDescriptions
		record.InvalidDescs = unit.Validation.Summary.InvalidDescriptions
	}

	return record
}

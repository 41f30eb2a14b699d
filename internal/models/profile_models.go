package models

const (
	BusinessTypeEsoteric = "esoteric"
	BusinessTypeGeneric  = "generic"
)

// KeywordProfile is the derived business-intent profile for one keyword set.
// It is computed per request and never persisted.
type KeywordProfile struct {
	BusinessType      string   `json:"business_type"`
	Intents           []string `json:"intents"`
	EmotionLevel      string   `json:"emotion_level"`
	Urgency           string   `json:"urgency"`
	PainPoints        []string `json:"pain_points"`
	Solutions         []string `json:"solutions"`
	ServiceModality   []string `json:"service_modality"`
	TargetAudience    string   `json:"target_audience"`
	CompetitiveAngles []string `json:"competitive_angles"`
}

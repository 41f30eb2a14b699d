package models

// ErrorKind tags the failure class of one generation unit.
type ErrorKind string

const (
	ErrConfiguration ErrorKind = "configuration_error"
	ErrConnection    ErrorKind = "connection_error"
	ErrMalformed     ErrorKind = "malformed_response"
	ErrInsufficient  ErrorKind = "insufficient_valid_content"
)

// GenerationError is the structured failure value a provider call returns
// instead of letting an error cross the orchestration boundary.
type GenerationError struct {
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
	Provider string    `json:"provider"`
	Seed     int       `json:"variation_seed"`
}

func (e *GenerationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// ProviderPayload is the exact JSON object providers are instructed to return.
type ProviderPayload struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// GeneratedAd is one ad produced by a provider call, after length repair.
type GeneratedAd struct {
	Headlines     []string `json:"headlines"`
	Descriptions  []string `json:"descriptions"`
	Provider      string   `json:"provider"`
	Model         string   `json:"model"`
	Tone          string   `json:"tone"`
	VariationSeed int      `json:"variation_seed"`
}

// ProviderResult is the tagged outcome of one Generate call.
// Exactly one of Ad or Err is set.
type ProviderResult struct {
	Ad  *GeneratedAd     `json:"ad,omitempty"`
	Err *GenerationError `json:"error,omitempty"`
}

func (r ProviderResult) OK() bool { return r.Err == nil && r.Ad != nil }

// UnitResult pairs one generation attempt with its validation outcome.
type UnitResult struct {
	ID         string            `json:"id"`
	Timestamp  string            `json:"timestamp"`
	Keywords   []string          `json:"keywords"`
	Tone       string            `json:"tone"`
	Ad         *GeneratedAd      `json:"ad,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`
	Err        *GenerationError  `json:"error,omitempty"`
}

func (u UnitResult) Failed() bool { return u.Err != nil }

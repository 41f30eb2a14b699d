// Package providers implements the uniform gateway over the interchangeable
// generative-text backends. Each adapter owns its own SDK wiring; everything
// downstream of the raw response body is shared.
package providers

import (
	"context"
	"fmt"
	"sort"

	"github.com/spacesedan/adforge/internal/models"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Provider is the capability set every generation backend implements.
type Provider interface {
	Name() string
	Model() string
	TestConnection(ctx context.Context) error
	Generate(ctx context.Context, req models.GenerationRequest) models.ProviderResult
}

// Factory builds one configured provider, failing when its credential or
// configuration is absent.
type Factory func() (Provider, error)

// Registry maps provider identifiers to factories.
type Registry struct {
	factories map[string]Factory
	limits    models.Limits
}

// NewRegistry returns a registry with the built-in adapters registered.
func NewRegistry(limits models.Limits) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		limits:    limits,
	}
	r.Register(ProviderOpenAI, func() (Provider, error) { return newOpenAIProvider(limits) })
	r.Register(ProviderGemini, func() (Provider, error) { return newGeminiProvider(limits) })
	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Get builds the provider registered under name. An unknown identifier or a
// factory failure is a configuration error.
func (r *Registry) Get(name string) (Provider, *models.GenerationError) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, &models.GenerationError{
			Kind:     models.ErrConfiguration,
			Message:  fmt.Sprintf("proveedor no soportado: %q (disponibles: %v)", name, r.Names()),
			Provider: name,
		}
	}
	provider, err := factory()
	if err != nil {
		return nil, &models.GenerationError{
			Kind:     models.ErrConfiguration,
			Message:  err.Error(),
			Provider: name,
		}
	}
	return provider, nil
}

// Names lists the registered provider identifiers in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func failure(kind models.ErrorKind, provider string, seed int, message string) models.ProviderResult {
	return models.ProviderResult{
		Err: &models.GenerationError{
			Kind:     kind,
			Message:  message,
			Provider: provider,
			Seed:     seed,
		},
	}
}

package providers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"

	"github.com/spacesedan/adforge/internal/clients"
	"github.com/spacesedan/adforge/internal/keywords"
	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/prompts"
)

const defaultGeminiModel = "gemini-1.5-flash"

type geminiProvider struct {
	client *clients.GeminiClient
	model  string
	limits models.Limits
}

func newGeminiProvider(limits models.Limits) (Provider, error) {
	client, err := clients.GetGeminiClient(context.Background())
	if err != nil {
		return nil, err
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiProvider{client: client, model: model, limits: limits}, nil
}

func (p *geminiProvider) Name() string  { return ProviderGemini }
func (p *geminiProvider) Model() string { return p.model }

func (p *geminiProvider) TestConnection(ctx context.Context) error {
	iter := p.client.Client.ListModels(ctx)
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("Gemini connectivity probe failed: %w", err)
	}
	return nil
}

func (p *geminiProvider) Generate(ctx context.Context, req models.GenerationRequest) models.ProviderResult {
	if len(req.Keywords) == 0 {
		return failure(models.ErrConfiguration, p.Name(), req.VariationSeed,
			"no se puede generar un anuncio sin keywords")
	}

	prompt := prompts.Compose(keywords.Analyze(req.Keywords), req, p.limits)

	model := p.client.Client.GenerativeModel(p.model)
	model.SetTemperature(req.Temperature)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompts.SystemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return failure(models.ErrConnection, p.Name(), req.VariationSeed, err.Error())
	}

	text, err := extractGeminiText(resp)
	if err != nil {
		return failure(models.ErrMalformed, p.Name(), req.VariationSeed, err.Error())
	}

	return finalizeResponse(text, p.Name(), p.model, req, p.limits)
}

func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("respuesta sin candidatos")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("respuesta sin contenido")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("respuesta sin partes de texto")
	}
	return strings.Join(parts, ""), nil
}

package providers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/adforge/internal/clients"
	"github.com/spacesedan/adforge/internal/keywords"
	"github.com/spacesedan/adforge/internal/models"
	"github.com/spacesedan/adforge/internal/prompts"
)

const defaultOpenAIModel = openai.GPT4oMini

type openAIProvider struct {
	client *clients.OpenAIClient
	model  string
	limits models.Limits
}

func newOpenAIProvider(limits models.Limits) (Provider, error) {
	client, err := clients.GetOpenAIClient()
	if err != nil {
		return nil, err
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultOpenAIModel
	}
	return &openAIProvider{client: client, model: model, limits: limits}, nil
}

func (p *openAIProvider) Name() string  { return ProviderOpenAI }
func (p *openAIProvider) Model() string { return p.model }

func (p *openAIProvider) TestConnection(ctx context.Context) error {
	if _, err := p.client.Client.ListModels(ctx); err != nil {
		return fmt.Errorf("OpenAI connectivity probe failed: %w", err)
	}
	return nil
}

func (p *openAIProvider) Generate(ctx context.Context, req models.GenerationRequest) models.ProviderResult {
	if len(req.Keywords) == 0 {
		return failure(models.ErrConfiguration, p.Name(), req.VariationSeed,
			"no se puede generar un anuncio sin keywords")
	}

	prompt := prompts.Compose(keywords.Analyze(req.Keywords), req, p.limits)

	resp, err := p.client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return failure(models.ErrConnection, p.Name(), req.VariationSeed, err.Error())
	}
	if len(resp.Choices) == 0 {
		return failure(models.ErrMalformed, p.Name(), req.VariationSeed, "respuesta sin choices")
	}

	slog.Info("[ProviderGateway] OpenAI response received",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Int("variation_seed", req.VariationSeed))

	return finalizeResponse(resp.Choices[0].Message.Content, p.Name(), p.model, req, p.limits)
}

package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	geminiClientInstance *GeminiClient
	geminiOnce           sync.Once
	geminiInitErr        error
)

type GeminiClient struct {
	Client *genai.Client
}

func GetGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY in environment variables")
	}
	geminiOnce.Do(func() {
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			geminiInitErr = fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}
		geminiClientInstance = &GeminiClient{Client: client}
		slog.Info("[GeminiClient] Gemini client initialized")
	})
	if geminiInitErr != nil {
		return nil, geminiInitErr
	}
	return geminiClientInstance, nil
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errors.New("empty response from AI")

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(aiTemperature)
	model.SetMaxOutputTokens(maxTokens)

	return &GeminiClient{client: client, model: model}, nil
}

// Recommend asks the model for practice recommendations based on summary.
func (g *GeminiClient) Recommend(ctx context.Context, summary string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(RecommendationPrompt, summary)))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

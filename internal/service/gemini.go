package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"taskhub/internal/config"
)

// TextGenerator produces report text from an assembled prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API. One blocking request per report;
// a failure there fails the whole report request.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(cfg config.GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.7),
			TopK:            genai.Ptr[float32](40),
			TopP:            genai.Ptr[float32](0.95),
			MaxOutputTokens: 4096,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

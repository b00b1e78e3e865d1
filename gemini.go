package draftsmith

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// TextGenerator abstracts the generation service. The pipeline calls it twice
// per full cycle (titles, body); tests swap in a stub.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator implements TextGenerator on the Gemini API.
type GeminiGenerator struct {
	model  string
	client *genai.Client
}

// NewGeminiGenerator creates the Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{model: model, client: client}, nil
}

// Generate sends one prompt and returns the raw model text. A single
// synchronous call, not retried; failures wrap ErrGeneration and abort the
// request. No format guarantee — callers validate the output.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrGeneration)
	}
	return text, nil
}

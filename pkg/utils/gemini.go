package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClientInterface using Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	return c.generate(ctx, cfg, genai.Text(prompt))
}

func (c *GeminiClient) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string, cfg GenerationConfig) (string, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	return c.generate(ctx, cfg, genai.Text(prompt), genai.ImageData(format, image))
}

func (c *GeminiClient) generate(ctx context.Context, cfg GenerationConfig, parts ...genai.Part) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(cfg.Temperature)
	m.SetTopK(cfg.TopK)
	m.SetTopP(cfg.TopP)
	m.SetMaxOutputTokens(cfg.MaxOutputTokens)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, parts...)
	if err != nil {
		return "", mapProviderError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyAIResponse
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close closes the Gemini client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func mapProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrAIServiceTimeout
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &UpstreamError{Status: gerr.Code, Body: gerr.Body}
	}
	return fmt.Errorf("gemini: %w", err)
}

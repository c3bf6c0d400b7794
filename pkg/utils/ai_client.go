package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GenerationConfig carries the per-call sampling knobs and the bounded wait.
// Road-trip itineraries get the longest timeout because output token volume
// is the largest of the three call shapes.
type GenerationConfig struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// AIClientInterface is the model invoker: one outbound call per invocation,
// no retries. Implementations own timeout and raw HTTP failure handling and
// return the model's text verbatim.
type AIClientInterface interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string, cfg GenerationConfig) (string, error)
}

// NewAIClient creates either a Gemini or an OpenAI client based on config.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

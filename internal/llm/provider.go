// Package llm selects the generative-text provider used by the chat service.
package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kisan-backend/internal/gemini"
)

// ProviderType represents the type of LLM provider
type ProviderType string

const (
	ProviderGemini     ProviderType = "gemini"
	ProviderGroq       ProviderType = "groq"
	ProviderOpenRouter ProviderType = "openrouter"
)

// Generator produces an answer to a user's question under a system prompt.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
	Name() string
}

// Config holds configuration for the chat provider
type Config struct {
	Provider  ProviderType  `yaml:"provider"`
	APIKey    string        `yaml:"api_key"`
	ModelName string        `yaml:"model_name"`
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// NewGenerator builds the configured provider. It returns a nil Generator
// and no error when no API key is set, which puts chat in mock mode.
func NewGenerator(cfg Config, logger *zap.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		logger.Warn("No chat provider API key configured, using mock responses",
			zap.String("provider", string(cfg.Provider)))
		return nil, nil
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		client, err := gemini.NewClient(gemini.Config{
			APIKey:    cfg.APIKey,
			ModelName: cfg.ModelName,
			Timeout:   cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderGroq, ProviderOpenRouter:
		return NewOpenAIClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Provider)
	}
}

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"kisan-backend/internal/fallback"
)

var defaultBaseURLs = map[ProviderType]string{
	ProviderGroq:       "https://api.groq.com/openai/v1",
	ProviderOpenRouter: "https://openrouter.ai/api/v1",
}

var defaultModels = map[ProviderType]string{
	ProviderGroq:       "llama-3.3-70b-versatile",
	ProviderOpenRouter: "meta-llama/llama-3.2-3b-instruct:free",
}

// OpenAIClient talks to OpenAI-compatible chat completion APIs (Groq,
// OpenRouter).
type OpenAIClient struct {
	client    *openai.Client
	provider  ProviderType
	modelName string
	logger    *zap.Logger
}

func NewOpenAIClient(cfg Config, logger *zap.Logger) *OpenAIClient {
	if cfg.ModelName == "" {
		cfg.ModelName = defaultModels[cfg.Provider]
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURLs[cfg.Provider]
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	logger.Info("OpenAI-compatible client initialized",
		zap.String("provider", string(cfg.Provider)),
		zap.String("model", cfg.ModelName))

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		provider:  cfg.Provider,
		modelName: cfg.ModelName,
		logger:    logger,
	}
}

func (c *OpenAIClient) Name() string {
	return string(c.provider) + "/" + c.modelName
}

func (c *OpenAIClient) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "User Question: " + userMessage},
		},
		Temperature: 0.7,
		TopP:        0.8,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("%s API error: %w", c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in %s response: %w", c.provider, fallback.ErrMalformedPayload)
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty %s response: %w", c.provider, fallback.ErrMalformedPayload)
	}

	c.logger.Debug("Chat completion received",
		zap.String("provider", string(c.provider)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return answer, nil
}

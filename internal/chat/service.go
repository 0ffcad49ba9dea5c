// Package chat answers farmers' questions through the configured text
// provider, falling back to canned replies.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/llm"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

// LiveConfidence is reported for every provider-generated answer.
const LiveConfidence = 0.85

type Service struct {
	gen    llm.Generator
	logger *zap.Logger
}

// NewService creates the chat service. A nil generator means mock mode.
func NewService(gen llm.Generator, logger *zap.Logger) *Service {
	return &Service{gen: gen, logger: logger}
}

// Respond answers req.Message. It always returns a usable response.
func (s *Service) Respond(ctx context.Context, req models.ChatRequest) fallback.Result[models.ChatResponse] {
	lang := locale.Normalize(req.Language)

	if s.gen == nil {
		s.logger.Warn("Chat provider not configured, using mock response",
			zap.String("reason", string(fallback.ReasonMissingCredentials)))
		return fallback.Fallback(mockResponse(lang), fallback.ReasonMissingCredentials, nil)
	}

	answer, err := s.gen.Generate(ctx, SystemPrompt(lang, req.Context), req.Message)
	if err != nil {
		reason := fallback.Classify(err)
		s.logger.Warn("Chat provider failed, using mock response",
			zap.String("provider", s.gen.Name()),
			zap.String("reason", string(reason)),
			zap.Error(err))
		return fallback.Fallback(mockResponse(lang), reason, err)
	}

	s.logger.Debug("Chat answered", zap.String("provider", s.gen.Name()), zap.String("session_id", req.SessionID))
	return fallback.Live(models.NewChatResponse(answer, lang, LiveConfidence, models.CategoryFarmingAdvice))
}

// MarketAdvice asks whether to sell crop at the given price per kg.
func (s *Service) MarketAdvice(ctx context.Context, crop string, price float64, lang string) fallback.Result[models.ChatResponse] {
	msg := fmt.Sprintf("Should I sell my %s today? Current price is ₹%s/kg.", crop, strconv.FormatFloat(price, 'f', -1, 64))
	return s.ask(ctx, msg, lang, map[string]any{
		"crop_type":     crop,
		"current_price": price,
		"advice_type":   "market",
	}, models.CategoryMarketAdvice)
}

// FarmingGuidance asks what to do this week for a crop in a location.
func (s *Service) FarmingGuidance(ctx context.Context, crop, location, lang string) fallback.Result[models.ChatResponse] {
	msg := fmt.Sprintf("What should I do this week for my %s crop in %s?", crop, location)
	return s.ask(ctx, msg, lang, map[string]any{
		"crop_type":   crop,
		"location":    location,
		"advice_type": "farming",
	}, models.CategoryFarmingAdvice)
}

// SchemeRecommendations asks which government schemes fit the farmer.
func (s *Service) SchemeRecommendations(ctx context.Context, farmerType, crop, location, lang string) fallback.Result[models.ChatResponse] {
	msg := fmt.Sprintf("What government schemes can help me? I am a %s farmer growing %s in %s.", farmerType, crop, location)
	return s.ask(ctx, msg, lang, map[string]any{
		"farmer_type": farmerType,
		"crop_type":   crop,
		"location":    location,
		"advice_type": "schemes",
	}, models.CategorySchemeInfo)
}

func (s *Service) ask(ctx context.Context, msg, lang string, chatCtx map[string]any, category models.ChatCategory) fallback.Result[models.ChatResponse] {
	res := s.Respond(ctx, models.ChatRequest{Message: msg, Language: lang, Context: chatCtx})
	res.Value.Category = category
	return res
}

// SystemPrompt builds the instructions sent ahead of the user's question.
func SystemPrompt(lang string, chatCtx map[string]any) string {
	base, _ := locale.Lookup(locale.SystemPrompts, lang)

	var sb strings.Builder
	sb.WriteString(base)
	if len(chatCtx) > 0 {
		if encoded, err := encodeContext(chatCtx); err == nil {
			sb.WriteString("\n\nContext: ")
			sb.WriteString(encoded)
		}
	}
	sb.WriteString("\n\nLanguage: Respond in ")
	sb.WriteString(lang)
	sb.WriteString(" language\n\n")
	sb.WriteString(locale.PromptGuidelines)
	return sb.String()
}

func encodeContext(chatCtx map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(chatCtx); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func mockResponse(lang string) models.ChatResponse {
	mock, _ := locale.Lookup(locale.MockChatResponses, lang)
	resp := models.NewChatResponse(mock.Text, lang, mock.Confidence, models.CategoryFarmingAdvice)
	resp.ActionableSteps = append([]string(nil), mock.Steps...)
	return resp
}

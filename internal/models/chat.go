package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies who authored a chat message
type MessageType string

const (
	MessageTypeUser      MessageType = "user"
	MessageTypeAssistant MessageType = "assistant"
	MessageTypeSystem    MessageType = "system"
)

// ChatCategory is assigned by the caller after generation
type ChatCategory string

const (
	CategoryFarmingAdvice ChatCategory = "farming_advice"
	CategoryMarketAdvice  ChatCategory = "market_advice"
	CategorySchemeInfo    ChatCategory = "scheme_info"
)

var (
	ErrEmptySessionID = errors.New("session_id is required")
	ErrEmptyMessage   = errors.New("message is required")
)

// ChatMessage is a single utterance within a session
type ChatMessage struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id,omitempty"`
	SessionID   string      `json:"session_id"`
	Message     string      `json:"message"`
	MessageType MessageType `json:"message_type"`
	Language    string      `json:"language"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ChatRequest is a farmer's question plus optional context (crop, location, ...)
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id" binding:"required"`
	UserID    string         `json:"user_id,omitempty"`
	Language  string         `json:"language"`
	Context   map[string]any `json:"context,omitempty"`
}

// Validate checks the fields every chat request must carry.
func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return ErrEmptySessionID
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// ChatResponse is the assistant's reply
type ChatResponse struct {
	ID              string       `json:"id"`
	Message         string       `json:"message"`
	MessageType     MessageType  `json:"message_type"`
	Language        string       `json:"language"`
	Confidence      float64      `json:"confidence"`
	Category        ChatCategory `json:"category,omitempty"`
	ActionableSteps []string     `json:"actionable_steps,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
}

// NewChatResponse builds an assistant reply with a fresh id and timestamp.
func NewChatResponse(message, language string, confidence float64, category ChatCategory) ChatResponse {
	return ChatResponse{
		ID:          uuid.New().String(),
		Message:     message,
		MessageType: MessageTypeAssistant,
		Language:    language,
		Confidence:  ClampConfidence(confidence),
		Category:    category,
		Timestamp:   time.Now().UTC(),
	}
}

// VoiceRequest carries base64 audio for transcription
type VoiceRequest struct {
	AudioBase64 string `json:"audio_base64" binding:"required"`
	Language    string `json:"language"` // BCP-47, e.g. "hi-IN"
	UserID      string `json:"user_id,omitempty"`
}

type VoiceResponse struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

type TTSRequest struct {
	Text      string `json:"text" binding:"required"`
	Language  string `json:"language"`
	VoiceName string `json:"voice_name,omitempty"`
}

type TTSResponse struct {
	AudioBase64 string `json:"audio_base64"`
	Language    string `json:"language"`
}

// ClampConfidence keeps a confidence score within [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

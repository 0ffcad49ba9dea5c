// Package voice transcribes farmers' recordings and reads answers aloud
// through the Cloud Speech and Text-to-Speech APIs.
package voice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	speech "google.golang.org/api/speech/v1"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

const (
	// DefaultConfidence is used when the provider omits one.
	DefaultConfidence = 0.8
	mockConfidence    = 0.85

	sampleRateHertz = 48000
)

// Config for the voice client
type Config struct {
	APIKey   string
	Endpoint string // overrides both API base URLs, e.g. for tests
	Timeout  time.Duration
}

type Client struct {
	stt     *speech.Service
	tts     *texttospeech.Service
	logger  *zap.Logger
	timeout time.Duration
}

// NewClient creates a voice client. Without an API key transcripts come from
// the mock tables and synthesis returns no audio.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{logger: logger, timeout: cfg.Timeout}
	if cfg.APIKey == "" {
		logger.Warn("Speech API key not found, using mock voice responses")
		return c, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	ctx := context.Background()
	stt, err := speech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	tts, err := texttospeech.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}
	c.stt, c.tts = stt, tts

	logger.Info("Voice client initialized")
	return c, nil
}

// Transcribe converts base64 WEBM/Opus audio into text.
func (c *Client) Transcribe(ctx context.Context, req models.VoiceRequest) fallback.Result[models.VoiceResponse] {
	lang := locale.SpeechCode(req.Language)

	if c.stt == nil {
		c.logger.Warn("Speech-to-text not configured, using mock transcript",
			zap.String("language", lang),
			zap.String("reason", string(fallback.ReasonMissingCredentials)))
		return fallback.Fallback(mockTranscription(lang), fallback.ReasonMissingCredentials, nil)
	}

	resp, err := c.recognize(ctx, strings.TrimSpace(req.AudioBase64), lang)
	if err != nil {
		reason := fallback.Classify(err)
		c.logger.Warn("Speech-to-text failed, using mock transcript",
			zap.String("language", lang),
			zap.String("reason", string(reason)),
			zap.Error(err))
		return fallback.Fallback(mockTranscription(lang), reason, err)
	}
	return fallback.Live(resp)
}

func (c *Client) recognize(ctx context.Context, audio, lang string) (models.VoiceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stt.Speech.Recognize(&speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:                   "WEBM_OPUS",
			SampleRateHertz:            sampleRateHertz,
			LanguageCode:               lang,
			EnableAutomaticPunctuation: true,
			Model:                      "latest_long",
		},
		Audio: &speech.RecognitionAudio{Content: audio},
	}).Context(ctx).Do()
	if err != nil {
		return models.VoiceResponse{}, fmt.Errorf("speech recognize: %w", err)
	}

	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		return models.VoiceResponse{}, fmt.Errorf("no transcription results: %w", fallback.ErrMalformedPayload)
	}

	best := resp.Results[0].Alternatives[0]
	confidence := best.Confidence
	if confidence == 0 {
		confidence = DefaultConfidence
	}
	return models.VoiceResponse{
		Transcript: best.Transcript,
		Confidence: models.ClampConfidence(confidence),
		Language:   lang,
	}, nil
}

// Synthesize reads text aloud, returning base64 MP3 audio.
func (c *Client) Synthesize(ctx context.Context, req models.TTSRequest) fallback.Result[models.TTSResponse] {
	lang := locale.SpeechCode(req.Language)
	mock := models.TTSResponse{Language: lang}

	if c.tts == nil {
		c.logger.Warn("Text-to-speech not configured, returning empty audio",
			zap.String("language", lang),
			zap.String("reason", string(fallback.ReasonMissingCredentials)))
		return fallback.Fallback(mock, fallback.ReasonMissingCredentials, nil)
	}

	voiceName := req.VoiceName
	if voiceName == "" {
		voiceName, _ = locale.LookupSpeech(locale.VoiceNames, lang)
	}

	audio, err := c.synthesize(ctx, req.Text, lang, voiceName)
	if err != nil {
		reason := fallback.Classify(err)
		c.logger.Warn("Text-to-speech failed, returning empty audio",
			zap.String("language", lang),
			zap.String("voice", voiceName),
			zap.String("reason", string(reason)),
			zap.Error(err))
		return fallback.Fallback(mock, reason, err)
	}
	return fallback.Live(models.TTSResponse{AudioBase64: audio, Language: lang})
}

func (c *Client) synthesize(ctx context.Context, text, lang, voiceName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.tts.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: lang,
			Name:         voiceName,
			SsmlGender:   "NEUTRAL",
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  1.0,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("text synthesize: %w", err)
	}
	if resp.AudioContent == "" {
		return "", fmt.Errorf("no audio content: %w", fallback.ErrMalformedPayload)
	}
	return resp.AudioContent, nil
}

func mockTranscription(lang string) models.VoiceResponse {
	text, _ := locale.LookupSpeech(locale.MockTranscripts, lang)
	return models.VoiceResponse{
		Transcript: text,
		Confidence: mockConfidence,
		Language:   lang,
	}
}

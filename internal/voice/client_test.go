package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "test-key", Endpoint: srv.URL + "/"}, zap.NewNop())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestTranscribe_Live(t *testing.T) {
	var got map[string]map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/speech:recognize", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, `{"results": [{"alternatives": [{"transcript": "टमाटर के पत्ते पीले हैं", "confidence": 0.93}]}]}`)
	})

	res := c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "T2dnUw==", Language: "hi"})

	require.False(t, res.IsFallback())
	assert.Equal(t, "टमाटर के पत्ते पीले हैं", res.Value.Transcript)
	assert.InDelta(t, 0.93, res.Value.Confidence, 1e-9)
	assert.Equal(t, "hi-IN", res.Value.Language)

	assert.Equal(t, "WEBM_OPUS", got["config"]["encoding"])
	assert.EqualValues(t, 48000, got["config"]["sampleRateHertz"])
	assert.Equal(t, "hi-IN", got["config"]["languageCode"])
	assert.Equal(t, "latest_long", got["config"]["model"])
	assert.Equal(t, "T2dnUw==", got["audio"]["content"])
}

func TestTranscribe_MissingConfidenceDefaults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results": [{"alternatives": [{"transcript": "hello"}]}]}`)
	})

	res := c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "x", Language: "en-IN"})

	require.False(t, res.IsFallback())
	assert.Equal(t, DefaultConfidence, res.Value.Confidence)
	assert.Equal(t, "en-IN", res.Value.Language)
}

func TestTranscribe_Fallbacks(t *testing.T) {
	t.Run("no results", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { writeJSON(w, `{}`) })
		res := c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "x", Language: "kn-IN"})

		assert.True(t, res.IsFallback())
		assert.Equal(t, fallback.ReasonMalformedPayload, res.Reason)
		assert.Equal(t, locale.MockTranscripts["kn-IN"], res.Value.Transcript)
	})

	t.Run("forbidden", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "denied", http.StatusForbidden)
		})
		res := c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "x", Language: "xx"})

		assert.True(t, res.IsFallback())
		assert.Equal(t, fallback.ReasonBadStatus, res.Reason)
		assert.Equal(t, locale.MockTranscripts[locale.DefaultSpeechCode], res.Value.Transcript)
	})
}

func TestSynthesize_Live(t *testing.T) {
	var got struct {
		Voice struct {
			LanguageCode string
			Name         string
			SsmlGender   string
		}
		AudioConfig struct{ AudioEncoding string }
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text:synthesize", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, `{"audioContent": "SUQzBAA="}`)
	})

	res := c.Synthesize(context.Background(), models.TTSRequest{Text: "नमस्ते", Language: "ta"})

	require.False(t, res.IsFallback())
	assert.Equal(t, "SUQzBAA=", res.Value.AudioBase64)
	assert.Equal(t, "ta-IN", got.Voice.LanguageCode)
	assert.Equal(t, "ta-IN-Wavenet-A", got.Voice.Name)
	assert.Equal(t, "NEUTRAL", got.Voice.SsmlGender)
	assert.Equal(t, "MP3", got.AudioConfig.AudioEncoding)
}

func TestSynthesize_EmptyAudioFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { writeJSON(w, `{}`) })

	res := c.Synthesize(context.Background(), models.TTSRequest{Text: "hi", Language: "hi-IN", VoiceName: "custom"})

	assert.True(t, res.IsFallback())
	assert.Equal(t, fallback.ReasonMalformedPayload, res.Reason)
	assert.Empty(t, res.Value.AudioBase64)
	assert.Equal(t, "hi-IN", res.Value.Language)
}

func TestNoCredentials(t *testing.T) {
	c, err := NewClient(Config{}, zap.NewNop())
	require.NoError(t, err)

	stt := c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "x"})
	assert.True(t, stt.IsFallback())
	assert.Equal(t, fallback.ReasonMissingCredentials, stt.Reason)
	assert.Equal(t, "hi-IN", stt.Value.Language)
	assert.NotEmpty(t, stt.Value.Transcript)

	tts := c.Synthesize(context.Background(), models.TTSRequest{Text: "hello", Language: "en"})
	assert.True(t, tts.IsFallback())
	assert.Equal(t, "en-IN", tts.Value.Language)
}

func TestNoCredentials_LogsEveryCall(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c, err := NewClient(Config{}, zap.New(core))
	require.NoError(t, err)

	c.Transcribe(context.Background(), models.VoiceRequest{AudioBase64: "AAAA", Language: "ta"})
	c.Synthesize(context.Background(), models.TTSRequest{Text: "vanakkam", Language: "ta"})

	stt := logs.FilterMessage("Speech-to-text not configured, using mock transcript").All()
	require.Len(t, stt, 1)
	assert.Equal(t, "ta-IN", stt[0].ContextMap()["language"])
	assert.Equal(t, string(fallback.ReasonMissingCredentials), stt[0].ContextMap()["reason"])

	tts := logs.FilterMessage("Text-to-speech not configured, returning empty audio").All()
	require.Len(t, tts, 1)
	assert.Equal(t, string(fallback.ReasonMissingCredentials), tts[0].ContextMap()["reason"])
}

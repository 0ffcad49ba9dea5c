package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kisan-backend/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"hi":    "hi",
		"EN":    "en",
		"ta-IN": "ta",
		"mr_IN": "mr",
		" gu ":  "gu",
		"fr":    Default,
		"":      Default,
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestSpeechCode(t *testing.T) {
	assert.Equal(t, "hi-IN", SpeechCode(""))
	assert.Equal(t, "en-IN", SpeechCode("en"))
	assert.Equal(t, "bn-IN", SpeechCode("bn-IN"))
}

func TestLookup_FallsBackToDefault(t *testing.T) {
	got, ok := Lookup(MockChatResponses, "fr")
	assert.False(t, ok)
	assert.Equal(t, MockChatResponses[Default], got)

	got, ok = Lookup(MockChatResponses, English)
	assert.True(t, ok)
	assert.Equal(t, MockChatResponses[English], got)
}

func TestTablesHaveDefault(t *testing.T) {
	assert.Contains(t, MockChatResponses, Default)
	assert.Contains(t, SystemPrompts, Default)
	assert.Contains(t, MarketAdvice, Default)
	assert.Contains(t, MockDiseases, Default)
	assert.Contains(t, MockTreatments, Default)
	assert.Contains(t, MockTranscripts, DefaultSpeechCode)
	assert.Contains(t, VoiceNames, DefaultSpeechCode)
}

func TestMarketAdvice_CoversEveryDirection(t *testing.T) {
	for lang, phrases := range MarketAdvice {
		for _, dir := range []models.TrendDirection{models.TrendUp, models.TrendDown, models.TrendStable} {
			assert.NotEmpty(t, phrases[dir].Reason, "%s/%s", lang, dir)
		}
	}
}

func TestSpeechTablesCoverSupportedLanguages(t *testing.T) {
	for _, lang := range Supported {
		assert.Contains(t, MockTranscripts, SpeechCode(lang))
		assert.Contains(t, VoiceNames, SpeechCode(lang))
	}
}

func TestLookupSpeech(t *testing.T) {
	name, ok := LookupSpeech(VoiceNames, "xx-IN")
	assert.False(t, ok)
	assert.Equal(t, "hi-IN-Wavenet-A", name)
}

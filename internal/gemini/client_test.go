package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisan-backend/internal/fallback"
)

func candidate(parts ...genai.Part) *genai.Candidate {
	return &genai.Candidate{Content: &genai.Content{Role: "model", Parts: parts}}
}

func TestResponseText(t *testing.T) {
	got, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{candidate(genai.Text("Irrigate "), genai.Text("in the evening.\n"))},
	})
	require.NoError(t, err)
	assert.Equal(t, "Irrigate in the evening.", got)
}

func TestResponseText_SkipsNonTextParts(t *testing.T) {
	got, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{candidate(genai.Blob{MIMEType: "image/png", Data: []byte{1}}, genai.Text("Use neem oil."))},
	})
	require.NoError(t, err)
	assert.Equal(t, "Use neem oil.", got)
}

func TestResponseText_Malformed(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"no parts":      {Candidates: []*genai.Candidate{candidate()}},
		"only blobs":    {Candidates: []*genai.Candidate{candidate(genai.Blob{MIMEType: "image/png", Data: []byte{1}})}},
		"blank text":    {Candidates: []*genai.Candidate{candidate(genai.Text("  \n"))}},
	}
	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := responseText(resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, fallback.ErrMalformedPayload)
			assert.Equal(t, fallback.ReasonMalformedPayload, fallback.Classify(err))
		})
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(Config{}, zap.NewNop())
	assert.Error(t, err)
}

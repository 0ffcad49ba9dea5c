package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
	"kisan-backend/internal/voice"
)

type VoiceHandler interface {
	Transcribe(c *gin.Context)
	Synthesize(c *gin.Context)
}

type voiceHandler struct {
	voice  *voice.Client
	logger *zap.Logger
}

func NewVoiceHandler(voiceClient *voice.Client, logger *zap.Logger) VoiceHandler {
	return &voiceHandler{voice: voiceClient, logger: logger}
}

// Transcribe handles POST /api/v1/voice/transcribe
func (h *voiceHandler) Transcribe(c *gin.Context) {
	var req models.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respondResult(c, h.voice.Transcribe(c.Request.Context(), req))
}

// Synthesize handles POST /api/v1/voice/synthesize
func (h *voiceHandler) Synthesize(c *gin.Context) {
	var req models.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respondResult(c, h.voice.Synthesize(c.Request.Context(), req))
}

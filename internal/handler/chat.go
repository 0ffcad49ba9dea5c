package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/chat"
	"kisan-backend/internal/models"
)

type ChatHandler interface {
	Chat(c *gin.Context)
	MarketAdvice(c *gin.Context)
	FarmingGuidance(c *gin.Context)
	Schemes(c *gin.Context)
}

type chatHandler struct {
	chat   *chat.Service
	logger *zap.Logger
}

func NewChatHandler(chatService *chat.Service, logger *zap.Logger) ChatHandler {
	return &chatHandler{chat: chatService, logger: logger}
}

type MarketAdviceRequest struct {
	CropName     string  `json:"crop_name" binding:"required"`
	CurrentPrice float64 `json:"current_price" binding:"gte=0"`
	Language     string  `json:"language"`
}

type FarmingGuidanceRequest struct {
	CropType string `json:"crop_type" binding:"required"`
	Location string `json:"location" binding:"required"`
	Language string `json:"language"`
}

type SchemesRequest struct {
	FarmerType string `json:"farmer_type" binding:"required"`
	CropType   string `json:"crop_type" binding:"required"`
	Location   string `json:"location" binding:"required"`
	Language   string `json:"language"`
}

// Chat handles POST /api/v1/chat
func (h *chatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}
	req.UserID = currentUserID(c)

	respondResult(c, h.chat.Respond(c.Request.Context(), req))
}

// MarketAdvice handles POST /api/v1/chat/market-advice
func (h *chatHandler) MarketAdvice(c *gin.Context) {
	var req MarketAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respondResult(c, h.chat.MarketAdvice(c.Request.Context(), req.CropName, req.CurrentPrice, req.Language))
}

// FarmingGuidance handles POST /api/v1/chat/farming-guidance
func (h *chatHandler) FarmingGuidance(c *gin.Context) {
	var req FarmingGuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respondResult(c, h.chat.FarmingGuidance(c.Request.Context(), req.CropType, req.Location, req.Language))
}

// Schemes handles POST /api/v1/chat/schemes
func (h *chatHandler) Schemes(c *gin.Context) {
	var req SchemesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	respondResult(c, h.chat.SchemeRecommendations(c.Request.Context(), req.FarmerType, req.CropType, req.Location, req.Language))
}

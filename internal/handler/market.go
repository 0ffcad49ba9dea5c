package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/advice"
	"kisan-backend/internal/mandi"
	"kisan-backend/internal/models"
)

type MarketHandler interface {
	Prices(c *gin.Context)
	Advice(c *gin.Context)
	Trends(c *gin.Context)
	Nearby(c *gin.Context)
}

type marketHandler struct {
	mandi  *mandi.Client
	logger *zap.Logger
}

func NewMarketHandler(mandiClient *mandi.Client, logger *zap.Logger) MarketHandler {
	return &marketHandler{mandi: mandiClient, logger: logger}
}

// AdviceRequest carries either a full series or bare prices, oldest first.
type AdviceRequest struct {
	PriceTrends []models.PriceTrend `json:"price_trends"`
	Prices      []float64           `json:"prices"`
	Language    string              `json:"language"`
}

// Prices handles POST /api/v1/market/prices
func (h *marketHandler) Prices(c *gin.Context) {
	var req models.MarketPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respondResult(c, h.mandi.GetMarketPrices(c.Request.Context(), req))
}

// Advice handles POST /api/v1/market/advice
func (h *marketHandler) Advice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	history := req.PriceTrends
	if len(history) == 0 && len(req.Prices) > 0 {
		history = advice.FromPrices(req.Prices, models.NewDate(time.Now()))
	}
	c.JSON(http.StatusOK, h.mandi.Advise(history, req.Language))
}

// Trends handles GET /api/v1/market/trends?crop=wheat&days=7
func (h *marketHandler) Trends(c *gin.Context) {
	crop := c.Query("crop")
	if crop == "" {
		badRequest(c, errors.New("crop is required"))
		return
	}
	days := mandi.DefaultTrendDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 90 {
			badRequest(c, errors.New("days must be between 1 and 90"))
			return
		}
		days = n
	}
	c.JSON(http.StatusOK, gin.H{"crop_name": crop, "price_trends": h.mandi.GetPriceTrends(crop, days)})
}

// Nearby handles GET /api/v1/market/nearby?lat=..&lng=..
func (h *marketHandler) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		badRequest(c, errors.New("lat and lng must be numbers"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"markets": h.mandi.GetNearbyMarkets(lat, lng)})
}

// Package mandi serves crop price analysis from the data.gov.in mandi price
// feed, with a deterministic local model standing in for unmapped data.
package mandi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kisan-backend/internal/advice"
	"kisan-backend/internal/fallback"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

const (
	DefaultBaseURL   = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"
	DefaultBasePrice = 20.0
	DefaultTrendDays = 7

	// centre of India, used when no location is known
	defaultLatitude  = 20.5937
	defaultLongitude = 78.9629
)

// basePrices are per-kg reference prices.
var basePrices = map[string]float64{
	"tomato":    15,
	"tomatoes":  15,
	"potato":    20,
	"potatoes":  20,
	"onion":     25,
	"onions":    25,
	"wheat":     30,
	"rice":      35,
	"cotton":    55,
	"sugarcane": 3,
	"maize":     20,
	"barley":    25,
	"mustard":   55,
	"groundnut": 55,
	"soybean":   45,
}

// dailyVariation shapes the mock price series, cycling when more days are
// requested.
var dailyVariation = []float64{-0.06, 0.03, -0.02, 0.05, 0.01, -0.04, 0.02}

// Record is one row of the data.gov.in mandi price feed.
type Record struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

type recordsResponse struct {
	Total   int      `json:"total"`
	Count   int      `json:"count"`
	Records []Record `json:"records"`
}

// Config for the mandi client
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.APIKey == "" {
		logger.Warn("Mandi API key not found, using mock data")
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetMarketPrices returns the price analysis for a crop in a region. Feed
// records are fetched and logged but not mapped, so the analysis comes from
// the local model and is reported with ReasonUnmapped.
func (c *Client) GetMarketPrices(ctx context.Context, req models.MarketPriceRequest) fallback.Result[models.MarketAnalysis] {
	lang := locale.Normalize(req.Language)
	mock := c.mockAnalysis(req.CropName, req.Region, req.District, lang)

	if c.apiKey == "" {
		c.logger.Warn("Mandi API not configured, using mock data",
			zap.String("crop", req.CropName),
			zap.String("reason", string(fallback.ReasonMissingCredentials)))
		return fallback.Fallback(mock, fallback.ReasonMissingCredentials, nil)
	}

	records, err := c.fetchRecords(ctx, req)
	if err != nil {
		reason := fallback.Classify(err)
		c.logger.Warn("Mandi API call failed, using mock data",
			zap.String("crop", req.CropName),
			zap.String("region", req.Region),
			zap.String("reason", string(reason)),
			zap.Error(err))
		return fallback.Fallback(mock, reason, err)
	}

	c.logger.Info("Mandi records received",
		zap.String("crop", req.CropName),
		zap.String("region", req.Region),
		zap.Int("records", len(records)))
	return fallback.Fallback(mock, fallback.ReasonUnmapped, nil)
}

func (c *Client) fetchRecords(ctx context.Context, req models.MarketPriceRequest) ([]Record, error) {
	params := url.Values{}
	params.Set("api-key", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", "100")
	params.Set("filters[state]", req.Region)
	params.Set("filters[commodity]", req.CropName)
	if req.District != "" {
		params.Set("filters[district]", req.District)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &fallback.StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	var decoded recordsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode mandi response: %v: %w", err, fallback.ErrMalformedPayload)
	}
	if len(decoded.Records) == 0 {
		return nil, fmt.Errorf("mandi response has no records: %w", fallback.ErrMalformedPayload)
	}
	return decoded.Records, nil
}

// GetPriceTrends returns a days-long series ending today, oldest first.
func (c *Client) GetPriceTrends(crop string, days int) []models.PriceTrend {
	if days <= 0 {
		days = DefaultTrendDays
	}
	base := BasePrice(crop)
	today := models.NewDate(c.now())

	trends := make([]models.PriceTrend, days)
	for i := range trends {
		volume := 500 + (i%7)*250
		trends[i] = models.PriceTrend{
			Date:   today.AddDays(i - days + 1),
			Price:  round2(base * (1 + dailyVariation[i%len(dailyVariation)])),
			Volume: &volume,
		}
	}
	return trends
}

// GetNearbyMarkets lists mandis around a point.
func (c *Client) GetNearbyMarkets(latitude, longitude float64) []models.NearbyMarket {
	markets := make([]models.NearbyMarket, 0, len(locale.MockMarkets))
	for _, m := range locale.MockMarkets {
		market := m.Market
		market.Latitude = latitude + m.LatOffset
		market.Longitude = longitude + m.LngOffset
		markets = append(markets, market)
	}
	return markets
}

// Advise classifies a price history; see advice.Advise.
func (c *Client) Advise(history []models.PriceTrend, lang string) models.MarketAdvice {
	return advice.Advise(history, lang)
}

func (c *Client) mockAnalysis(crop, region, district, lang string) models.MarketAnalysis {
	avg := BasePrice(crop)
	if district == "" {
		district = "Sample District"
	}
	now := c.now()

	current := models.MarketPrice{
		ID:              uuid.NewString(),
		CropName:        crop,
		Region:          region,
		District:        district,
		MarketName:      "Main Mandi",
		MarketNameHindi: "मुख्य मंडी",
		MinPrice:        round2(avg * 0.9),
		MaxPrice:        round2(avg * 1.1),
		AvgPrice:        avg,
		PriceDate:       models.NewDate(now),
		Unit:            "kg",
		CreatedAt:       now,
	}
	if lang != locale.English {
		current.CropNameHindi = CropNameHindi(crop)
	}

	trends := c.GetPriceTrends(crop, DefaultTrendDays)
	return models.MarketAnalysis{
		CropName:      crop,
		CurrentPrice:  current,
		PriceTrends:   trends,
		Advice:        advice.Advise(trends, lang),
		NearbyMarkets: c.GetNearbyMarkets(defaultLatitude, defaultLongitude),
		UpdatedAt:     now,
	}
}

// BasePrice is the per-kg reference price of a crop.
func BasePrice(crop string) float64 {
	if p, ok := basePrices[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return p
	}
	return DefaultBasePrice
}

// CropNameHindi translates a crop name, returning it unchanged when unknown.
func CropNameHindi(crop string) string {
	if name, ok := locale.CropNamesHindi[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return name
	}
	return crop
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

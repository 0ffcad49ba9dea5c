package models

import (
	"fmt"
	"time"
)

// TrendDirection is the up/down/stable classification of recent prices
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// MarketAction is what the farmer is advised to do with the harvest
type MarketAction string

const (
	ActionSell MarketAction = "sell"
	ActionWait MarketAction = "wait"
	ActionHold MarketAction = "hold"
)

// MarketPrice is one mandi's price quote, per Unit
type MarketPrice struct {
	ID              string    `json:"id"`
	CropName        string    `json:"crop_name"`
	CropNameHindi   string    `json:"crop_name_hindi,omitempty"`
	CropNameLocal   string    `json:"crop_name_local,omitempty"`
	Region          string    `json:"region"`
	District        string    `json:"district,omitempty"`
	MarketName      string    `json:"market_name"`
	MarketNameHindi string    `json:"market_name_hindi,omitempty"`
	MinPrice        float64   `json:"min_price"`
	MaxPrice        float64   `json:"max_price"`
	AvgPrice        float64   `json:"avg_price"`
	PriceDate       Date      `json:"price_date"`
	Unit            string    `json:"unit"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate enforces min <= avg <= max.
func (p MarketPrice) Validate() error {
	if p.MinPrice > p.AvgPrice || p.AvgPrice > p.MaxPrice {
		return fmt.Errorf("invalid price range: min=%.2f avg=%.2f max=%.2f", p.MinPrice, p.AvgPrice, p.MaxPrice)
	}
	return nil
}

// PriceTrend is one point of a price series; series run oldest to newest.
type PriceTrend struct {
	Date   Date    `json:"date"`
	Price  float64 `json:"price"`
	Volume *int    `json:"volume,omitempty"`
}

type MarketAdvice struct {
	Action         MarketAction   `json:"action"`
	Reason         string         `json:"reason"`
	ReasonHindi    string         `json:"reason_hindi,omitempty"`
	ReasonLocal    string         `json:"reason_local,omitempty"`
	Confidence     float64        `json:"confidence"`
	ExpectedChange TrendDirection `json:"expected_change"`
	Timeframe      string         `json:"timeframe,omitempty"`
}

// NearbyMarket is a mandi location shown next to the price analysis
type NearbyMarket struct {
	Name         string  `json:"name"`
	NameHindi    string  `json:"name_hindi,omitempty"`
	Address      string  `json:"address"`
	AddressHindi string  `json:"address_hindi,omitempty"`
	Distance     float64 `json:"distance"`
	Contact      string  `json:"contact,omitempty"`
	Timings      string  `json:"timings,omitempty"`
	TimingsHindi string  `json:"timings_hindi,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type MarketAnalysis struct {
	CropName      string         `json:"crop_name"`
	CurrentPrice  MarketPrice    `json:"current_price"`
	PriceTrends   []PriceTrend   `json:"price_trends"`
	Advice        MarketAdvice   `json:"advice"`
	NearbyMarkets []NearbyMarket `json:"nearby_markets"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type MarketPriceRequest struct {
	CropName string `json:"crop_name" binding:"required"`
	Region   string `json:"region" binding:"required"`
	District string `json:"district,omitempty"`
	Language string `json:"language"`
}

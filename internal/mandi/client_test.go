package mandi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/models"
)

var fixedNow = time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	cfg := Config{}
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		cfg = Config{APIKey: "test-key", BaseURL: srv.URL}
	}
	c := NewClient(cfg, zap.NewNop())
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestGetMarketPrices_NoCredentials(t *testing.T) {
	c := newTestClient(t, nil)

	res := c.GetMarketPrices(context.Background(), models.MarketPriceRequest{CropName: "Onion", Region: "Maharashtra", Language: "hi"})

	require.True(t, res.IsFallback())
	assert.Equal(t, fallback.ReasonMissingCredentials, res.Reason)

	a := res.Value
	assert.Equal(t, "Onion", a.CropName)
	assert.Equal(t, 25.0, a.CurrentPrice.AvgPrice)
	assert.Equal(t, 22.5, a.CurrentPrice.MinPrice)
	assert.Equal(t, 27.5, a.CurrentPrice.MaxPrice)
	assert.NoError(t, a.CurrentPrice.Validate())
	assert.Equal(t, "प्याज", a.CurrentPrice.CropNameHindi)
	assert.Equal(t, "Sample District", a.CurrentPrice.District)
	assert.Equal(t, "kg", a.CurrentPrice.Unit)
	assert.Equal(t, "2026-02-20", a.CurrentPrice.PriceDate.String())
	assert.Len(t, a.PriceTrends, DefaultTrendDays)
	assert.Len(t, a.NearbyMarkets, 2)
	assert.Equal(t, 0.75, a.Advice.Confidence)
}

func TestGetMarketPrices_Deterministic(t *testing.T) {
	c := newTestClient(t, nil)
	req := models.MarketPriceRequest{CropName: "wheat", Region: "Punjab", Language: "en"}

	first := c.GetMarketPrices(context.Background(), req).Value
	second := c.GetMarketPrices(context.Background(), req).Value

	assert.Equal(t, first.PriceTrends, second.PriceTrends)
	assert.Equal(t, first.Advice, second.Advice)
	assert.Empty(t, first.CurrentPrice.CropNameHindi)
}

func TestGetMarketPrices_RecordsAreUnmapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api-key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "Karnataka", q.Get("filters[state]"))
		assert.Equal(t, "Tomato", q.Get("filters[commodity]"))
		assert.Equal(t, "Kolar", q.Get("filters[district]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 1, "count": 1, "records": [
			{"state": "Karnataka", "district": "Kolar", "market": "Kolar", "commodity": "Tomato",
			 "arrival_date": "20/02/2026", "min_price": "800", "max_price": "1400", "modal_price": "1100"}
		]}`))
	})

	res := c.GetMarketPrices(context.Background(), models.MarketPriceRequest{
		CropName: "Tomato", Region: "Karnataka", District: "Kolar", Language: "kn",
	})

	assert.True(t, res.IsFallback())
	assert.Equal(t, fallback.ReasonUnmapped, res.Reason)
	assert.NoError(t, res.Err)
	assert.Equal(t, "Kolar", res.Value.CurrentPrice.District)
	assert.Equal(t, 15.0, res.Value.CurrentPrice.AvgPrice)
}

func TestGetMarketPrices_ProviderFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		reason fallback.Reason
	}{
		{"server error", http.StatusBadGateway, "upstream down", fallback.ReasonBadStatus},
		{"bad json", http.StatusOK, "<html>", fallback.ReasonMalformedPayload},
		{"no records", http.StatusOK, `{"records": []}`, fallback.ReasonMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			res := c.GetMarketPrices(context.Background(), models.MarketPriceRequest{CropName: "rice", Region: "Odisha"})

			assert.True(t, res.IsFallback())
			assert.Equal(t, tt.reason, res.Reason)
			assert.Error(t, res.Err)
			assert.Equal(t, 35.0, res.Value.CurrentPrice.AvgPrice)
		})
	}
}

func TestGetMarketPrices_Unreachable(t *testing.T) {
	c := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, zap.NewNop())

	res := c.GetMarketPrices(context.Background(), models.MarketPriceRequest{CropName: "rice", Region: "Odisha"})

	assert.True(t, res.IsFallback())
	assert.Equal(t, fallback.ReasonUnreachable, res.Reason)
}

func TestGetPriceTrends(t *testing.T) {
	c := newTestClient(t, nil)

	trends := c.GetPriceTrends("rice", 7)
	require.Len(t, trends, 7)
	assert.Equal(t, "2026-02-14", trends[0].Date.String())
	assert.Equal(t, "2026-02-20", trends[6].Date.String())
	assert.Equal(t, 32.9, trends[0].Price)
	assert.Equal(t, 35.7, trends[6].Price)
	for i := 1; i < len(trends); i++ {
		assert.True(t, trends[i-1].Date.Before(trends[i].Date.Time))
		require.NotNil(t, trends[i].Volume)
	}

	assert.Len(t, c.GetPriceTrends("rice", 0), DefaultTrendDays)
	assert.Len(t, c.GetPriceTrends("rice", 30), 30)
}

func TestGetNearbyMarkets(t *testing.T) {
	c := newTestClient(t, nil)

	markets := c.GetNearbyMarkets(12.0, 77.0)
	require.Len(t, markets, 2)
	assert.InDelta(t, 12.01, markets[0].Latitude, 1e-9)
	assert.InDelta(t, 77.01, markets[0].Longitude, 1e-9)
	assert.InDelta(t, 76.99, markets[1].Longitude, 1e-9)
	assert.Equal(t, "Main Vegetable Mandi", markets[0].Name)
}

func TestAdvise_EndToEnd(t *testing.T) {
	c := newTestClient(t, nil)

	adv := c.Advise(nil, "hi")
	assert.Equal(t, models.ActionHold, adv.Action)
	assert.Equal(t, models.TrendStable, adv.ExpectedChange)

	day := models.NewDate(fixedNow)
	adv = c.Advise([]models.PriceTrend{{Date: day.AddDays(-1), Price: 100}, {Date: day, Price: 110}}, "hi")
	assert.Equal(t, models.TrendUp, adv.ExpectedChange)
	assert.Equal(t, models.ActionSell, adv.Action)
}

func TestBasePrice(t *testing.T) {
	assert.Equal(t, 15.0, BasePrice(" TOMATO "))
	assert.Equal(t, DefaultBasePrice, BasePrice("dragonfruit"))
	assert.Equal(t, "dragonfruit", CropNameHindi("dragonfruit"))
	assert.Equal(t, "गेहूं", CropNameHindi("Wheat"))
}

func TestGetMarketPrices_NoCredentialsLogsEveryCall(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewClient(Config{}, zap.New(core))

	c.GetMarketPrices(context.Background(), models.MarketPriceRequest{CropName: "onion", Region: "Maharashtra"})

	entries := logs.FilterMessage("Mandi API not configured, using mock data").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "onion", entries[0].ContextMap()["crop"])
	assert.Equal(t, string(fallback.ReasonMissingCredentials), entries[0].ContextMap()["reason"])
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))

	// each Devanagari letter is three bytes
	s := "मंडी भाव"
	for n := 0; n <= len(s); n++ {
		got := truncate(s, n)
		assert.True(t, utf8.ValidString(got), "n=%d", n)
		assert.LessOrEqual(t, len(got), n)
	}
	assert.Equal(t, "म", truncate(s, 4))
}

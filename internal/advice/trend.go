// Package advice turns a short price history into a sell/wait/hold
// recommendation.
package advice

import (
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

// Confidence is reported for every recommendation. It is not derived from
// the data.
const Confidence = 0.75

// Classify compares the two most recent points of an oldest-to-newest series.
func Classify(history []models.PriceTrend) models.TrendDirection {
	if len(history) < 2 {
		return models.TrendStable
	}
	delta := history[len(history)-1].Price - history[len(history)-2].Price
	switch {
	case delta > 0:
		return models.TrendUp
	case delta < 0:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

// ActionFor maps a trend direction to what the farmer should do.
func ActionFor(direction models.TrendDirection) models.MarketAction {
	switch direction {
	case models.TrendUp:
		return models.ActionSell
	case models.TrendDown:
		return models.ActionWait
	default:
		return models.ActionHold
	}
}

// Advise classifies history and phrases the result in lang. Languages without
// their own wording get the default language's.
func Advise(history []models.PriceTrend, lang string) models.MarketAdvice {
	direction := Classify(history)
	lang = locale.Normalize(lang)

	phrases, _ := locale.Lookup(locale.MarketAdvice, lang)
	phrase := phrases[direction]

	adv := models.MarketAdvice{
		Action:         ActionFor(direction),
		Reason:         phrase.Reason,
		Confidence:     Confidence,
		ExpectedChange: direction,
		Timeframe:      phrase.Timeframe,
	}
	if lang != locale.English {
		adv.ReasonHindi = locale.MarketAdvice[locale.Hindi][direction].Reason
	}
	return adv
}

// FromPrices builds an oldest-to-newest series from bare prices, one day
// apart and ending on end.
func FromPrices(prices []float64, end models.Date) []models.PriceTrend {
	out := make([]models.PriceTrend, len(prices))
	for i, p := range prices {
		out[i] = models.PriceTrend{
			Date:  end.AddDays(i - len(prices) + 1),
			Price: p,
		}
	}
	return out
}

package locale

import "kisan-backend/internal/models"

// AdvicePhrase is the wording of one market recommendation.
type AdvicePhrase struct {
	Reason    string
	Timeframe string
}

// MarketAdvice maps a language and trend direction to advice wording.
var MarketAdvice = map[string]map[models.TrendDirection]AdvicePhrase{
	Hindi: {
		models.TrendUp:     {Reason: "भाव बढ़ रहे हैं, अभी बेचना फायदेमंद होगा", Timeframe: "1-2 दिन में"},
		models.TrendDown:   {Reason: "भाव गिर रहे हैं, थोड़ा इंतजार करें", Timeframe: "3-4 दिन में"},
		models.TrendStable: {Reason: "भाव स्थिर हैं, बेच सकते हैं", Timeframe: "अभी"},
	},
	English: {
		models.TrendUp:     {Reason: "Prices are rising, good time to sell", Timeframe: "1-2 days"},
		models.TrendDown:   {Reason: "Prices are falling, wait for better rates", Timeframe: "3-4 days"},
		models.TrendStable: {Reason: "Prices are stable, you can sell", Timeframe: "now"},
	},
}

// CropNamesHindi translates common commodity names.
var CropNamesHindi = map[string]string{
	"tomato":    "टमाटर",
	"tomatoes":  "टमाटर",
	"potato":    "आलू",
	"potatoes":  "आलू",
	"onion":     "प्याज",
	"onions":    "प्याज",
	"wheat":     "गेहूं",
	"rice":      "चावल",
	"cotton":    "कपास",
	"sugarcane": "गन्ना",
	"maize":     "मक्का",
	"barley":    "जौ",
	"mustard":   "सरसों",
	"groundnut": "मूंगफली",
	"soybean":   "सोयाबीन",
}

// MockMarkets are shown as nearby mandis when no location service answers.
// Coordinates are offsets from the requested point.
var MockMarkets = []struct {
	Market    models.NearbyMarket
	LatOffset float64
	LngOffset float64
}{
	{
		Market: models.NearbyMarket{
			Name:         "Main Vegetable Mandi",
			NameHindi:    "मुख्य सब्जी मंडी",
			Address:      "Station Road, City Center",
			AddressHindi: "स्टेशन रोड, सिटी सेंटर",
			Distance:     2.5,
			Contact:      "+91 98765 43210",
			Timings:      "5:00 AM - 2:00 PM",
			TimingsHindi: "सुबह 5:00 - दोपहर 2:00",
		},
		LatOffset: 0.01,
		LngOffset: 0.01,
	},
	{
		Market: models.NearbyMarket{
			Name:         "Grain Market",
			NameHindi:    "अनाज मंडी",
			Address:      "Agriculture Road, Sector 15",
			AddressHindi: "कृषि रोड, सेक्टर 15",
			Distance:     5.2,
			Contact:      "+91 98765 43211",
			Timings:      "6:00 AM - 12:00 PM",
			TimingsHindi: "सुबह 6:00 - दोपहर 12:00",
		},
		LatOffset: 0.02,
		LngOffset: -0.01,
	},
}

package locale

// MockChat is the canned assistant reply used when no text provider answers.
type MockChat struct {
	Text       string
	Confidence float64
	Steps      []string
}

var MockChatResponses = map[string]MockChat{
	Hindi: {
		Text:       "आपके सवाल के जवाब में, मैं सुझाव देता हूं कि आप अपनी फसल की नियमित जांच करें। मौसम को देखते हुए, अगले 3-4 दिनों में सिंचाई करना उचित होगा। यदि आपको कोई बीमारी के लक्षण दिखें तो तुरंत स्थानीय कृषि विशेषज्ञ से सलाह लें।",
		Confidence: 0.85,
		Steps: []string{
			"फसल की दैनिक जांच करें",
			"मिट्टी की नमी देखें",
			"मौसम की जानकारी रखें",
		},
	},
	English: {
		Text:       "Based on your question, I recommend regular monitoring of your crop. Given the current weather conditions, irrigation in the next 3-4 days would be appropriate. If you notice any disease symptoms, consult your local agricultural expert immediately.",
		Confidence: 0.85,
		Steps: []string{
			"Monitor crop daily",
			"Check soil moisture",
			"Stay updated on weather",
		},
	},
	Kannada: {
		Text:       "ನಿಮ್ಮ ಪ್ರಶ್ನೆಗೆ ಉತ್ತರವಾಗಿ, ನಿಮ್ಮ ಬೆಳೆಯ ನಿಯಮಿತ ಪರಿಶೀಲನೆ ಮಾಡಲು ನಾನು ಶಿಫಾರಸು ಮಾಡುತ್ತೇನೆ. ಪ್ರಸ್ತುತ ಹವಾಮಾನ ಪರಿಸ್ಥಿತಿಗಳನ್ನು ಗಮನಿಸಿದರೆ, ಮುಂದಿನ 3-4 ದಿನಗಳಲ್ಲಿ ನೀರಾವರಿ ಮಾಡುವುದು ಸೂಕ್ತವಾಗಿರುತ್ತದೆ.",
		Confidence: 0.85,
		Steps: []string{
			"ಬೆಳೆಯನ್ನು ಪ್ರತಿದಿನ ಪರಿಶೀಲಿಸಿ",
			"ಮಣ್ಣಿನ ತೇವಾಂಶ ಪರಿಶೀಲಿಸಿ",
			"ಹವಾಮಾನ ಮಾಹಿತಿಯನ್ನು ಅಪ್ಡೇಟ್ ಮಾಡಿ",
		},
	},
}

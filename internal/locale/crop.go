package locale

import "kisan-backend/internal/models"

// earlyBlight is the disease reported by the mock analysis.
var earlyBlight = models.DiseaseAnalysis{
	Name:            "Early Blight",
	NameHindi:       "प्रारंभिक झुलसा",
	Symptoms:        "Brown spots on leaves, yellowing, wilting",
	SymptomsHindi:   "पत्तियों पर भूरे धब्बे, पीलापन, मुरझाना",
	Causes:          "High humidity and poor air circulation",
	CausesHindi:     "अधिक नमी और खराब हवा संचार",
	Prevention:      "Regular pruning and proper spacing",
	PreventionHindi: "नियमित छंटाई और उचित दूरी",
}

var earlyBlightTreatments = []models.Treatment{
	{
		Title:            "Fungicide Application",
		TitleHindi:       "फफूंदनाशक का प्रयोग",
		Description:      "Apply fungicide every 7-10 days during humid conditions",
		DescriptionHindi: "नमी के दौरान हर 7-10 दिन में फफूंदनाशक का छिड़काव करें",
		Icon:             "🧪",
		Priority:         models.PriorityHigh,
	},
	{
		Title:            "Improve Ventilation",
		TitleHindi:       "हवा की आवाजाही बढ़ाएं",
		Description:      "Ensure proper spacing between plants for air circulation",
		DescriptionHindi: "हवा के संचार के लिए पौधों के बीच उचित दूरी बनाए रखें",
		Icon:             "🌬️",
		Priority:         models.PriorityMedium,
	},
	{
		Title:            "Remove Infected Parts",
		TitleHindi:       "संक्रमित हिस्से हटाएं",
		Description:      "Prune and dispose of infected leaves and stems",
		DescriptionHindi: "संक्रमित पत्तियों और तनों को काटकर नष्ट करें",
		Icon:             "✂️",
		Priority:         models.PriorityHigh,
	},
}

// MockDiseases is keyed by language; both entries carry the Hindi variants.
var MockDiseases = map[string]models.DiseaseAnalysis{
	Hindi:   earlyBlight,
	English: earlyBlight,
}

var MockTreatments = map[string][]models.Treatment{
	Hindi:   earlyBlightTreatments,
	English: earlyBlightTreatments,
}

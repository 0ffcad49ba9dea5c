package tasks

import (
	"strings"

	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

// DefaultCrop is used for crop types without their own template set.
const DefaultCrop = "tomato"

// Text is a translated title/description pair.
type Text struct {
	Title       string
	Description string
}

// Template is one recurring activity for a crop. Slot is its position in
// the crop's daily list and identifies generated tasks in the store.
type Template struct {
	Slot         int
	Title        string
	Description  string
	Translations map[string]Text
	Category     string
	Priority     models.Priority
	DueTime      string
}

// Definition is a template resolved for one language.
type Definition struct {
	Slot             int
	Title            string
	TitleHindi       string
	TitleLocal       string
	Description      string
	DescriptionHindi string
	DescriptionLocal string
	Category         string
	Priority         models.Priority
	DueTime          string
}

var cropTemplates = map[string][]Template{
	"tomato": {
		{
			Slot:        0,
			Title:       "Check for early blight symptoms",
			Description: "Inspect leaves for brown spots and yellowing",
			Translations: map[string]Text{
				locale.Hindi: {"अर्ली ब्लाइट के लक्षण देखें", "पत्तियों पर भूरे धब्बे और पीलापन की जांच करें"},
			},
			Category: "Disease Prevention",
			Priority: models.PriorityHigh,
			DueTime:  "07:00",
		},
		{
			Slot:        1,
			Title:       "Water the plants",
			Description: "Provide adequate water based on soil moisture",
			Translations: map[string]Text{
				locale.Hindi: {"पौधों को पानी दें", "मिट्टी की नमी के आधार पर पर्याप्त पानी दें"},
			},
			Category: "Irrigation",
			Priority: models.PriorityMedium,
			DueTime:  "08:00",
		},
		{
			Slot:        2,
			Title:       "Apply organic fertilizer",
			Description: "Apply compost or organic fertilizer around plants",
			Translations: map[string]Text{
				locale.Hindi: {"जैविक खाद डालें", "पौधों के चारों ओर कंपोस्ट या जैविक खाद डालें"},
			},
			Category: "Fertilization",
			Priority: models.PriorityLow,
			DueTime:  "16:00",
		},
	},
	"wheat": {
		{
			Slot:        0,
			Title:       "Monitor for rust disease",
			Description: "Check for orange or brown rust spots on leaves",
			Translations: map[string]Text{
				locale.Hindi: {"रस्ट रोग की निगरानी करें", "पत्तियों पर नारंगी या भूरे रंग के रस्ट धब्बे देखें"},
			},
			Category: "Disease Prevention",
			Priority: models.PriorityHigh,
			DueTime:  "07:00",
		},
		{
			Slot:        1,
			Title:       "Check soil moisture",
			Description: "Ensure adequate moisture for grain development",
			Translations: map[string]Text{
				locale.Hindi: {"मिट्टी की नमी जांचें", "अनाज के विकास के लिए पर्याप्त नमी सुनिश्चित करें"},
			},
			Category: "Irrigation",
			Priority: models.PriorityMedium,
			DueTime:  "08:00",
		},
		{
			Slot:        2,
			Title:       "Weed control",
			Description: "Remove weeds that compete with wheat plants",
			Translations: map[string]Text{
				locale.Hindi: {"खरपतवार नियंत्रण", "गेहूं के पौधों से प्रतिस्पर्धा करने वाले खरपतवार हटाएं"},
			},
			Category: "Maintenance",
			Priority: models.PriorityMedium,
			DueTime:  "09:00",
		},
	},
	"rice": {
		{
			Slot:        0,
			Title:       "Maintain water level",
			Description: "Ensure 2-3 inches of water in paddy fields",
			Translations: map[string]Text{
				locale.Hindi: {"पानी का स्तर बनाए रखें", "धान के खेतों में 2-3 इंच पानी सुनिश्चित करें"},
			},
			Category: "Irrigation",
			Priority: models.PriorityHigh,
			DueTime:  "07:00",
		},
		{
			Slot:        1,
			Title:       "Check for stem borer",
			Description: "Look for dead hearts in rice plants",
			Translations: map[string]Text{
				locale.Hindi: {"स्टेम बोरर की जांच करें", "धान के पौधों में मृत हृदय की तलाश करें"},
			},
			Category: "Pest Control",
			Priority: models.PriorityMedium,
			DueTime:  "08:00",
		},
		{
			Slot:        2,
			Title:       "Apply urea fertilizer",
			Description: "Apply urea for nitrogen nutrition",
			Translations: map[string]Text{
				locale.Hindi: {"यूरिया खाद डालें", "नाइट्रोजन पोषण के लिए यूरिया डालें"},
			},
			Category: "Fertilization",
			Priority: models.PriorityLow,
			DueTime:  "16:00",
		},
	},
}

// Templates returns the daily task list for cropType in lang. English gets
// only the base fields; Hindi fills the Hindi fields; any other language
// fills the Local fields from its own translation, or the Hindi fields when
// it has none.
func Templates(cropType, lang string) []Definition {
	set, ok := cropTemplates[strings.ToLower(strings.TrimSpace(cropType))]
	if !ok {
		set = cropTemplates[DefaultCrop]
	}
	lang = locale.Normalize(lang)

	defs := make([]Definition, 0, len(set))
	for _, tmpl := range set {
		def := Definition{
			Slot:        tmpl.Slot,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Category:    tmpl.Category,
			Priority:    tmpl.Priority,
			DueTime:     tmpl.DueTime,
		}
		if lang != locale.English {
			text, hit := locale.Lookup(tmpl.Translations, lang)
			if hit && lang != locale.Hindi {
				def.TitleLocal, def.DescriptionLocal = text.Title, text.Description
			} else {
				def.TitleHindi, def.DescriptionHindi = text.Title, text.Description
			}
		}
		defs = append(defs, def)
	}
	return defs
}

// Create instantiates the definition as a new task for user on date.
func (d Definition) Create(userID, cropType string, date models.Date) models.TaskCreate {
	return models.TaskCreate{
		UserID:           userID,
		Title:            d.Title,
		TitleHindi:       d.TitleHindi,
		TitleLocal:       d.TitleLocal,
		Description:      d.Description,
		DescriptionHindi: d.DescriptionHindi,
		DescriptionLocal: d.DescriptionLocal,
		Category:         d.Category,
		Priority:         d.Priority,
		CropType:         cropType,
		DueDate:          date,
		DueTime:          d.DueTime,
	}
}

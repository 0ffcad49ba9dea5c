package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisan-backend/internal/models"
)

func TestTemplates_Idempotent(t *testing.T) {
	for _, crop := range []string{"tomato", "wheat", "rice"} {
		for _, lang := range []string{"hi", "en", "kn"} {
			assert.Equal(t, Templates(crop, lang), Templates(crop, lang), "%s/%s", crop, lang)
		}
	}
}

func TestTemplates_UnknownCropUsesDefault(t *testing.T) {
	assert.Equal(t, Templates(DefaultCrop, "hi"), Templates("durian", "hi"))
	assert.Equal(t, Templates("tomato", "en"), Templates("", "en"))
}

func TestTemplates_CaseInsensitiveCrop(t *testing.T) {
	assert.Equal(t, Templates("rice", "hi"), Templates("  RICE ", "hi"))
}

func TestTemplates_Rice(t *testing.T) {
	defs := Templates("rice", "hi")
	require.Len(t, defs, 3)

	assert.Equal(t, "Maintain water level", defs[0].Title)
	assert.Equal(t, "पानी का स्तर बनाए रखें", defs[0].TitleHindi)
	assert.Equal(t, models.PriorityHigh, defs[0].Priority)
	assert.Equal(t, "07:00", defs[0].DueTime)

	for i, d := range defs {
		assert.Equal(t, i, d.Slot)
		assert.Empty(t, d.TitleLocal)
	}
}

func TestTemplates_EnglishHasBaseOnly(t *testing.T) {
	for _, d := range Templates("wheat", "en") {
		assert.NotEmpty(t, d.Title)
		assert.Empty(t, d.TitleHindi)
		assert.Empty(t, d.DescriptionHindi)
		assert.Empty(t, d.TitleLocal)
	}
}

func TestTemplates_UntranslatedLanguageUsesHindi(t *testing.T) {
	assert.Equal(t, Templates("wheat", "hi"), Templates("wheat", "ta"))
}

func TestDefinition_Create(t *testing.T) {
	date, err := models.ParseDate("2026-06-01")
	require.NoError(t, err)

	def := Templates("wheat", "hi")[2]
	create := def.Create("u1", "wheat", date)

	require.NoError(t, create.Validate())
	assert.Equal(t, "Weed control", create.Title)
	assert.Equal(t, "wheat", create.CropType)
	assert.Equal(t, date, create.DueDate)
	assert.Equal(t, "09:00", create.DueTime)
}

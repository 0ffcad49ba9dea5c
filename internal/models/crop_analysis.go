package models

import (
	"sort"
	"time"
)

// Treatment is one recommended remedy for a detected disease
type Treatment struct {
	Title            string   `json:"title"`
	TitleHindi       string   `json:"title_hindi,omitempty"`
	TitleLocal       string   `json:"title_local,omitempty"`
	Description      string   `json:"description"`
	DescriptionHindi string   `json:"description_hindi,omitempty"`
	DescriptionLocal string   `json:"description_local,omitempty"`
	Icon             string   `json:"icon"`
	Priority         Priority `json:"priority"`
}

// DiseaseAnalysis describes a detected disease. Name and Symptoms are always set.
type DiseaseAnalysis struct {
	Name            string  `json:"name"`
	NameHindi       string  `json:"name_hindi,omitempty"`
	NameLocal       string  `json:"name_local,omitempty"`
	Confidence      float64 `json:"confidence"`
	Symptoms        string  `json:"symptoms"`
	SymptomsHindi   string  `json:"symptoms_hindi,omitempty"`
	SymptomsLocal   string  `json:"symptoms_local,omitempty"`
	Causes          string  `json:"causes,omitempty"`
	CausesHindi     string  `json:"causes_hindi,omitempty"`
	CausesLocal     string  `json:"causes_local,omitempty"`
	Prevention      string  `json:"prevention,omitempty"`
	PreventionHindi string  `json:"prevention_hindi,omitempty"`
	PreventionLocal string  `json:"prevention_local,omitempty"`
}

// LabelAnnotation is a (description, score) pair returned by the vision provider
type LabelAnnotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type CropAnalysisResult struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id,omitempty"`
	ImageURL   string            `json:"image_url,omitempty"`
	Disease    DiseaseAnalysis   `json:"disease"`
	Treatments []Treatment       `json:"treatments"`
	Confidence float64           `json:"confidence"`
	Labels     []LabelAnnotation `json:"labels,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type CropAnalysisRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	UserID      string `json:"user_id,omitempty"`
	Language    string `json:"language"`
}

// SortTreatments orders treatments high → medium → low, keeping the
// original order within one priority.
func SortTreatments(treatments []Treatment) {
	sort.SliceStable(treatments, func(i, j int) bool {
		return treatments[i].Priority.Rank() > treatments[j].Priority.Rank()
	})
}

// Package vision labels crop photos with the Cloud Vision API and turns the
// labels into a disease analysis.
package vision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/models"
)

const (
	PlantConfidence   = 0.85
	UnknownConfidence = 0.60
	maxResults        = 10
)

var plantKeywords = []string{"plant", "leaf", "crop"}

// Config for the vision client
type Config struct {
	APIKey   string
	Endpoint string // overrides the API base URL, e.g. for tests
	Timeout  time.Duration
}

type Client struct {
	svc     *vision.Service
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewClient creates a vision client. Without an API key every analysis is
// served from the mock tables.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		logger:  logger,
		timeout: cfg.Timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if cfg.APIKey == "" {
		logger.Warn("Vision API key not found, using mock analysis")
		return c, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := vision.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	c.svc = svc

	logger.Info("Vision client initialized")
	return c, nil
}

// Analyze labels the image and reports the likely disease with treatments.
func (c *Client) Analyze(ctx context.Context, req models.CropAnalysisRequest) fallback.Result[models.CropAnalysisResult] {
	lang := locale.Normalize(req.Language)

	if c.svc == nil {
		c.logger.Warn("Vision API not configured, using mock analysis",
			zap.String("reason", string(fallback.ReasonMissingCredentials)))
		return fallback.Fallback(c.mockAnalysis(req.UserID, lang, PlantConfidence, nil), fallback.ReasonMissingCredentials, nil)
	}

	labels, err := c.annotate(ctx, StripDataURI(req.ImageBase64))
	if err != nil {
		reason := fallback.Classify(err)
		c.logger.Warn("Vision API call failed, using mock analysis",
			zap.String("reason", string(reason)),
			zap.Error(err))
		return fallback.Fallback(c.mockAnalysis(req.UserID, lang, PlantConfidence, nil), reason, err)
	}

	confidence := UnknownConfidence
	if plantRelated(labels) {
		confidence = PlantConfidence
	}

	c.logger.Debug("Vision labels received", zap.Int("labels", len(labels)), zap.Float64("confidence", confidence))
	return fallback.Live(c.mockAnalysis(req.UserID, lang, confidence, labels))
}

func (c *Client) annotate(ctx context.Context, content string) ([]models.LabelAnnotation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Images.Annotate(&vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image: &vision.Image{Content: content},
			Features: []*vision.Feature{
				{Type: "LABEL_DETECTION", MaxResults: maxResults},
				{Type: "OBJECT_LOCALIZATION", MaxResults: maxResults},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("vision annotate: %w", err)
	}

	if len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return nil, fmt.Errorf("vision returned no responses: %w", fallback.ErrMalformedPayload)
	}
	first := resp.Responses[0]
	if first.Error != nil {
		return nil, &fallback.StatusError{StatusCode: int(first.Error.Code), Body: first.Error.Message}
	}

	labels := make([]models.LabelAnnotation, 0, len(first.LabelAnnotations)+len(first.LocalizedObjectAnnotations))
	for _, l := range first.LabelAnnotations {
		labels = append(labels, models.LabelAnnotation{Description: l.Description, Score: l.Score})
	}
	for _, o := range first.LocalizedObjectAnnotations {
		labels = append(labels, models.LabelAnnotation{Description: o.Name, Score: o.Score})
	}
	return labels, nil
}

func (c *Client) mockAnalysis(userID, lang string, confidence float64, labels []models.LabelAnnotation) models.CropAnalysisResult {
	disease, _ := locale.Lookup(locale.MockDiseases, lang)
	disease.Confidence = confidence

	base, _ := locale.Lookup(locale.MockTreatments, lang)
	treatments := append([]models.Treatment(nil), base...)
	models.SortTreatments(treatments)

	return models.CropAnalysisResult{
		ID:         uuid.NewString(),
		UserID:     userID,
		Disease:    disease,
		Treatments: treatments,
		Confidence: models.ClampConfidence(confidence),
		Labels:     labels,
		CreatedAt:  c.now(),
	}
}

func plantRelated(labels []models.LabelAnnotation) bool {
	for _, l := range labels {
		desc := strings.ToLower(l.Description)
		for _, kw := range plantKeywords {
			if strings.Contains(desc, kw) {
				return true
			}
		}
	}
	return false
}

// StripDataURI drops a "data:image/...;base64," prefix if present.
func StripDataURI(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

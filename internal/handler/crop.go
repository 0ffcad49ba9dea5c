package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/models"
	"kisan-backend/internal/storage"
	"kisan-backend/internal/vision"
)

type CropHandler interface {
	Analyze(c *gin.Context)
}

type cropHandler struct {
	vision *vision.Client
	images storage.ImageStore // nil when archiving is off
	logger *zap.Logger
}

func NewCropHandler(visionClient *vision.Client, images storage.ImageStore, logger *zap.Logger) CropHandler {
	return &cropHandler{vision: visionClient, images: images, logger: logger}
}

// Analyze handles POST /api/v1/crop/analyze
func (h *cropHandler) Analyze(c *gin.Context) {
	var req models.CropAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	image, err := storage.DecodeImage(req.ImageBase64)
	if err != nil {
		badRequest(c, err)
		return
	}
	// the archive prefix comes from the token, never from the body
	req.UserID = currentUserID(c)

	res := h.vision.Analyze(c.Request.Context(), req)

	if h.images != nil {
		url, err := h.images.SaveImage(c.Request.Context(), req.UserID, res.Value.ID, image)
		if err != nil {
			h.logger.Warn("Failed to archive crop image", zap.String("analysis_id", res.Value.ID), zap.Error(err))
		} else {
			res.Value.ImageURL = url
		}
	}

	respondResult(c, res)
}

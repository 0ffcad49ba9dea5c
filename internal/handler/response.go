package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kisan-backend/internal/fallback"
	"kisan-backend/internal/middleware"
)

const (
	HeaderSource         = "X-Kisan-Source"
	HeaderFallbackReason = "X-Kisan-Fallback-Reason"
)

// respondResult writes the value and says in headers whether it is live.
func respondResult[T any](c *gin.Context, res fallback.Result[T]) {
	c.Header(HeaderSource, string(res.Source))
	if res.Reason != fallback.ReasonNone {
		c.Header(HeaderFallbackReason, string(res.Reason))
	}
	c.JSON(http.StatusOK, res.Value)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

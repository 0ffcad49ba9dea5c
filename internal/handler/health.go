package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Providers reports which external integrations have credentials.
type Providers struct {
	Chat   bool `json:"chat"`
	Vision bool `json:"vision"`
	Speech bool `json:"speech"`
	Mandi  bool `json:"mandi"`
	Images bool `json:"images"`
}

// Health returns a handler for GET /health
func Health(providers Providers) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "providers": providers})
	}
}

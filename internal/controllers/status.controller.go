package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

// Root describes the API surface for anyone poking at /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "pcbuild-assist",
		"version": services.Version,
		"endpoints": gin.H{
			"search":        "/api/components/search",
			"by_type":       "/api/components/type/{type}",
			"facets":        "/api/components/facets",
			"details":       "/api/components/{id}",
			"check_build":   "/api/compatibility/check-build",
			"check_pair":    "/api/compatibility/check-pair/{id1}/{id2}",
			"suggestions":   "/api/suggestions",
			"session_token": "/api/sessions/token",
			"build_session": "/ws",
			"status":        "/api/status",
		},
	})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"catalog": services.CatalogName(),
	})
}

// GetStatus reports service and host utilization details.
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetServiceStatus())
}

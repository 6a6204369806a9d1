package controllers

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

// AdminSecret is the shared secret that gates token issuance. Empty means
// only loopback clients may request tokens.
var AdminSecret string

// DatasetDir is where the reindex operation reads its CSV files from.
var DatasetDir string

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}

// GetAdminToken issues a JWT for index administration. Callers present the
// configured secret in X-Admin-Secret; loopback clients are trusted without
// one when no secret is configured.
func GetAdminToken(c *gin.Context) {
	secret := c.GetHeader("X-Admin-Secret")
	authorized := false
	switch {
	case AdminSecret != "" && secret == AdminSecret:
		authorized = true
	case AdminSecret == "" && isLoopback(c.ClientIP()):
		authorized = true
	}
	if !authorized {
		if middleware.GlobalSecurityLogger != nil {
			middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "admin token request rejected")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin secret required"})
		return
	}

	token, err := services.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogTokenGenerated(c.ClientIP())
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": services.AdminTokenExpiry(),
	})
}

// AdminAuthMiddleware requires a valid admin bearer token.
func AdminAuthMiddleware() gin.HandlerFunc {
	validator := middleware.NewInputValidator()

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !validator.ValidateToken(token) {
			if middleware.GlobalSecurityLogger != nil {
				middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "malformed admin token")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed token"})
			c.Abort()
			return
		}

		if _, err := services.ValidateAdminToken(token); err != nil {
			if middleware.GlobalSecurityLogger != nil {
				middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "invalid admin token: "+err.Error())
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Reindex clears the index and reloads the full dataset.
func Reindex(c *gin.Context) {
	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogAdminAction(c.ClientIP(), "reindex")
	}

	count, err := services.ReindexCatalog(DatasetDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "reindexed",
		"indexed": count,
	})
}

// ClearIndex removes every component from the catalog.
func ClearIndex(c *gin.Context) {
	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogAdminAction(c.ClientIP(), "clear-index")
	}

	if err := services.Catalog().ClearIndex(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	services.ClearCatalogCaches()

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// UpdateSettings reapplies the ranking and faceting configuration.
func UpdateSettings(c *gin.Context) {
	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogAdminAction(c.ClientIP(), "update-settings")
	}

	if err := services.Catalog().ConfigureSettings(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "settings applied"})
}

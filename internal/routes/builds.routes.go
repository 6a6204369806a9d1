package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
)

func RegisterBuildRoutes(r *gin.Engine) {
	tokenLimiter := middleware.NewAdminRateLimiter()

	r.POST("/api/sessions/token", middleware.AdminRateLimitMiddleware(tokenLimiter), controllers.GetSessionToken)
	r.GET("/ws", controllers.HandleBuildSession)
}

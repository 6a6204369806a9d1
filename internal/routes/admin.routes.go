package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
)

func RegisterAdminRoutes(r *gin.Engine) {
	adminLimiter := middleware.NewAdminRateLimiter()

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminRateLimitMiddleware(adminLimiter))
	{
		admin.POST("/token", controllers.GetAdminToken)

		protected := admin.Group("")
		protected.Use(controllers.AdminAuthMiddleware())
		{
			protected.POST("/reindex", controllers.Reindex)
			protected.POST("/clear", controllers.ClearIndex)
			protected.POST("/settings", controllers.UpdateSettings)
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
)

func RegisterCompatibilityRoutes(r *gin.Engine) {
	compatibility := r.Group("/api/compatibility")
	{
		compatibility.POST("/check-build", controllers.CheckBuild)
		compatibility.GET("/check-pair/:id1/:id2", controllers.CheckPair)
	}
}

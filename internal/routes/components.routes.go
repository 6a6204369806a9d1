package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
)

func RegisterComponentRoutes(r *gin.Engine) {
	components := r.Group("/api/components")
	{
		components.GET("/search", controllers.SearchComponents)
		components.GET("/type/:type", controllers.GetComponentsByType)
		components.GET("/facets", controllers.GetFacets)
		components.GET("/:id", controllers.GetComponentDetails)
	}
}

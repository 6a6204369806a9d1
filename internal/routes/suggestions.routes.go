package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
)

func RegisterSuggestionRoutes(r *gin.Engine) {
	suggestions := r.Group("/api/suggestions")
	{
		suggestions.GET("/cpus", controllers.SuggestCPUs)
		suggestions.GET("/compatible-gpu/:cpu_id", controllers.SuggestGPUs)
		suggestions.GET("/compatible-motherboard/:cpu_id", controllers.SuggestMotherboards)
		suggestions.GET("/ram/:motherboard_id", controllers.SuggestRAM)
		suggestions.GET("/psu", controllers.SuggestPSUs)
		suggestions.GET("/storage", controllers.SuggestStorage)

		// Plural aliases kept for earlier clients.
		suggestions.GET("/gpus/:cpu_id", controllers.SuggestGPUs)
		suggestions.GET("/motherboards/:cpu_id", controllers.SuggestMotherboards)
		suggestions.GET("/psus", controllers.SuggestPSUs)
	}
}

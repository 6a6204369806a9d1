package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

func mustComponent(c *gin.Context, id string, want models.ComponentType) *models.Component {
	component, err := services.GetComponentCached(id)
	if err != nil {
		if errors.Is(err, services.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "component not found: " + id})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		}
		return nil
	}
	if component.Type != want {
		c.JSON(http.StatusBadRequest, gin.H{"error": "component " + id + " is a " + string(component.Type) + ", expected " + string(want)})
		return nil
	}
	return component
}

func suggestionResponse(c *gin.Context, suggestions []models.Component, err error, extra gin.H) {
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		return
	}
	if suggestions == nil {
		suggestions = []models.Component{}
	}

	resp := gin.H{
		"count":       len(suggestions),
		"suggestions": suggestions,
	}
	for k, v := range extra {
		resp[k] = v
	}
	c.JSON(http.StatusOK, resp)
}

// SuggestCPUs lists CPUs under an optional budget, best tier first.
func SuggestCPUs(c *gin.Context) {
	budget := floatQuery(c, "budget")
	suggestions, err := services.SuggestCPUs(budget, intQuery(c, "limit", 10))
	suggestionResponse(c, suggestions, err, gin.H{"budget": budget})
}

// SuggestGPUs lists GPUs whose performance tier balances the given CPU.
func SuggestGPUs(c *gin.Context) {
	cpu := mustComponent(c, c.Param("cpu_id"), models.TypeCPU)
	if cpu == nil {
		return
	}

	budget := floatQuery(c, "budget")
	suggestions, err := services.SuggestCompatibleGPUs(cpu, budget, intQuery(c, "limit", 5))
	suggestionResponse(c, suggestions, err, gin.H{
		"for_cpu": gin.H{"id": cpu.ID, "name": cpu.Name, "tier": cpu.PerformanceTier},
		"budget":  budget,
	})
}

// SuggestMotherboards lists boards matching the given CPU's socket.
func SuggestMotherboards(c *gin.Context) {
	cpu := mustComponent(c, c.Param("cpu_id"), models.TypeCPU)
	if cpu == nil {
		return
	}

	suggestions, err := services.SuggestCompatibleMotherboards(cpu, intQuery(c, "limit", 5))
	socket, _ := cpu.Socket()
	suggestionResponse(c, suggestions, err, gin.H{
		"for_cpu": gin.H{"id": cpu.ID, "name": cpu.Name, "socket": socket},
	})
}

// SuggestRAM lists kits matching the given motherboard's DDR generation.
func SuggestRAM(c *gin.Context) {
	mb := mustComponent(c, c.Param("motherboard_id"), models.TypeMotherboard)
	if mb == nil {
		return
	}

	budget := floatQuery(c, "budget")
	suggestions, err := services.SuggestRAM(mb, budget, intQuery(c, "limit", 5))
	memoryType, _ := mb.MemoryType()
	suggestionResponse(c, suggestions, err, gin.H{
		"for_motherboard": gin.H{"id": mb.ID, "name": mb.Name, "memory_type": memoryType},
		"budget":          budget,
	})
}

// SuggestPSUs lists supplies sized for the system draw. The draw is either
// given directly via total_power, or derived from cpu_id/gpu_id lookups.
func SuggestPSUs(c *gin.Context) {
	totalPower := intQuery(c, "total_power", 0)

	if totalPower == 0 {
		build := models.NewBuild()
		if id := c.Query("cpu_id"); id != "" {
			cpu := mustComponent(c, id, models.TypeCPU)
			if cpu == nil {
				return
			}
			build.Set(models.SlotCPU, cpu)
		}
		if id := c.Query("gpu_id"); id != "" {
			gpu := mustComponent(c, id, models.TypeGPU)
			if gpu == nil {
				return
			}
			build.Set(models.SlotGPU, gpu)
		}
		totalPower = services.TotalPower(build)
	}

	suggestions, err := services.SuggestPSUs(totalPower, intQuery(c, "limit", 5))
	suggestionResponse(c, suggestions, err, gin.H{
		"total_power":     totalPower,
		"recommended_psu": services.RecommendedPSUWattage(totalPower),
	})
}

// SuggestStorage lists drives under budget, solid state first.
func SuggestStorage(c *gin.Context) {
	budget := floatQuery(c, "budget")
	suggestions, err := services.SuggestStorage(budget, intQuery(c, "limit", 5))
	suggestionResponse(c, suggestions, err, gin.H{"budget": budget})
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

// resolveBuild turns a wire request into a Build. Embedded component records
// win over IDs for the same slot; IDs are resolved through the catalog.
func resolveBuild(req *models.BuildRequest) (models.Build, error) {
	build := models.NewBuild()

	for slot, id := range req.SlotIDs() {
		component, err := services.GetComponentCached(id)
		if err != nil {
			if errors.Is(err, services.ErrComponentNotFound) {
				return nil, fmt.Errorf("%w: %s", services.ErrComponentNotFound, id)
			}
			return nil, err
		}
		if !models.SlotAccepts(slot, component.Type) {
			return nil, fmt.Errorf("component %s is a %s, not valid for slot %q", id, component.Type, slot)
		}
		build.Set(slot, component)
	}

	for name, component := range req.Components {
		slot := models.SlotName(name)
		if !models.ValidSlot(slot) {
			return nil, fmt.Errorf("unknown slot %q", name)
		}
		if component == nil {
			continue
		}
		if component.Type != "" && !models.SlotAccepts(slot, component.Type) {
			return nil, fmt.Errorf("component %q is a %s, not valid for slot %q", component.Name, component.Type, name)
		}
		build.Set(slot, component)
	}

	return build, nil
}

// CheckBuild evaluates a whole build for compatibility and power budget.
func CheckBuild(c *gin.Context) {
	var req models.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	build, err := resolveBuild(&req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrComponentNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	result := services.EvaluateBuild(build)

	selected := gin.H{}
	for _, slot := range models.Slots {
		if component := build.Component(slot); component != nil {
			selected[string(slot)] = gin.H{
				"id":   component.ID,
				"name": component.Name,
				"type": component.Type,
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"compatible":      result.Compatible,
		"checks":          result.Checks,
		"warnings":        result.Warnings,
		"total_power":     result.TotalPower,
		"recommended_psu": result.RecommendedPSU,
		"build":           selected,
	})
}

// CheckPair runs the single applicable check between two components.
func CheckPair(c *gin.Context) {
	first, err := services.GetComponentCached(c.Param("id1"))
	if err != nil {
		pairLookupError(c, c.Param("id1"), err)
		return
	}
	second, err := services.GetComponentCached(c.Param("id2"))
	if err != nil {
		pairLookupError(c, c.Param("id2"), err)
		return
	}

	finding, evaluated := pairFinding(first, second)

	resp := gin.H{
		"component_1": gin.H{"id": first.ID, "name": first.Name, "type": first.Type},
		"component_2": gin.H{"id": second.ID, "name": second.Name, "type": second.Type},
	}
	if !evaluated {
		resp["checked"] = false
		resp["message"] = fmt.Sprintf("No compatibility data for %s and %s", first.Type, second.Type)
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["checked"] = true
	resp["compatible"] = finding.Compatible
	resp["result"] = finding
	c.JSON(http.StatusOK, resp)
}

func pairLookupError(c *gin.Context, id string, err error) {
	if errors.Is(err, services.ErrComponentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found: " + id})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
}

// pairFinding dispatches on the type pair, in either order. The second return
// is false when the pair has no defined check or the needed fields are absent.
func pairFinding(a, b *models.Component) (models.Finding, bool) {
	byType := map[models.ComponentType]*models.Component{a.Type: a, b.Type: b}
	cpu := byType[models.TypeCPU]
	mb := byType[models.TypeMotherboard]
	ram := byType[models.TypeRAM]
	gpu := byType[models.TypeGPU]
	psu := byType[models.TypePSU]

	switch {
	case cpu != nil && mb != nil:
		return services.CheckCPUMotherboard(cpu, mb)
	case ram != nil && mb != nil:
		return services.CheckRAMMotherboard(ram, mb)
	case gpu != nil && mb != nil:
		return services.CheckGPUMotherboard(gpu, mb), true
	case psu != nil && (cpu != nil || gpu != nil):
		build := models.NewBuild()
		if cpu != nil {
			build.Set(models.SlotCPU, cpu)
		}
		if gpu != nil {
			build.Set(models.SlotGPU, gpu)
		}
		build.Set(models.SlotPSU, psu)
		result := services.EvaluateBuild(build)
		for _, f := range result.Checks {
			if f.Check == services.CheckPSUWattage {
				return f, true
			}
		}
		return models.Finding{}, false
	}
	return models.Finding{}, false
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
	"github.com/Srijan-XI/pcbuild-assist/internal/models"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

func floatQuery(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

func filtersFromQuery(c *gin.Context) models.SearchFilters {
	return models.SearchFilters{
		Type:            c.Query("component_type"),
		Brand:           c.Query("brand"),
		Socket:          c.Query("socket"),
		MemoryType:      c.Query("memory_type"),
		PerformanceTier: c.Query("performance_tier"),
		MinPrice:        floatQuery(c, "min_price"),
		MaxPrice:        floatQuery(c, "max_price"),
	}
}

// SearchComponents runs a paged free-text search over the catalog.
func SearchComponents(c *gin.Context) {
	query := models.SearchQuery{
		Query:   c.Query("q"),
		Filters: filtersFromQuery(c),
		Limit:   intQuery(c, "limit", 20),
		Offset:  intQuery(c, "offset", 0),
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	res, err := services.SearchCached(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":              query.Query,
		"count":              res.NbHits,
		"page":               res.Page,
		"totalPages":         res.NbPages,
		"results":            res.Hits,
		"filters_applied":    query.Filters,
		"processing_time_ms": res.ProcessingTimeMS,
	})
}

// GetComponentsByType lists components of a single type, with optional
// filters from the query string.
func GetComponentsByType(c *gin.Context) {
	componentType := c.Param("type")
	filters := filtersFromQuery(c)
	filters.Type = ""

	limit := intQuery(c, "limit", 50)
	if limit > 100 {
		limit = 100
	}

	hits, err := services.SearchByTypeCached(componentType, filters, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"component_type": componentType,
		"count":          len(hits),
		"results":        hits,
	})
}

// GetFacets returns the filter values (and counts) available to the UI,
// optionally scoped to one component type.
func GetFacets(c *gin.Context) {
	facets, err := services.FacetsCached(c.Query("component_type"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facets": facets})
}

// GetComponentDetails resolves one component by its catalog ID.
func GetComponentDetails(c *gin.Context) {
	id := c.Param("id")
	if !middleware.NewInputValidator().ValidateComponentID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component id"})
		return
	}

	component, err := services.GetComponentCached(id)
	if err != nil {
		if errors.Is(err, services.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "component not found: " + id})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "search backend unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, component)
}

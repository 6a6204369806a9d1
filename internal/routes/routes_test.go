package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

func seedRouteCatalog(t *testing.T) {
	t.Helper()
	catalog := services.NewMemoryCatalog()
	err := catalog.SaveComponents([]models.Component{
		{
			ID: "cpu-1", Type: models.TypeCPU, Name: "AMD Ryzen 5 7600X",
			Price: 229, PerformanceTier: "mid-range",
			Specs: models.Specs{"socket": "AM5", "tdp": 105},
		},
		{
			ID: "mb-1", Type: models.TypeMotherboard, Name: "ASUS B650 Board",
			Price: 199, PerformanceTier: "mid-range",
			Specs: models.Specs{"socket": "AM5", "memory_type": "DDR5"},
		},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	services.SetCatalog(catalog)
	t.Cleanup(func() { services.SetCatalog(nil) })
}

func TestSuggestionRoutePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	seedRouteCatalog(t)

	r := gin.New()
	RegisterSuggestionRoutes(r)

	paths := []string{
		"/api/suggestions/cpus",
		"/api/suggestions/compatible-gpu/cpu-1",
		"/api/suggestions/compatible-motherboard/cpu-1",
		"/api/suggestions/ram/mb-1",
		"/api/suggestions/psu",
		"/api/suggestions/storage",
		"/api/suggestions/gpus/cpu-1",
		"/api/suggestions/motherboards/cpu-1",
		"/api/suggestions/psus",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, body = %s", path, w.Code, w.Body.String())
		}
	}
}

func TestBuildRoutePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	seedRouteCatalog(t)
	services.InitAuthService("routes-test-secret-0123456789abcdef", time.Hour)

	r := gin.New()
	RegisterBuildRoutes(r)

	// Token issuance is registered and open.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions/token", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/sessions/token = %d, body = %s", w.Code, w.Body.String())
	}

	// The socket endpoint rejects unauthenticated requests outright.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("GET /ws without token = %d, want 401", w.Code)
	}
}

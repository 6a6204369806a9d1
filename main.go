package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Srijan-XI/pcbuild-assist/internal/config"
	"github.com/Srijan-XI/pcbuild-assist/internal/controllers"
	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
	"github.com/Srijan-XI/pcbuild-assist/internal/routes"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

func main() {
	reindex := flag.Bool("reindex", false, "reload the dataset into the catalog and exit")
	flag.Parse()

	cfg := config.Load()

	services.InitAuthService(cfg.AdminSecret, cfg.AdminTokenExpiry)
	services.SetCacheTTL(cfg.CacheTTL)
	controllers.AdminSecret = cfg.AdminSecret
	controllers.DatasetDir = cfg.DatasetDir

	// Prefer the hosted index; fall back to an in-memory catalog seeded from
	// the CSV dataset when no credentials are configured.
	if catalog, err := services.NewAlgoliaCatalog(cfg.AlgoliaAppID, cfg.AlgoliaSearchKey, cfg.AlgoliaAdminKey, cfg.AlgoliaIndex); err == nil {
		services.SetCatalog(catalog)
	} else {
		log.Printf("[CATALOG] Hosted index unavailable (%v), using in-memory catalog", err)
		memory := services.NewMemoryCatalog()
		components, loadErr := services.LoadDataset(cfg.DatasetDir)
		if loadErr != nil {
			log.Fatalf("[SEED] Failed to load dataset: %v", loadErr)
		}
		if err := memory.SaveComponents(components); err != nil {
			log.Fatalf("[SEED] Failed to seed in-memory catalog: %v", err)
		}
		services.SetCatalog(memory)
	}

	if *reindex {
		count, err := services.ReindexCatalog(cfg.DatasetDir)
		if err != nil {
			log.Fatalf("[SEED] Reindex failed: %v", err)
		}
		log.Printf("[SEED] Reindex complete: %d components", count)
		return
	}

	services.InitSessionHub()
	middleware.NewSecurityLogger()

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware([]string{cfg.FrontendURL}))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.GET("/api/status", controllers.GetStatus)

	routes.RegisterComponentRoutes(r)
	routes.RegisterCompatibilityRoutes(r)
	routes.RegisterSuggestionRoutes(r)
	routes.RegisterAdminRoutes(r)
	routes.RegisterBuildRoutes(r)

	log.Printf("[API] Listening on %s (catalog: %s)", cfg.HTTPAddr, services.CatalogName())
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("[API] Server error: %v", err)
	}
}

package services

import (
	"errors"
	"log"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// ErrComponentNotFound is returned by GetByID when no catalog entry matches.
var ErrComponentNotFound = errors.New("component not found")

// ComponentCatalog is the capability the rest of the service depends on for
// component search and index administration. The backing store (hosted search
// index or in-memory) is swappable without touching evaluation logic.
type ComponentCatalog interface {
	Name() string
	Search(q models.SearchQuery) (*models.SearchResult, error)
	SearchByType(componentType string, filters models.SearchFilters, limit int) ([]models.Component, error)
	GetByID(id string) (*models.Component, error)
	Facets(componentType string) (models.FacetCounts, error)

	// Admin operations.
	SaveComponents(components []models.Component) error
	ClearIndex() error
	ConfigureSettings() error
}

var catalog ComponentCatalog

// SetCatalog installs the catalog backend. Cached results from a previous
// backend are dropped.
func SetCatalog(c ComponentCatalog) {
	catalog = c
	ClearCatalogCaches()
	if c != nil {
		log.Printf("[CATALOG] Backend set: %s", c.Name())
	}
}

// Catalog returns the installed catalog backend, or nil before SetCatalog.
func Catalog() ComponentCatalog {
	return catalog
}

// CatalogName returns the installed backend's name for status reporting.
func CatalogName() string {
	if catalog == nil {
		return "none"
	}
	return catalog.Name()
}

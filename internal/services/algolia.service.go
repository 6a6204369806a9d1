package services

import (
	"fmt"
	"log"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// AlgoliaCatalog is the hosted-search implementation of ComponentCatalog.
// Reads go through the search-only key; index administration uses the admin
// key, mirroring the two-client split of the hosted service.
type AlgoliaCatalog struct {
	searchIndex *search.Index
	adminIndex  *search.Index
	indexName   string
}

// NewAlgoliaCatalog builds a catalog over the hosted index. All three
// credentials are required; callers fall back to the in-memory catalog when
// they are absent.
func NewAlgoliaCatalog(appID, searchKey, adminKey, indexName string) (*AlgoliaCatalog, error) {
	if appID == "" || searchKey == "" || adminKey == "" {
		return nil, fmt.Errorf("missing algolia credentials")
	}
	if indexName == "" {
		indexName = "pc_components"
	}

	return &AlgoliaCatalog{
		searchIndex: search.NewClient(appID, searchKey).InitIndex(indexName),
		adminIndex:  search.NewClient(appID, adminKey).InitIndex(indexName),
		indexName:   indexName,
	}, nil
}

// Name identifies the backend for status reporting.
func (a *AlgoliaCatalog) Name() string {
	return "algolia:" + a.indexName
}

func facetFilters(f models.SearchFilters) []interface{} {
	var filters []interface{}
	for key, value := range map[string]string{
		"type":             f.Type,
		"brand":            f.Brand,
		"socket":           f.Socket,
		"memory_type":      f.MemoryType,
		"performance_tier": f.PerformanceTier,
	} {
		if value != "" {
			filters = append(filters, key+":"+value)
		}
	}
	return filters
}

func numericFilters(f models.SearchFilters) []interface{} {
	var filters []interface{}
	if f.MinPrice > 0 {
		filters = append(filters, fmt.Sprintf("price>=%g", f.MinPrice))
	}
	if f.MaxPrice > 0 {
		filters = append(filters, fmt.Sprintf("price<=%g", f.MaxPrice))
	}
	return filters
}

// Search forwards a paged free-text query to the hosted index.
func (a *AlgoliaCatalog) Search(q models.SearchQuery) (*models.SearchResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	opts := []interface{}{
		opt.HitsPerPage(limit),
		opt.Page(q.Offset / limit),
		opt.AttributesToHighlight("name", "brand"),
	}
	if ff := facetFilters(q.Filters); len(ff) > 0 {
		opts = append(opts, opt.FacetFilterAnd(ff...))
	}
	if nf := numericFilters(q.Filters); len(nf) > 0 {
		opts = append(opts, opt.NumericFilterAnd(nf...))
	}

	res, err := a.searchIndex.Search(q.Query, opts...)
	if err != nil {
		return nil, fmt.Errorf("algolia search: %w", err)
	}

	var hits []models.Component
	if err := res.UnmarshalHits(&hits); err != nil {
		return nil, fmt.Errorf("algolia search: decode hits: %w", err)
	}

	return &models.SearchResult{
		Hits:             hits,
		NbHits:           res.NbHits,
		Page:             res.Page,
		NbPages:          res.NbPages,
		HitsPerPage:      res.HitsPerPage,
		ProcessingTimeMS: res.ProcessingTimeMS,
	}, nil
}

// SearchByType runs an empty query restricted to one component type.
func (a *AlgoliaCatalog) SearchByType(componentType string, filters models.SearchFilters, limit int) ([]models.Component, error) {
	filters.Type = componentType
	if limit <= 0 {
		limit = 50
	}

	res, err := a.Search(models.SearchQuery{Filters: filters, Limit: limit})
	if err != nil {
		return nil, err
	}
	return res.Hits, nil
}

// GetByID resolves a single component through an objectID filter, which only
// needs the search key.
func (a *AlgoliaCatalog) GetByID(id string) (*models.Component, error) {
	res, err := a.searchIndex.Search("", opt.Filters("objectID:"+id), opt.HitsPerPage(1))
	if err != nil {
		return nil, fmt.Errorf("algolia get %q: %w", id, err)
	}

	var hits []models.Component
	if err := res.UnmarshalHits(&hits); err != nil {
		return nil, fmt.Errorf("algolia get %q: decode: %w", id, err)
	}
	if len(hits) == 0 {
		return nil, ErrComponentNotFound
	}
	return &hits[0], nil
}

// Facets fetches available filter values for UI dropdowns.
func (a *AlgoliaCatalog) Facets(componentType string) (models.FacetCounts, error) {
	opts := []interface{}{
		opt.Facets("brand", "type", "performance_tier", "socket", "memory_type", "form_factor"),
		opt.HitsPerPage(0),
	}
	if componentType != "" {
		opts = append(opts, opt.FacetFilterAnd("type:"+componentType))
	}

	res, err := a.searchIndex.Search("", opts...)
	if err != nil {
		return nil, fmt.Errorf("algolia facets: %w", err)
	}
	return models.FacetCounts(res.Facets), nil
}

// SaveComponents indexes components, ensuring every record carries objectID.
func (a *AlgoliaCatalog) SaveComponents(components []models.Component) error {
	for i := range components {
		if components[i].ObjectID == "" {
			components[i].ObjectID = components[i].ID
		}
	}

	res, err := a.adminIndex.SaveObjects(components)
	if err != nil {
		return fmt.Errorf("algolia save objects: %w", err)
	}
	if err := res.Wait(); err != nil {
		return fmt.Errorf("algolia save objects: wait: %w", err)
	}
	log.Printf("[CATALOG] Indexed %d components to %s", len(components), a.indexName)
	return nil
}

// ClearIndex removes every object from the index.
func (a *AlgoliaCatalog) ClearIndex() error {
	res, err := a.adminIndex.ClearObjects()
	if err != nil {
		return fmt.Errorf("algolia clear index: %w", err)
	}
	return res.Wait()
}

// ConfigureSettings applies the ranking and faceting configuration the
// search UI depends on (searchable attributes, facets, typo tolerance).
func (a *AlgoliaCatalog) ConfigureSettings() error {
	_, err := a.adminIndex.SetSettings(search.Settings{
		SearchableAttributes: opt.SearchableAttributes(
			"name",
			"brand",
			"type",
			"unordered(specs.socket)",
			"unordered(specs.memory_type)",
		),
		AttributesForFaceting: opt.AttributesForFaceting(
			"type",
			"brand",
			"searchable(socket)",
			"searchable(memory_type)",
			"form_factor",
			"performance_tier",
		),
		CustomRanking: opt.CustomRanking(
			"desc(performance_tier)",
			"desc(release_year)",
			"asc(price)",
		),
		AttributesToHighlight:     opt.AttributesToHighlight("name", "brand"),
		AttributesToSnippet:       opt.AttributesToSnippet("name:20"),
		HitsPerPage:               opt.HitsPerPage(20),
		MaxValuesPerFacet:         opt.MaxValuesPerFacet(100),
		TypoTolerance:             opt.TypoTolerance(true),
		MinWordSizefor1Typo:       opt.MinWordSizefor1Typo(4),
		MinWordSizefor2Typos:      opt.MinWordSizefor2Typos(8),
		AllowTyposOnNumericTokens: opt.AllowTyposOnNumericTokens(false),
	})
	if err != nil {
		return fmt.Errorf("algolia set settings: %w", err)
	}
	return nil
}

package models

// SearchFilters narrows a catalog query. Zero values mean "no filter".
type SearchFilters struct {
	Type            string
	Brand           string
	Socket          string
	MemoryType      string
	PerformanceTier string
	MinPrice        float64
	MaxPrice        float64
}

// SearchQuery is one parameterized free-text query against the catalog.
type SearchQuery struct {
	Query   string
	Filters SearchFilters
	Limit   int
	Offset  int
}

// SearchResult is a ranked page of catalog hits.
type SearchResult struct {
	Hits             []Component `json:"hits"`
	NbHits           int         `json:"nbHits"`
	Page             int         `json:"page"`
	NbPages          int         `json:"nbPages"`
	HitsPerPage      int         `json:"hitsPerPage"`
	ProcessingTimeMS int         `json:"processingTimeMS"`
}

// FacetCounts maps facet name to value counts, e.g. brand -> {AMD: 12}.
type FacetCounts map[string]map[string]int

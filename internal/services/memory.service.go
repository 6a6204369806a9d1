package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// MemoryCatalog is an in-process ComponentCatalog. It backs tests and
// credential-less development runs; ranking approximates the hosted index's
// custom ranking (tier desc, release year desc, price asc) without its
// typo tolerance.
type MemoryCatalog struct {
	mu         sync.RWMutex
	components map[string]models.Component
}

// NewMemoryCatalog returns an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{components: make(map[string]models.Component)}
}

// Name identifies the backend for status reporting.
func (m *MemoryCatalog) Name() string {
	return "memory"
}

var tierRank = map[string]int{"high-end": 0, "mid-range": 1, "budget": 2}

func rankOf(tier string) int {
	if r, ok := tierRank[tier]; ok {
		return r
	}
	return 3
}

func matchesQuery(c models.Component, query string) bool {
	if query == "" {
		return true
	}
	haystack := strings.ToLower(c.Name + " " + c.Brand + " " + string(c.Type))
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

func matchesFilters(c models.Component, f models.SearchFilters) bool {
	if f.Type != "" && !strings.EqualFold(string(c.Type), f.Type) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(c.Brand, f.Brand) {
		return false
	}
	if f.PerformanceTier != "" && c.PerformanceTier != f.PerformanceTier {
		return false
	}
	if f.Socket != "" {
		socket, ok := c.Socket()
		if !ok || socket != f.Socket {
			return false
		}
	}
	if f.MemoryType != "" {
		mt, ok := c.MemoryType()
		if !ok || mt != models.NormalizeDDR(f.MemoryType) {
			return false
		}
	}
	if f.MinPrice > 0 && c.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && c.Price > f.MaxPrice {
		return false
	}
	return true
}

func (m *MemoryCatalog) collect(query string, f models.SearchFilters) []models.Component {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hits []models.Component
	for _, c := range m.components {
		if matchesQuery(c, query) && matchesFilters(c, f) {
			hits = append(hits, c)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		ri, rj := rankOf(hits[i].PerformanceTier), rankOf(hits[j].PerformanceTier)
		if ri != rj {
			return ri < rj
		}
		if hits[i].ReleaseYear != hits[j].ReleaseYear {
			return hits[i].ReleaseYear > hits[j].ReleaseYear
		}
		if hits[i].Price != hits[j].Price {
			return hits[i].Price < hits[j].Price
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// Search runs a paged free-text query over the stored components.
func (m *MemoryCatalog) Search(q models.SearchQuery) (*models.SearchResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	hits := m.collect(q.Query, q.Filters)
	total := len(hits)

	start := q.Offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	nbPages := (total + limit - 1) / limit
	return &models.SearchResult{
		Hits:        hits[start:end],
		NbHits:      total,
		Page:        q.Offset / limit,
		NbPages:     nbPages,
		HitsPerPage: limit,
	}, nil
}

// SearchByType returns components of one type matching the filters.
func (m *MemoryCatalog) SearchByType(componentType string, filters models.SearchFilters, limit int) ([]models.Component, error) {
	filters.Type = componentType
	if limit <= 0 {
		limit = 50
	}
	hits := m.collect("", filters)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// GetByID looks up a single component.
func (m *MemoryCatalog) GetByID(id string) (*models.Component, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.components[id]
	if !ok {
		return nil, ErrComponentNotFound
	}
	return &c, nil
}

// Facets counts brand/type/tier/socket/memory-type values, optionally
// restricted to one component type.
func (m *MemoryCatalog) Facets(componentType string) (models.FacetCounts, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	facets := models.FacetCounts{}
	add := func(facet, value string) {
		if value == "" {
			return
		}
		if facets[facet] == nil {
			facets[facet] = map[string]int{}
		}
		facets[facet][value]++
	}

	for _, c := range m.components {
		if componentType != "" && !strings.EqualFold(string(c.Type), componentType) {
			continue
		}
		add("type", string(c.Type))
		add("brand", c.Brand)
		add("performance_tier", c.PerformanceTier)
		if socket, ok := c.Socket(); ok {
			add("socket", socket)
		}
		if mt, ok := c.MemoryType(); ok {
			add("memory_type", mt)
		}
		if ff, ok := c.FormFactor(); ok {
			add("form_factor", ff)
		}
	}
	return facets, nil
}

// SaveComponents upserts components, keyed by ID.
func (m *MemoryCatalog) SaveComponents(components []models.Component) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range components {
		if c.ID == "" {
			c.ID = c.ObjectID
		}
		if c.ObjectID == "" {
			c.ObjectID = c.ID
		}
		m.components[c.ID] = c
	}
	return nil
}

// ClearIndex drops every stored component.
func (m *MemoryCatalog) ClearIndex() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = make(map[string]models.Component)
	return nil
}

// ConfigureSettings is a no-op; ranking is fixed in collect.
func (m *MemoryCatalog) ConfigureSettings() error {
	return nil
}

// Len returns the number of stored components.
func (m *MemoryCatalog) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.components)
}

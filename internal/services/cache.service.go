package services

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// catalogCache keeps TTL-bounded copies of catalog reads so repeated queries
// don't hit the hosted index. Components and facets change rarely, so they
// get longer TTLs than search pages.
type catalogCache struct {
	mu         sync.RWMutex
	search     map[string]cacheEntry
	components map[string]cacheEntry
	facets     map[string]cacheEntry

	searchTTL    time.Duration
	componentTTL time.Duration
	facetTTL     time.Duration
	maxEntries   int
}

type cacheEntry struct {
	value   interface{}
	expires time.Time
}

var cache = &catalogCache{
	search:       map[string]cacheEntry{},
	components:   map[string]cacheEntry{},
	facets:       map[string]cacheEntry{},
	searchTTL:    5 * time.Minute,
	componentTTL: 10 * time.Minute,
	facetTTL:     30 * time.Minute,
	maxEntries:   1000,
}

// SetCacheTTL scales all cache TTLs from a base search TTL.
func SetCacheTTL(base time.Duration) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.searchTTL = base
	cache.componentTTL = 2 * base
	cache.facetTTL = 6 * base
}

// ClearCatalogCaches drops every cached catalog read.
func ClearCatalogCaches() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.search = map[string]cacheEntry{}
	cache.components = map[string]cacheEntry{}
	cache.facets = map[string]cacheEntry{}
}

// cacheKey hashes arbitrary arguments into a stable key.
func cacheKey(parts ...interface{}) string {
	raw, _ := json.Marshal(parts)
	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:])
}

func (cc *catalogCache) get(store map[string]cacheEntry, key string) (interface{}, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	entry, ok := store[key]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (cc *catalogCache) set(store map[string]cacheEntry, key string, value interface{}, ttl time.Duration) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	// Drop expired entries before enforcing the size cap.
	if len(store) >= cc.maxEntries {
		now := time.Now()
		for k, e := range store {
			if now.After(e.expires) {
				delete(store, k)
			}
		}
		for k := range store {
			if len(store) < cc.maxEntries {
				break
			}
			delete(store, k)
		}
	}

	store[key] = cacheEntry{value: value, expires: time.Now().Add(ttl)}
}

// SearchCached runs a catalog search, serving repeats from cache.
func SearchCached(q models.SearchQuery) (*models.SearchResult, error) {
	key := cacheKey("search", q)
	if v, ok := cache.get(cache.search, key); ok {
		return v.(*models.SearchResult), nil
	}

	res, err := Catalog().Search(q)
	if err != nil {
		return nil, err
	}
	cache.set(cache.search, key, res, cache.searchTTL)
	return res, nil
}

// SearchByTypeCached runs a typed catalog query, serving repeats from cache.
func SearchByTypeCached(componentType string, filters models.SearchFilters, limit int) ([]models.Component, error) {
	key := cacheKey("by-type", componentType, filters, limit)
	if v, ok := cache.get(cache.search, key); ok {
		return v.([]models.Component), nil
	}

	hits, err := Catalog().SearchByType(componentType, filters, limit)
	if err != nil {
		return nil, err
	}
	cache.set(cache.search, key, hits, cache.searchTTL)
	return hits, nil
}

// GetComponentCached resolves one component by ID, serving repeats from
// cache. Misses (ErrComponentNotFound) are not cached.
func GetComponentCached(id string) (*models.Component, error) {
	if v, ok := cache.get(cache.components, id); ok {
		return v.(*models.Component), nil
	}

	c, err := Catalog().GetByID(id)
	if err != nil {
		return nil, err
	}
	cache.set(cache.components, id, c, cache.componentTTL)
	return c, nil
}

// FacetsCached fetches facet values, serving repeats from cache.
func FacetsCached(componentType string) (models.FacetCounts, error) {
	key := cacheKey("facets", componentType)
	if v, ok := cache.get(cache.facets, key); ok {
		return v.(models.FacetCounts), nil
	}

	facets, err := Catalog().Facets(componentType)
	if err != nil {
		return nil, err
	}
	cache.set(cache.facets, key, facets, cache.facetTTL)
	return facets, nil
}

package services

import (
	"testing"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// countingCatalog wraps MemoryCatalog to count backend hits.
type countingCatalog struct {
	*MemoryCatalog
	searches int
	lookups  int
}

func (c *countingCatalog) Search(q models.SearchQuery) (*models.SearchResult, error) {
	c.searches++
	return c.MemoryCatalog.Search(q)
}

func (c *countingCatalog) GetByID(id string) (*models.Component, error) {
	c.lookups++
	return c.MemoryCatalog.GetByID(id)
}

func TestSearchCachedServesRepeats(t *testing.T) {
	backend := &countingCatalog{MemoryCatalog: NewMemoryCatalog()}
	if err := backend.SaveComponents([]models.Component{
		component("cpu-1", models.TypeCPU, "AMD Ryzen 5 7600X", 229, "mid-range", models.Specs{"socket": "AM5"}),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	SetCatalog(backend)
	t.Cleanup(func() { SetCatalog(nil) })

	q := models.SearchQuery{Query: "ryzen", Limit: 10}
	for i := 0; i < 3; i++ {
		res, err := SearchCached(q)
		if err != nil {
			t.Fatalf("SearchCached: %v", err)
		}
		if res.NbHits != 1 {
			t.Fatalf("expected 1 hit, got %d", res.NbHits)
		}
	}

	if backend.searches != 1 {
		t.Fatalf("expected 1 backend search, got %d", backend.searches)
	}
}

func TestGetComponentCachedDoesNotCacheMisses(t *testing.T) {
	backend := &countingCatalog{MemoryCatalog: NewMemoryCatalog()}
	SetCatalog(backend)
	t.Cleanup(func() { SetCatalog(nil) })

	for i := 0; i < 2; i++ {
		if _, err := GetComponentCached("cpu-missing"); err != ErrComponentNotFound {
			t.Fatalf("expected ErrComponentNotFound, got %v", err)
		}
	}
	if backend.lookups != 2 {
		t.Fatalf("misses must not be cached, got %d lookups", backend.lookups)
	}

	// Once the component exists it should be found and then cached.
	if err := backend.SaveComponents([]models.Component{
		component("cpu-missing", models.TypeCPU, "Late Arrival", 99, "budget", nil),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := GetComponentCached("cpu-missing"); err != nil {
			t.Fatalf("GetComponentCached: %v", err)
		}
	}
	if backend.lookups != 3 {
		t.Fatalf("expected exactly one more lookup after seeding, got %d", backend.lookups)
	}
}

func TestSetCatalogClearsCaches(t *testing.T) {
	first := &countingCatalog{MemoryCatalog: NewMemoryCatalog()}
	if err := first.SaveComponents([]models.Component{
		component("gpu-1", models.TypeGPU, "Old GPU", 300, "mid-range", nil),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	SetCatalog(first)
	t.Cleanup(func() { SetCatalog(nil) })

	if _, err := SearchCached(models.SearchQuery{Query: "gpu"}); err != nil {
		t.Fatalf("SearchCached: %v", err)
	}

	second := &countingCatalog{MemoryCatalog: NewMemoryCatalog()}
	SetCatalog(second)

	res, err := SearchCached(models.SearchQuery{Query: "gpu"})
	if err != nil {
		t.Fatalf("SearchCached after swap: %v", err)
	}
	if res.NbHits != 0 {
		t.Fatalf("stale results served after backend swap: %+v", res)
	}
	if second.searches != 1 {
		t.Fatalf("expected the swapped backend to be queried, got %d", second.searches)
	}
}

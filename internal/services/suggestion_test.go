package services

import (
	"testing"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

func seedCatalog(t *testing.T, components []models.Component) *MemoryCatalog {
	t.Helper()
	catalog := NewMemoryCatalog()
	if err := catalog.SaveComponents(components); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	SetCatalog(catalog)
	t.Cleanup(func() { SetCatalog(nil) })
	return catalog
}

func component(id string, t models.ComponentType, name string, price float64, tier string, specs models.Specs) models.Component {
	return models.Component{
		ID:              id,
		Type:            t,
		Name:            name,
		Price:           price,
		PerformanceTier: tier,
		Specs:           specs,
	}
}

func TestSuggestCompatibleMotherboards(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("mb-1", models.TypeMotherboard, "Board AM5 Cheap", 150, "mid-range", models.Specs{"socket": "AM5"}),
		component("mb-2", models.TypeMotherboard, "Board AM5 Pricey", 350, "high-end", models.Specs{"socket": "AM5"}),
		component("mb-3", models.TypeMotherboard, "Board LGA1700", 120, "mid-range", models.Specs{"socket": "LGA1700"}),
	})

	cpu := testCPU("AM5", 105)
	boards, err := SuggestCompatibleMotherboards(cpu, 5)
	if err != nil {
		t.Fatalf("SuggestCompatibleMotherboards: %v", err)
	}

	if len(boards) != 2 {
		t.Fatalf("expected 2 AM5 boards, got %d", len(boards))
	}
	if boards[0].ID != "mb-1" {
		t.Fatalf("expected cheapest board first, got %s", boards[0].ID)
	}
}

func TestSuggestMotherboardsUnknownSocket(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("mb-1", models.TypeMotherboard, "Board AM5", 150, "mid-range", models.Specs{"socket": "AM5"}),
	})

	boards, err := SuggestCompatibleMotherboards(testCPU("", 0), 5)
	if err != nil {
		t.Fatalf("SuggestCompatibleMotherboards: %v", err)
	}
	if len(boards) != 0 {
		t.Fatalf("unknown socket should yield no suggestions, got %d", len(boards))
	}
}

func TestSuggestCompatibleGPUsTierBalance(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("gpu-1", models.TypeGPU, "GPU Budget", 180, "budget", nil),
		component("gpu-2", models.TypeGPU, "GPU Mid", 450, "mid-range", nil),
		component("gpu-3", models.TypeGPU, "GPU High", 900, "high-end", nil),
	})

	cpu := testCPU("AM5", 65)
	cpu.PerformanceTier = "budget"

	gpus, err := SuggestCompatibleGPUs(cpu, 0, 5)
	if err != nil {
		t.Fatalf("SuggestCompatibleGPUs: %v", err)
	}

	for _, gpu := range gpus {
		if gpu.PerformanceTier == "high-end" {
			t.Fatalf("budget CPU should not pair with high-end GPU: %+v", gpu)
		}
	}
	if len(gpus) != 2 {
		t.Fatalf("expected budget and mid-range GPUs, got %d", len(gpus))
	}
}

func TestSuggestRAMMatchesBoardGeneration(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("ram-1", models.TypeRAM, "Kit DDR5 32GB", 120, "mid-range", models.Specs{"type": "DDR5"}),
		component("ram-2", models.TypeRAM, "Kit DDR4 16GB", 60, "budget", models.Specs{"type": "DDR4"}),
		component("ram-3", models.TypeRAM, "Kit DDR5 64GB", 240, "high-end", models.Specs{"type": "DDR5"}),
	})

	mb := testMotherboard("AM5", "DDR5")
	kits, err := SuggestRAM(mb, 0, 5)
	if err != nil {
		t.Fatalf("SuggestRAM: %v", err)
	}

	if len(kits) != 2 {
		t.Fatalf("expected 2 DDR5 kits, got %d", len(kits))
	}
	if kits[0].ID != "ram-3" {
		t.Fatalf("expected largest capacity first, got %s", kits[0].ID)
	}
	for _, kit := range kits {
		if mt, _ := kit.MemoryType(); mt != "DDR5" {
			t.Fatalf("non-DDR5 kit suggested: %+v", kit)
		}
	}
}

func TestSuggestPSUsMeetRecommendedWattage(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("psu-1", models.TypePSU, "Supply 650W", 80, "mid-range", models.Specs{"wattage": 650}),
		component("psu-2", models.TypePSU, "Supply 850W", 120, "mid-range", models.Specs{"wattage": 850}),
		component("psu-3", models.TypePSU, "Supply 1000W", 180, "high-end", models.Specs{"wattage": 1000}),
	})

	// 600W draw needs a 750W supply.
	psus, err := SuggestPSUs(600, 5)
	if err != nil {
		t.Fatalf("SuggestPSUs: %v", err)
	}

	if len(psus) != 2 {
		t.Fatalf("expected 2 suitable supplies, got %d", len(psus))
	}
	if psus[0].ID != "psu-2" {
		t.Fatalf("expected closest-to-recommended first, got %s", psus[0].ID)
	}
}

func TestSuggestPSUsWattageFromName(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("psu-1", models.TypePSU, "Corsair RM850x", 130, "mid-range", nil),
		component("psu-2", models.TypePSU, "EVGA 500 BR", 45, "budget", nil),
	})

	psus, err := SuggestPSUs(600, 5)
	if err != nil {
		t.Fatalf("SuggestPSUs: %v", err)
	}

	if len(psus) != 1 || psus[0].ID != "psu-1" {
		t.Fatalf("expected only the 850W supply, got %+v", psus)
	}
}

func TestSuggestStoragePrefersSolidState(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("st-1", models.TypeStorage, "Spinner 2TB", 55, "budget", models.Specs{"type": "7200 RPM"}),
		component("st-2", models.TypeStorage, "Fast NVMe 1TB", 90, "mid-range", models.Specs{"type": "SSD"}),
	})

	drives, err := SuggestStorage(0, 5)
	if err != nil {
		t.Fatalf("SuggestStorage: %v", err)
	}

	if len(drives) != 2 {
		t.Fatalf("expected 2 drives, got %d", len(drives))
	}
	if drives[0].ID != "st-2" {
		t.Fatalf("expected the SSD first, got %s", drives[0].ID)
	}
}

func TestSuggestCPUsBudgetAndTierOrder(t *testing.T) {
	seedCatalog(t, []models.Component{
		component("cpu-1", models.TypeCPU, "Chip High", 550, "high-end", nil),
		component("cpu-2", models.TypeCPU, "Chip Mid", 250, "mid-range", nil),
		component("cpu-3", models.TypeCPU, "Chip Budget", 120, "budget", nil),
	})

	cpus, err := SuggestCPUs(300, 10)
	if err != nil {
		t.Fatalf("SuggestCPUs: %v", err)
	}

	if len(cpus) != 2 {
		t.Fatalf("expected 2 CPUs under budget, got %d", len(cpus))
	}
	if cpus[0].ID != "cpu-2" {
		t.Fatalf("expected best tier first, got %s", cpus[0].ID)
	}
}

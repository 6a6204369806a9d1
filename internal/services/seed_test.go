package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

func TestGenerateComponentIDStable(t *testing.T) {
	a := GenerateComponentID("AMD Ryzen 7 7800X3D", models.TypeCPU)
	b := GenerateComponentID("AMD Ryzen 7 7800X3D", models.TypeCPU)
	if a != b {
		t.Fatalf("IDs for the same name differ: %s vs %s", a, b)
	}
	if a[:4] != "cpu-" {
		t.Fatalf("CPU ID should carry the type prefix, got %s", a)
	}

	cooler := GenerateComponentID("Noctua NH-D15", models.TypeCPUCooler)
	if cooler[:11] != "cpu-cooler-" {
		t.Fatalf("multi-word types should be slugged, got %s", cooler)
	}
}

func TestExtractBrand(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"AMD Ryzen 5 7600X", "AMD"},
		{"Corsair Vengeance 32 GB", "Corsair"},
		{"Western Digital Blue 1 TB", "Western Digital"},
		{"Obscurium Thing 9000", "Obscurium"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := ExtractBrand(tc.name); got != tc.want {
			t.Fatalf("ExtractBrand(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCleanPrice(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"$1,299.99", 1299.99},
		{"249.5", 249.5},
		{"", 0},
		{"N/A", 0},
		{"-30", 0},
	}
	for _, tc := range cases {
		if got := CleanPrice(tc.raw); got != tc.want {
			t.Fatalf("CleanPrice(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestInferCPUSocket(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"AMD Ryzen 7 7800X3D", "AM5"},
		{"AMD Ryzen 9 9900X", "AM5"},
		{"AMD Ryzen 5 5600", "AM4"},
		{"Intel Core i5-13600K", "LGA1700"},
		{"Intel Core i7-10700K", "LGA1200"},
		{"Intel Core i9-14900K", "LGA1700"},
		{"Intel Core i9-9900K", ""},
		{"Intel Xeon E5-2690", ""},
		{"Mystery Chip", ""},
	}
	for _, tc := range cases {
		if got := InferCPUSocket(tc.name); got != tc.want {
			t.Fatalf("InferCPUSocket(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPerformanceTierBands(t *testing.T) {
	cases := []struct {
		price float64
		ctype models.ComponentType
		want  string
	}{
		{450, models.TypeCPU, "high-end"},
		{250, models.TypeCPU, "mid-range"},
		{120, models.TypeCPU, "budget"},
		{850, models.TypeGPU, "high-end"},
		{500, models.TypeGPU, "mid-range"},
		{160, models.TypeMotherboard, "mid-range"},
		{0, models.TypeRAM, "mid-range"},
	}
	for _, tc := range cases {
		if got := PerformanceTier(tc.price, tc.ctype); got != tc.want {
			t.Fatalf("PerformanceTier(%v, %s) = %q, want %q", tc.price, tc.ctype, got, tc.want)
		}
	}
}

func TestLoadDatasetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "power-supply.csv")
	csv := "name,price,wattage,efficiency,modular\n" +
		"Corsair RM850x,$139.99,850 W,gold,Full\n" +
		"EVGA 500 BR,45.00,500,bronze,No\n" +
		",10,400,,\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	components, err := LoadDatasetFile(path, models.TypePSU)
	if err != nil {
		t.Fatalf("LoadDatasetFile: %v", err)
	}

	if len(components) != 2 {
		t.Fatalf("nameless rows should be dropped, got %d components", len(components))
	}

	first := components[0]
	if first.Brand != "Corsair" {
		t.Fatalf("brand = %q, want Corsair", first.Brand)
	}
	if first.Price != 139.99 {
		t.Fatalf("price = %v, want 139.99", first.Price)
	}
	if watts, ok := first.Wattage(); !ok || watts != 850 {
		t.Fatalf("wattage = %d (%v), want 850", watts, ok)
	}
	if first.ObjectID == "" || first.ObjectID != first.ID {
		t.Fatalf("object ID should mirror ID, got %q / %q", first.ObjectID, first.ID)
	}
}

func TestLoadDatasetSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpu.csv")
	csv := "name,price,core_count,core_clock,boost_clock,tdp,graphics\n" +
		"AMD Ryzen 7 7800X3D,$399.00,8,4.2,5.0,120,Radeon\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	components, err := LoadDataset(dir)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(components) != 1 {
		t.Fatalf("expected 1 component from the lone file, got %d", len(components))
	}

	cpu := components[0]
	if socket, ok := cpu.Socket(); !ok || socket != "AM5" {
		t.Fatalf("socket = %q (%v), want AM5", socket, ok)
	}
	if cpu.PerformanceTier != "mid-range" {
		t.Fatalf("tier = %q, want mid-range for $399 CPU", cpu.PerformanceTier)
	}
}

func TestReindexCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memory.csv")
	csv := "name,price,speed,modules,price_per_gb,cas_latency\n" +
		"Corsair Vengeance DDR5-6000 32GB,$114.99,DDR5-6000,2 x 16GB,3.59,36\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	catalog := seedCatalog(t, nil)

	count, err := ReindexCatalog(dir)
	if err != nil {
		t.Fatalf("ReindexCatalog: %v", err)
	}
	if count != 1 || catalog.Len() != 1 {
		t.Fatalf("expected 1 indexed component, got count=%d len=%d", count, catalog.Len())
	}
}

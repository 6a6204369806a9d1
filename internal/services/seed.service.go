package services

import (
	"crypto/md5"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// Dataset files and the component type each seeds.
var componentFiles = map[string]models.ComponentType{
	"cpu.csv":                 models.TypeCPU,
	"motherboard.csv":         models.TypeMotherboard,
	"video-card.csv":          models.TypeGPU,
	"memory.csv":              models.TypeRAM,
	"internal-hard-drive.csv": models.TypeStorage,
	"power-supply.csv":        models.TypePSU,
	"case.csv":                models.TypeCase,
	"cpu-cooler.csv":          models.TypeCPUCooler,
}

var knownBrands = []string{
	"AMD", "Intel", "NVIDIA", "ASUS", "MSI", "Gigabyte", "ASRock",
	"Corsair", "G.Skill", "Samsung", "Western Digital", "Seagate",
	"Crucial", "Kingston", "EVGA", "Thermaltake", "Cooler Master",
	"NZXT", "Lian Li", "Fractal Design", "Be Quiet", "Noctua",
	"Deepcool", "Arctic", "Phanteks", "Seasonic", "Super Flower",
	"Zotac", "Sapphire", "PowerColor", "XFX", "PNY", "Inno3D",
	"TeamGroup", "ADATA", "Sabrent", "Lexar", "Silicon Power",
}

// GenerateComponentID derives a stable ID from a component's name and type.
func GenerateComponentID(name string, componentType models.ComponentType) string {
	sum := md5.Sum([]byte(name))
	return strings.ToLower(strings.ReplaceAll(string(componentType), " ", "-")) + "-" + hex.EncodeToString(sum[:])[:10]
}

// ExtractBrand matches a component name against the known-brand table,
// falling back to the first word of the name.
func ExtractBrand(name string) string {
	if name == "" {
		return "Unknown"
	}
	upper := strings.ToUpper(name)
	for _, brand := range knownBrands {
		if strings.Contains(upper, strings.ToUpper(brand)) {
			return brand
		}
	}
	return strings.Fields(name)[0]
}

// CleanPrice parses price strings like "$1,299.99" into a float.
func CleanPrice(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "$", ""), ",", ""))
	if raw == "" {
		return 0
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// InferCPUSocket guesses a CPU's socket from its product name. The dataset
// carries no socket column for CPUs, so this mirrors the naming conventions
// of recent AMD and Intel parts.
func InferCPUSocket(name string) string {
	up := strings.ToUpper(name)
	switch {
	case strings.Contains(up, "AM5"):
		return "AM5"
	case strings.Contains(up, "AM4"):
		return "AM4"
	case strings.Contains(up, "LGA1700"):
		return "LGA1700"
	case strings.Contains(up, "LGA1200"):
		return "LGA1200"
	}

	if strings.Contains(up, "RYZEN") {
		for _, series := range []string{"9000", "8000", "7000", "9900", "9700", "9600", "7900", "7800", "7700", "7600"} {
			if strings.Contains(up, series) {
				return "AM5"
			}
		}
		return "AM4"
	}
	if strings.Contains(up, "CORE") || strings.Contains(up, "INTEL") || strings.Contains(up, "XEON") {
		for _, gen := range []string{"I9-14", "I7-14", "I5-14", "I3-14", "I9-13", "I7-13", "I5-13", "I3-13", "I9-12", "I7-12", "I5-12", "I3-12"} {
			if strings.Contains(up, gen) {
				return "LGA1700"
			}
		}
		for _, gen := range []string{"I9-11", "I7-11", "I5-11", "I3-11", "I9-10", "I7-10", "I5-10", "I3-10"} {
			if strings.Contains(up, gen) {
				return "LGA1200"
			}
		}
	}
	// Unrecognized generations stay unknown so socket checks skip them.
	return ""
}

// PerformanceTier bands a component by price, with per-type thresholds.
func PerformanceTier(price float64, componentType models.ComponentType) string {
	if price <= 0 {
		return "mid-range"
	}

	var high, mid float64
	switch componentType {
	case models.TypeCPU:
		high, mid = 400, 200
	case models.TypeGPU:
		high, mid = 800, 400
	case models.TypeMotherboard:
		high, mid = 300, 150
	default:
		high, mid = 200, 100
	}

	switch {
	case price >= high:
		return "high-end"
	case price >= mid:
		return "mid-range"
	default:
		return "budget"
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func setIfPresent(specs models.Specs, key, value string) {
	if value != "" {
		specs[key] = value
	}
}

func setIntIfPositive(specs models.Specs, key string, value int) {
	if value > 0 {
		specs[key] = value
	}
}

// buildSpecs maps the raw CSV row onto the type-dependent specs schema.
func buildSpecs(componentType models.ComponentType, name string, row map[string]string) models.Specs {
	specs := models.Specs{}

	switch componentType {
	case models.TypeCPU:
		setIntIfPositive(specs, "core_count", atoiOrZero(row["core_count"]))
		setIfPresent(specs, "core_clock", row["core_clock"])
		setIfPresent(specs, "boost_clock", row["boost_clock"])
		setIfPresent(specs, "graphics", row["graphics"])
		setIntIfPositive(specs, "tdp", atoiOrZero(row["tdp"]))
		setIfPresent(specs, "socket", InferCPUSocket(name))

	case models.TypeMotherboard:
		setIfPresent(specs, "socket", row["socket"])
		setIfPresent(specs, "form_factor", row["form_factor"])
		setIntIfPositive(specs, "max_memory", atoiOrZero(row["max_memory"]))
		setIntIfPositive(specs, "memory_slots", atoiOrZero(row["memory_slots"]))
		up := strings.ToUpper(name)
		switch {
		case strings.Contains(up, "DDR4"):
			specs["memory_type"] = "DDR4"
		case strings.Contains(up, "DDR5"),
			strings.Contains(row["socket"], "AM5"),
			strings.Contains(row["socket"], "LGA1851"):
			specs["memory_type"] = "DDR5"
		default:
			specs["memory_type"] = "DDR4"
		}

	case models.TypeGPU:
		chipset := row["chipset"]
		switch {
		case strings.Contains(name, "GeForce"):
			chipset = "NVIDIA"
		case strings.Contains(name, "Radeon"):
			chipset = "AMD"
		case strings.Contains(name, "Arc"):
			chipset = "Intel"
		}
		setIfPresent(specs, "chipset", chipset)
		setIfPresent(specs, "memory", row["memory"])
		setIfPresent(specs, "core_clock", row["core_clock"])
		setIfPresent(specs, "boost_clock", row["boost_clock"])
		setIntIfPositive(specs, "tdp", atoiOrZero(row["tdp"]))

	case models.TypeRAM:
		setIfPresent(specs, "speed", row["speed"])
		setIfPresent(specs, "modules", row["modules"])
		setIfPresent(specs, "price_per_gb", row["price_per_gb"])
		setIfPresent(specs, "latency", row["cas_latency"])
		if ddr := models.NormalizeDDR(firstDDRToken(name + " " + row["speed"])); ddr != "" {
			specs["type"] = ddr
		}

	case models.TypeStorage:
		setIfPresent(specs, "capacity", row["capacity"])
		setIfPresent(specs, "price_per_gb", row["price_per_gb"])
		setIfPresent(specs, "type", row["type"])
		setIfPresent(specs, "cache", row["cache"])
		setIfPresent(specs, "form_factor", row["form_factor"])

	case models.TypePSU:
		wattage := strings.ToLower(strings.TrimSpace(row["wattage"]))
		wattage = strings.TrimSuffix(wattage, "w")
		setIntIfPositive(specs, "wattage", atoiOrZero(wattage))
		setIfPresent(specs, "efficiency", row["efficiency"])
		setIfPresent(specs, "modular", row["modular"])

	case models.TypeCase:
		setIfPresent(specs, "type", row["type"])
		setIfPresent(specs, "color", row["color"])
		setIfPresent(specs, "side_panel", row["side_panel"])

	case models.TypeCPUCooler:
		setIfPresent(specs, "rpm", row["rpm"])
		setIfPresent(specs, "noise_level", row["noise_level"])
		setIfPresent(specs, "size", row["size"])
	}

	return specs
}

func firstDDRToken(s string) string {
	up := strings.ToUpper(s)
	for _, gen := range []string{"DDR5", "DDR4", "DDR3"} {
		if strings.Contains(up, gen) {
			return gen
		}
	}
	return ""
}

// readCSVRows parses a CSV file into header-keyed row maps.
func readCSVRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadDatasetFile normalizes one CSV file into catalog components.
func LoadDatasetFile(path string, componentType models.ComponentType) ([]models.Component, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}

	components := make([]models.Component, 0, len(rows))
	for _, row := range rows {
		name := row["name"]
		if name == "" {
			continue
		}

		price := CleanPrice(row["price"])
		id := GenerateComponentID(name, componentType)
		components = append(components, models.Component{
			ObjectID:        id,
			ID:              id,
			Type:            componentType,
			Name:            name,
			Brand:           ExtractBrand(name),
			Price:           price,
			Image:           row["image"],
			Specs:           buildSpecs(componentType, name, row),
			PerformanceTier: PerformanceTier(price, componentType),
		})
	}
	return components, nil
}

// LoadDataset normalizes every known CSV file under dir. Missing files are
// skipped with a warning, matching the seed script's tolerance for partial
// datasets.
func LoadDataset(dir string) ([]models.Component, error) {
	var all []models.Component
	for filename, componentType := range componentFiles {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			log.Printf("[SEED] Warning: %s not found, skipping", path)
			continue
		}

		components, err := LoadDatasetFile(path, componentType)
		if err != nil {
			return nil, err
		}
		log.Printf("[SEED] Loaded %d %s components from %s", len(components), componentType, filename)
		all = append(all, components...)
	}
	return all, nil
}

// ReindexCatalog clears the index, reapplies settings and indexes the whole
// dataset in batches. Returns the number of components indexed.
func ReindexCatalog(dir string) (int, error) {
	c := Catalog()
	if c == nil {
		return 0, fmt.Errorf("catalog not initialized")
	}

	components, err := LoadDataset(dir)
	if err != nil {
		return 0, err
	}
	if len(components) == 0 {
		return 0, fmt.Errorf("no components found under %s", dir)
	}

	if err := c.ClearIndex(); err != nil {
		return 0, err
	}
	if err := c.ConfigureSettings(); err != nil {
		return 0, err
	}

	const batchSize = 1000
	for start := 0; start < len(components); start += batchSize {
		end := start + batchSize
		if end > len(components) {
			end = len(components)
		}
		if err := c.SaveComponents(components[start:end]); err != nil {
			return 0, err
		}
	}

	ClearCatalogCaches()
	log.Printf("[SEED] Reindexed %d components", len(components))
	return len(components), nil
}

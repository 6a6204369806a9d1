package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// Suggestion queries are filtered, re-sorted catalog searches; there is no
// model behind them. Tier balancing pairs a CPU with GPUs of a matching
// performance tier to avoid obvious bottlenecks.

var gpuTierForCPU = map[string][]string{
	"high-end":  {"high-end", "mid-range"},
	"mid-range": {"mid-range", "high-end"},
	"budget":    {"budget", "mid-range"},
}

var wattagePattern = regexp.MustCompile(`(\d{3,4})\s?[Ww]?`)

var capacityPattern = regexp.MustCompile(`(\d+)\s?GB`)

// SuggestCPUs returns CPUs under budget, best tier first, cheapest within a
// tier first.
func SuggestCPUs(budget float64, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 10
	}

	filters := models.SearchFilters{MaxPrice: budget}
	hits, err := SearchByTypeCached(string(models.TypeCPU), filters, limit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(hits, func(i, j int) bool {
		ri, rj := rankOf(hits[i].PerformanceTier), rankOf(hits[j].PerformanceTier)
		if ri != rj {
			return ri < rj
		}
		return priceOrMax(hits[i]) < priceOrMax(hits[j])
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// SuggestCompatibleGPUs returns GPUs whose performance tier balances the
// given CPU, cheapest first.
func SuggestCompatibleGPUs(cpu *models.Component, budget float64, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 5
	}

	cpuTier := cpu.PerformanceTier
	if cpuTier == "" {
		cpuTier = "mid-range"
	}
	wanted, ok := gpuTierForCPU[cpuTier]
	if !ok {
		wanted = []string{"mid-range"}
	}

	hits, err := SearchByTypeCached(string(models.TypeGPU), models.SearchFilters{MaxPrice: budget}, 50)
	if err != nil {
		return nil, err
	}

	var matched []models.Component
	for _, gpu := range hits {
		for _, tier := range wanted {
			if gpu.PerformanceTier == tier {
				matched = append(matched, gpu)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return priceOrMax(matched[i]) < priceOrMax(matched[j])
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// SuggestCompatibleMotherboards returns boards matching the CPU's socket,
// cheapest first. A CPU with an unknown socket yields no suggestions.
func SuggestCompatibleMotherboards(cpu *models.Component, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 5
	}

	socket, ok := cpu.Socket()
	if !ok {
		return []models.Component{}, nil
	}

	hits, err := SearchByTypeCached(string(models.TypeMotherboard), models.SearchFilters{Socket: socket}, limit*2)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return priceOrMax(hits[i]) < priceOrMax(hits[j])
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// SuggestRAM returns kits matching the motherboard's DDR generation, larger
// capacity first, then cheaper.
func SuggestRAM(motherboard *models.Component, budget float64, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 5
	}

	ddr, ok := motherboard.MemoryType()
	if !ok {
		ddr = "DDR5"
	}

	hits, err := SearchByTypeCached(string(models.TypeRAM), models.SearchFilters{MaxPrice: budget}, 50)
	if err != nil {
		return nil, err
	}

	var matched []models.Component
	for _, ram := range hits {
		if ramType, ok := ram.MemoryType(); ok && ramType == ddr {
			matched = append(matched, ram)
			continue
		}
		// Fall back to the kit name when the type field is missing.
		if strings.Contains(strings.ToUpper(ram.Name), ddr) {
			matched = append(matched, ram)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ci, cj := extractCapacityGB(matched[i].Name), extractCapacityGB(matched[j].Name)
		if ci != cj {
			return ci > cj
		}
		return priceOrMax(matched[i]) < priceOrMax(matched[j])
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// SuggestPSUs returns supplies meeting the recommended wattage for the given
// system draw, closest-to-recommended first, then cheaper.
func SuggestPSUs(totalPower int, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 5
	}
	recommended := RecommendedPSUWattage(totalPower)

	hits, err := SearchByTypeCached(string(models.TypePSU), models.SearchFilters{}, 100)
	if err != nil {
		return nil, err
	}

	type ratedPSU struct {
		models.Component
		watts int
	}
	var suitable []ratedPSU
	for _, psu := range hits {
		watts := extractWattage(psu)
		if watts >= recommended {
			suitable = append(suitable, ratedPSU{Component: psu, watts: watts})
		}
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		di := int(math.Abs(float64(suitable[i].watts - recommended)))
		dj := int(math.Abs(float64(suitable[j].watts - recommended)))
		if di != dj {
			return di < dj
		}
		return priceOrMax(suitable[i].Component) < priceOrMax(suitable[j].Component)
	})

	out := make([]models.Component, 0, limit)
	for _, psu := range suitable {
		out = append(out, psu.Component)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// SuggestStorage returns drives under budget, SSD/NVMe first, then cheaper.
func SuggestStorage(budget float64, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 5
	}

	hits, err := SearchByTypeCached(string(models.TypeStorage), models.SearchFilters{MaxPrice: budget}, limit*2)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(hits, func(i, j int) bool {
		si, sj := solidStateRank(hits[i]), solidStateRank(hits[j])
		if si != sj {
			return si < sj
		}
		return priceOrMax(hits[i]) < priceOrMax(hits[j])
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func solidStateRank(c models.Component) int {
	up := strings.ToUpper(c.Name)
	if t, ok := c.Specs["type"].(string); ok {
		up += " " + strings.ToUpper(t)
	}
	if strings.Contains(up, "SSD") || strings.Contains(up, "NVME") {
		return 0
	}
	return 1
}

// extractWattage reads a PSU's rating from its specs, falling back to the
// wattage token in its name ("Corsair RM1000x" -> 1000).
func extractWattage(psu models.Component) int {
	if watts, ok := psu.Wattage(); ok {
		return watts
	}
	if m := wattagePattern.FindStringSubmatch(psu.Name); m != nil {
		watts, _ := strconv.Atoi(m[1])
		return watts
	}
	return 0
}

func extractCapacityGB(name string) int {
	if m := capacityPattern.FindStringSubmatch(strings.ToUpper(name)); m != nil {
		gb, _ := strconv.Atoi(m[1])
		return gb
	}
	return 0
}

// priceOrMax sorts unpriced components last.
func priceOrMax(c models.Component) float64 {
	if c.Price <= 0 {
		return math.MaxFloat64
	}
	return c.Price
}

package models

import "strings"

// ComponentType enumerates the catalog categories a component can belong to.
type ComponentType string

const (
	TypeCPU         ComponentType = "CPU"
	TypeMotherboard ComponentType = "Motherboard"
	TypeGPU         ComponentType = "GPU"
	TypeRAM         ComponentType = "RAM"
	TypeStorage     ComponentType = "Storage"
	TypePSU         ComponentType = "PSU"
	TypeCase        ComponentType = "Case"
	TypeCPUCooler   ComponentType = "CPU Cooler"
)

// Specs holds the type-dependent attribute map of a component. Values come
// from JSON, so numbers arrive as float64 and must be coerced on read.
type Specs map[string]interface{}

// Component is a single catalog entry as stored in the search index.
type Component struct {
	ObjectID        string        `json:"objectID,omitempty"`
	ID              string        `json:"id"`
	Type            ComponentType `json:"type"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand,omitempty"`
	Price           float64       `json:"price,omitempty"`
	Image           string        `json:"image,omitempty"`
	Specs           Specs         `json:"specs,omitempty"`
	PerformanceTier string        `json:"performance_tier,omitempty"`
	ReleaseYear     int           `json:"release_year,omitempty"`
}

func (s Specs) str(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s Specs) num(key string) (int, bool) {
	if s == nil {
		return 0, false
	}
	switch v := s[key].(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case int64:
		if v > 0 {
			return int(v), true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// Socket returns the CPU/motherboard socket token. The second return is false
// when the socket is unknown, which means socket checks must be skipped.
func (c *Component) Socket() (string, bool) {
	return c.Specs.str("socket")
}

// TDP returns the component's thermal design power in watts.
func (c *Component) TDP() (int, bool) {
	return c.Specs.num("tdp")
}

// Wattage returns a PSU's rated output in watts.
func (c *Component) Wattage() (int, bool) {
	return c.Specs.num("wattage")
}

// FormFactor returns a motherboard's form factor, e.g. "ATX" or "Mini ITX".
func (c *Component) FormFactor() (string, bool) {
	return c.Specs.str("form_factor")
}

// MemoryType returns the DDR generation a motherboard or RAM kit uses,
// normalized to its "DDR?" prefix so "DDR4-3200" compares equal to "DDR4".
// Motherboards store it under "memory_type", RAM kits under "type".
func (c *Component) MemoryType() (string, bool) {
	raw, ok := c.Specs.str("memory_type")
	if !ok {
		raw, ok = c.Specs.str("type")
	}
	if !ok {
		return "", false
	}
	norm := NormalizeDDR(raw)
	if norm == "" {
		return "", false
	}
	return norm, true
}

// NormalizeDDR reduces a memory-type token to its DDR generation prefix.
// Returns "" when the token does not look like a DDR designation.
func NormalizeDDR(raw string) string {
	up := strings.ToUpper(strings.TrimSpace(raw))
	if len(up) < 4 || !strings.HasPrefix(up, "DDR") {
		return ""
	}
	return up[:4]
}

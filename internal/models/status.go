package models

import "time"

// ServiceStatus is the payload of the operational status endpoint.
type ServiceStatus struct {
	Service        string    `json:"service"`
	Version        string    `json:"version"`
	CatalogBackend string    `json:"catalog_backend"`
	ActiveSessions int       `json:"active_sessions"`
	UptimeSeconds  uint64    `json:"uptime_seconds"`
	CPUPercent     float64   `json:"cpu_percent"`
	MemoryPercent  float64   `json:"memory_percent"`
	Timestamp      time.Time `json:"timestamp"`
}

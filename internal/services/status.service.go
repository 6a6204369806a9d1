package services

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// Version is the API version reported by the root and status endpoints.
const Version = "1.0.0"

var serviceStart = time.Now()

// GetServiceStatus reports service health plus basic host utilization. Host
// probes are best-effort; a probe failure leaves its field at zero rather
// than failing the endpoint.
func GetServiceStatus() *models.ServiceStatus {
	status := &models.ServiceStatus{
		Service:        "pcbuild-assist",
		Version:        Version,
		CatalogBackend: CatalogName(),
		ActiveSessions: SessionCount(),
		UptimeSeconds:  uint64(time.Since(serviceStart).Seconds()),
		Timestamp:      time.Now(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		status.MemoryPercent = vm.UsedPercent
	}

	return status
}

package services

import (
	"fmt"
	"math"

	"github.com/Srijan-XI/pcbuild-assist/internal/models"
)

// Power budget constants. The 150W overhead covers motherboard, RAM, storage
// and fans on top of the CPU/GPU TDPs; the recommended PSU keeps 25% headroom
// over the estimated draw.
const (
	SystemOverheadWatts = 150
	PSUHeadroomFactor   = 1.25
)

// Check names as they appear in findings and API responses.
const (
	CheckCPUSocket  = "CPU-Motherboard Socket"
	CheckMemoryType = "RAM-Motherboard Memory Type"
	CheckGPUSlot    = "GPU-Motherboard PCIe"
	CheckPSUWattage = "PSU Wattage"
)

// CheckCPUMotherboard verifies the CPU and motherboard share a socket.
// The second return is false when either socket is unknown, meaning the
// check was skipped and no finding should be recorded.
func CheckCPUMotherboard(cpu, mb *models.Component) (models.Finding, bool) {
	cpuSocket, ok1 := cpu.Socket()
	mbSocket, ok2 := mb.Socket()
	if !ok1 || !ok2 {
		return models.Finding{}, false
	}

	f := models.Finding{Check: CheckCPUSocket}
	if cpuSocket == mbSocket {
		f.Compatible = true
		f.Severity = models.SeveritySuccess
		f.Message = fmt.Sprintf("✓ Compatible: Both use %s socket", cpuSocket)
	} else {
		f.Severity = models.SeverityError
		f.Message = fmt.Sprintf("✗ Incompatible: CPU uses %s, motherboard uses %s", cpuSocket, mbSocket)
	}
	return f, true
}

// CheckRAMMotherboard verifies the RAM kit's DDR generation matches the
// motherboard's supported memory type. Skipped when either side is unknown.
func CheckRAMMotherboard(ram, mb *models.Component) (models.Finding, bool) {
	ramType, ok1 := ram.MemoryType()
	mbType, ok2 := mb.MemoryType()
	if !ok1 || !ok2 {
		return models.Finding{}, false
	}

	f := models.Finding{Check: CheckMemoryType}
	if ramType == mbType {
		f.Compatible = true
		f.Severity = models.SeveritySuccess
		f.Message = fmt.Sprintf("✓ Compatible: Both use %s", ramType)
	} else {
		f.Severity = models.SeverityError
		f.Message = fmt.Sprintf("✗ Incompatible: RAM is %s, motherboard supports %s", ramType, mbType)
	}
	return f, true
}

// CheckGPUMotherboard is advisory: modern boards all take PCIe graphics
// cards, so this only flags the single-slot constraint of Mini ITX boards.
func CheckGPUMotherboard(gpu, mb *models.Component) models.Finding {
	f := models.Finding{
		Check:      CheckGPUSlot,
		Compatible: true,
		Severity:   models.SeverityInfo,
		Message:    "✓ Compatible: Motherboard supports PCIe graphics cards",
	}
	if ff, ok := mb.FormFactor(); ok && ff == "Mini ITX" {
		f.Message = "✓ Compatible (Note: Mini ITX has 1 PCIe slot)"
	}
	return f
}

// TotalPower estimates system draw: CPU and GPU TDPs (unknown treated as 0)
// plus the fixed overhead. An empty build still carries the overhead.
func TotalPower(build models.Build) int {
	total := SystemOverheadWatts
	if cpu := build.Component(models.SlotCPU); cpu != nil {
		if tdp, ok := cpu.TDP(); ok {
			total += tdp
		}
	}
	if gpu := build.Component(models.SlotGPU); gpu != nil {
		if tdp, ok := gpu.TDP(); ok {
			total += tdp
		}
	}
	return total
}

// RecommendedPSUWattage applies the headroom factor, rounding up.
func RecommendedPSUWattage(totalPower int) int {
	return int(math.Ceil(float64(totalPower) * PSUHeadroomFactor))
}

// checkPSU compares the PSU's rated output against the recommended wattage.
// Insufficient headroom is a warning, not a blocker.
func checkPSU(psuWattage, recommended, totalPower int) models.Finding {
	f := models.Finding{Check: CheckPSUWattage}
	if psuWattage >= recommended {
		f.Compatible = true
		f.Severity = models.SeveritySuccess
		f.Message = fmt.Sprintf("✓ Compatible: %dW PSU sufficient for ~%dW system", psuWattage, totalPower)
	} else {
		f.Severity = models.SeverityWarning
		f.Message = fmt.Sprintf("✗ Insufficient: Need ≥%dW PSU, have %dW", recommended, psuWattage)
	}
	return f
}

// EvaluateBuild runs every applicable pairwise check over an immutable build
// snapshot and returns the derived verdict. It is pure: no I/O, no stored
// state, the same build always yields the same result. Checks whose inputs
// are absent contribute no finding; every failing check is reported, never
// just the first.
func EvaluateBuild(build models.Build) models.EvaluationResult {
	result := models.EvaluationResult{
		Compatible: true,
		Checks:     []models.Finding{},
		Warnings:   []string{},
	}

	cpu := build.Component(models.SlotCPU)
	mb := build.Component(models.SlotMotherboard)
	gpu := build.Component(models.SlotGPU)
	ram := build.Component(models.SlotRAM)
	psu := build.Component(models.SlotPSU)

	record := func(f models.Finding) {
		result.Checks = append(result.Checks, f)
		if f.HardFail() {
			result.Compatible = false
		}
		if !f.Compatible && f.Severity == models.SeverityWarning {
			result.Warnings = append(result.Warnings, f.Message)
		}
	}

	if cpu != nil && mb != nil {
		if f, evaluated := CheckCPUMotherboard(cpu, mb); evaluated {
			record(f)
		}
	}

	if ram != nil && mb != nil {
		if f, evaluated := CheckRAMMotherboard(ram, mb); evaluated {
			record(f)
		}
	}

	if gpu != nil && mb != nil {
		record(CheckGPUMotherboard(gpu, mb))
	}

	result.TotalPower = TotalPower(build)
	result.RecommendedPSU = RecommendedPSUWattage(result.TotalPower)

	if psu != nil && (cpu != nil || gpu != nil) {
		if wattage, ok := psu.Wattage(); ok {
			record(checkPSU(wattage, result.RecommendedPSU, result.TotalPower))
		}
	}

	return result
}

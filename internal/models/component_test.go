package models

import "testing"

func TestSpecsAccessors(t *testing.T) {
	c := &Component{
		Type: TypeCPU,
		Specs: Specs{
			"socket": "AM5",
			"tdp":    float64(120), // JSON numbers decode as float64
		},
	}

	if socket, ok := c.Socket(); !ok || socket != "AM5" {
		t.Fatalf("Socket() = %q, %v", socket, ok)
	}
	if tdp, ok := c.TDP(); !ok || tdp != 120 {
		t.Fatalf("TDP() = %d, %v", tdp, ok)
	}
}

func TestSpecsAbsentFields(t *testing.T) {
	c := &Component{Type: TypeCPU}

	if _, ok := c.Socket(); ok {
		t.Fatalf("nil specs should report no socket")
	}
	if _, ok := c.TDP(); ok {
		t.Fatalf("nil specs should report no TDP")
	}
	if _, ok := c.MemoryType(); ok {
		t.Fatalf("nil specs should report no memory type")
	}
}

func TestMemoryTypeKeyFallback(t *testing.T) {
	mb := &Component{Type: TypeMotherboard, Specs: Specs{"memory_type": "DDR5"}}
	ram := &Component{Type: TypeRAM, Specs: Specs{"type": "DDR5-6000"}}

	mt, ok := mb.MemoryType()
	if !ok || mt != "DDR5" {
		t.Fatalf("motherboard MemoryType() = %q, %v", mt, ok)
	}
	rt, ok := ram.MemoryType()
	if !ok || rt != "DDR5" {
		t.Fatalf("RAM MemoryType() = %q, %v", rt, ok)
	}
}

func TestNormalizeDDR(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"DDR5", "DDR5"},
		{"ddr4-3200", "DDR4"},
		{" DDR5-6000 CL36 ", "DDR5"},
		{"SDRAM", ""},
		{"DDR", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDDR(tc.raw); got != tc.want {
			t.Fatalf("NormalizeDDR(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSlotAccepts(t *testing.T) {
	if !SlotAccepts(SlotCPU, TypeCPU) {
		t.Fatalf("cpu slot should accept CPUs")
	}
	if SlotAccepts(SlotCPU, TypeGPU) {
		t.Fatalf("cpu slot should reject GPUs")
	}
	if SlotAccepts("cooler", TypeCPUCooler) {
		t.Fatalf("unknown slots accept nothing")
	}
}

func TestBuildRequestSlotIDs(t *testing.T) {
	req := BuildRequest{CPUID: "cpu-1", PSUID: "psu-1"}
	ids := req.SlotIDs()

	if len(ids) != 2 {
		t.Fatalf("expected 2 IDs, got %d", len(ids))
	}
	if ids[SlotCPU] != "cpu-1" || ids[SlotPSU] != "psu-1" {
		t.Fatalf("unexpected slot IDs: %v", ids)
	}
}

func TestBuildCloneIsIndependent(t *testing.T) {
	b := NewBuild()
	b.Set(SlotCPU, &Component{ID: "cpu-1", Type: TypeCPU})

	clone := b.Clone()
	b.Remove(SlotCPU)

	if clone.Component(SlotCPU) == nil {
		t.Fatalf("clone should keep its entries after the original mutates")
	}
}

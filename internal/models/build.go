package models

// SlotName identifies one of the six positions a build can fill.
type SlotName string

const (
	SlotCPU         SlotName = "cpu"
	SlotMotherboard SlotName = "motherboard"
	SlotGPU         SlotName = "gpu"
	SlotRAM         SlotName = "ram"
	SlotStorage     SlotName = "storage"
	SlotPSU         SlotName = "psu"
)

// Slots lists every build slot in evaluation order.
var Slots = []SlotName{SlotCPU, SlotMotherboard, SlotGPU, SlotRAM, SlotStorage, SlotPSU}

var slotTypes = map[SlotName]ComponentType{
	SlotCPU:         TypeCPU,
	SlotMotherboard: TypeMotherboard,
	SlotGPU:         TypeGPU,
	SlotRAM:         TypeRAM,
	SlotStorage:     TypeStorage,
	SlotPSU:         TypePSU,
}

// ValidSlot reports whether name is one of the six build slots.
func ValidSlot(name SlotName) bool {
	_, ok := slotTypes[name]
	return ok
}

// SlotAccepts reports whether a component of the given type may occupy slot.
func SlotAccepts(slot SlotName, t ComponentType) bool {
	want, ok := slotTypes[slot]
	return ok && want == t
}

// Build maps slot names to the selected component, at most one per slot.
// A nil or missing entry means the slot is empty.
type Build map[SlotName]*Component

// NewBuild returns an empty build.
func NewBuild() Build {
	return make(Build, len(Slots))
}

// Component returns the component in slot, or nil when the slot is empty.
func (b Build) Component(slot SlotName) *Component {
	if b == nil {
		return nil
	}
	return b[slot]
}

// Set places a component into slot, replacing any previous selection.
func (b Build) Set(slot SlotName, c *Component) {
	b[slot] = c
}

// Remove empties the slot.
func (b Build) Remove(slot SlotName) {
	delete(b, slot)
}

// Clone returns a shallow copy so callers can hand the evaluator an
// immutable snapshot while continuing to mutate the original.
func (b Build) Clone() Build {
	out := make(Build, len(b))
	for slot, c := range b {
		out[slot] = c
	}
	return out
}

// BuildRequest is the wire form of a build compatibility check: one optional
// component ID per slot, plus optional embedded component records keyed by
// slot name. Embedded records take precedence over IDs.
type BuildRequest struct {
	CPUID         string                `json:"cpu_id,omitempty"`
	MotherboardID string                `json:"motherboard_id,omitempty"`
	GPUID         string                `json:"gpu_id,omitempty"`
	RAMID         string                `json:"ram_id,omitempty"`
	StorageID     string                `json:"storage_id,omitempty"`
	PSUID         string                `json:"psu_id,omitempty"`
	Components    map[string]*Component `json:"components,omitempty"`
}

// SlotIDs returns the per-slot component IDs carried by the request.
func (r *BuildRequest) SlotIDs() map[SlotName]string {
	ids := map[SlotName]string{}
	for slot, id := range map[SlotName]string{
		SlotCPU:         r.CPUID,
		SlotMotherboard: r.MotherboardID,
		SlotGPU:         r.GPUID,
		SlotRAM:         r.RAMID,
		SlotStorage:     r.StorageID,
		SlotPSU:         r.PSUID,
	} {
		if id != "" {
			ids[slot] = id
		}
	}
	return ids
}

package models

// Severity classifies a compatibility finding.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is the outcome of one evaluated compatibility check.
type Finding struct {
	Check      string   `json:"check"`
	Compatible bool     `json:"compatible"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
}

// HardFail reports whether this finding should block the build.
func (f Finding) HardFail() bool {
	return !f.Compatible && f.Severity == SeverityError
}

// EvaluationResult is the derived verdict for a build. Compatible is true
// iff every evaluated hard-fail check passed; warnings never flip it.
type EvaluationResult struct {
	Compatible     bool      `json:"compatible"`
	Checks         []Finding `json:"checks"`
	Warnings       []string  `json:"warnings"`
	TotalPower     int       `json:"total_power"`
	RecommendedPSU int       `json:"recommended_psu"`
}

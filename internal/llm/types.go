package llm

// RedFlag is a single risk finding in analyzed legal text.
type RedFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Suggestion  string `json:"suggestion"`
}

// RedFlagReport is the structured result of red-flag detection.
//
// When the model's output does not parse as the requested JSON shape, the
// report degrades instead of failing: RedFlags is empty, OverallRiskLevel is
// "unknown", and Summary/Raw carry the unparsed model output.
type RedFlagReport struct {
	RedFlags         []RedFlag `json:"red_flags"`
	OverallRiskLevel string    `json:"overall_risk_level"`
	Summary          string    `json:"summary"`
	Raw              string    `json:"raw_response,omitempty"`
}

// Parsed reports whether the model output parsed into the structured shape.
func (r *RedFlagReport) Parsed() bool {
	return r.Raw == ""
}

// RiskLevelUnknown is the overall risk level of a degraded report.
const RiskLevelUnknown = "unknown"

package domain

// Violation is a single accessibility finding on a page, normalized from
// whatever shape the rule engine natively produces.
type Violation struct {
	RuleID      string   `json:"rule_id"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Selector    string   `json:"selector,omitempty"`
	HelpURL     string   `json:"help_url,omitempty"`
}

// RawViolation is the engine-native shape before severity coercion.
type RawViolation struct {
	RuleID      string   `json:"id"`
	Impact      string   `json:"impact"`
	Description string   `json:"description"`
	HelpURL     string   `json:"helpUrl"`
	Targets     []string `json:"targets"`
}

// CoercionWarning records an engine impact label that had no mapping and was
// coerced to Moderate. Callers are expected to log these; they must never be
// dropped silently.
type CoercionWarning struct {
	RuleID string
	Impact string
}

// NormalizeViolations converts engine output into canonical Violations,
// coercing unmapped impact labels to Moderate. One Violation is emitted per
// offending element so occurrence counts reflect real breadth.
func NormalizeViolations(raws []RawViolation) ([]Violation, []CoercionWarning) {
	var (
		out      []Violation
		warnings []CoercionWarning
	)
	for _, raw := range raws {
		sev, ok := SeverityFromImpact(raw.Impact)
		if !ok {
			warnings = append(warnings, CoercionWarning{RuleID: raw.RuleID, Impact: raw.Impact})
		}
		targets := raw.Targets
		if len(targets) == 0 {
			targets = []string{""}
		}
		for _, sel := range targets {
			out = append(out, Violation{
				RuleID:      raw.RuleID,
				Severity:    sev,
				Description: raw.Description,
				Selector:    sel,
				HelpURL:     raw.HelpURL,
			})
		}
	}
	return out, warnings
}

package domain

// Severity classifies how badly a violation impacts users.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// severityRank orders severities for sorting; higher is worse.
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeveritySerious:  3,
	SeverityModerate: 2,
	SeverityMinor:    1,
}

func (s Severity) Rank() int { return severityRank[s] }

// Label returns the human-facing form used in reports and statements.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeveritySerious:
		return "Serious"
	case SeverityModerate:
		return "Moderate"
	case SeverityMinor:
		return "Minor"
	}
	return string(s)
}

// Severities lists all levels from worst to mildest. Reports iterate this
// instead of ranging over maps so output order is stable.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor}
}

func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// impactTable pins the mapping from axe-core impact strings onto our four
// levels. The table is versioned with the engine: engine upgrades that invent
// new impact labels coerce to Moderate (with a warning) rather than silently
// reclassifying audits.
var impactTable = map[string]Severity{
	"critical": SeverityCritical,
	"serious":  SeveritySerious,
	"moderate": SeverityModerate,
	"minor":    SeverityMinor,
}

// SeverityFromImpact maps a native engine impact label to a Severity.
// The second return reports whether the label was recognized.
func SeverityFromImpact(impact string) (Severity, bool) {
	s, ok := impactTable[impact]
	if !ok {
		return SeverityModerate, false
	}
	return s, true
}

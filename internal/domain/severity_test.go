package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank_Ordering(t *testing.T) {
	assert.Greater(t, SeverityCritical.Rank(), SeveritySerious.Rank())
	assert.Greater(t, SeveritySerious.Rank(), SeverityModerate.Rank())
	assert.Greater(t, SeverityModerate.Rank(), SeverityMinor.Rank())
}

func TestSeverityFromImpact_Known(t *testing.T) {
	for _, impact := range []string{"critical", "serious", "moderate", "minor"} {
		sev, ok := SeverityFromImpact(impact)
		assert.True(t, ok, impact)
		assert.Equal(t, impact, string(sev))
	}
}

func TestSeverityFromImpact_UnknownCoercesToModerate(t *testing.T) {
	sev, ok := SeverityFromImpact("catastrophic")
	assert.False(t, ok)
	assert.Equal(t, SeverityModerate, sev)

	sev, ok = SeverityFromImpact("")
	assert.False(t, ok)
	assert.Equal(t, SeverityModerate, sev)
}

func TestMaxSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, MaxSeverity(SeverityMinor, SeverityCritical))
	assert.Equal(t, SeverityCritical, MaxSeverity(SeverityCritical, SeverityMinor))
	assert.Equal(t, SeveritySerious, MaxSeverity(SeveritySerious, SeveritySerious))
}

func TestSeverityLabel(t *testing.T) {
	assert.Equal(t, "Critical", SeverityCritical.Label())
	assert.Equal(t, "Minor", SeverityMinor.Label())
}

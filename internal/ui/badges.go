package ui

import (
	"fmt"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
)

// typeVariant maps an intelligence type to its badge. Undeclared types
// fall through to the default badge via FromString.
func typeVariant(t intel.Type) badge.Variant {
	return badge.FromString(string(t))
}

// threatVariant maps a threat level to its badge.
func threatVariant(l intel.ThreatLevel) badge.Variant {
	return badge.FromString(string(l))
}

// statusVariant maps a project lifecycle status to its badge.
func statusVariant(s intel.ProjectStatus) badge.Variant {
	return badge.FromString(string(s))
}

// healthText renders a 0..1 health score as a colored percentage.
func healthText(score float64) string {
	pct := fmt.Sprintf("%3.0f%%", score*100)
	switch {
	case score >= 0.8:
		return Styles.Title.Render(pct)
	case score >= 0.5:
		return Styles.Normal.Render(pct)
	default:
		return Styles.ErrorText.Render(pct)
	}
}

// Package badge renders short inline status labels whose appearance is
// selected from a closed set of variants. Lookup is total: any key outside
// the set, including the empty string, resolves to the default descriptor.
package badge

import "github.com/charmbracelet/lipgloss"

// Variant selects a style descriptor from the closed set below.
type Variant string

const (
	// Generic variants.
	Default     Variant = "default"
	Secondary   Variant = "secondary"
	Destructive Variant = "destructive"
	Outline     Variant = "outline"

	// Intelligence-source variants.
	SIGINT  Variant = "sigint"
	HUMINT  Variant = "humint"
	OSINT   Variant = "osint"
	TECHINT Variant = "techint"

	// Threat-level variants.
	Critical Variant = "critical"
	High     Variant = "high"
	Medium   Variant = "medium"
	Low      Variant = "low"
	Info     Variant = "info"

	// Project-status variants.
	Active      Variant = "active"
	Maintenance Variant = "maintenance"
	Deprecated  Variant = "deprecated"
	Archived    Variant = "archived"
)

// ANSI-256 color codes shared by several descriptors.
const (
	colorBadgeText  = "231" // near-white, used on saturated backgrounds
	colorInk        = "16"  // near-black, used on bright backgrounds
	colorDefaultFg  = "252"
	colorDefaultBg  = "238"
	colorSecondary  = "245"
	colorSecondBg   = "236"
	colorDestructBg = "124"
)

// styles maps every declared variant to exactly one descriptor. Descriptors
// within a semantic group (intel types, threat levels, statuses) are
// pairwise distinct so categories stay visually distinguishable.
// Horizontal padding is structural and applied in Render, not here:
// lipgloss style inheritance does not carry padding across merges.
var styles = map[Variant]lipgloss.Style{
	Default:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorDefaultFg)).Background(lipgloss.Color(colorDefaultBg)),
	Secondary:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondary)).Background(lipgloss.Color(colorSecondBg)),
	Destructive: lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color(colorDestructBg)).Bold(true),
	Outline:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorDefaultFg)).Underline(true),

	SIGINT:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Background(lipgloss.Color("24")),
	HUMINT:  lipgloss.NewStyle().Foreground(lipgloss.Color("185")).Background(lipgloss.Color("58")),
	OSINT:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Background(lipgloss.Color("22")),
	TECHINT: lipgloss.NewStyle().Foreground(lipgloss.Color("183")).Background(lipgloss.Color("54")),

	Critical: lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color("160")).Bold(true),
	High:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color("166")),
	Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorInk)).Background(lipgloss.Color("178")),
	Low:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color("28")),
	Info:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color("31")),

	Active:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorInk)).Background(lipgloss.Color("84")),
	Maintenance: lipgloss.NewStyle().Foreground(lipgloss.Color(colorInk)).Background(lipgloss.Color("214")),
	Deprecated:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorBadgeText)).Background(lipgloss.Color("203")),
	Archived:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("240")),
}

// Variants lists the declared variants in a stable order.
func Variants() []Variant {
	return []Variant{
		Default, Secondary, Destructive, Outline,
		SIGINT, HUMINT, OSINT, TECHINT,
		Critical, High, Medium, Low, Info,
		Active, Maintenance, Deprecated, Archived,
	}
}

// Declared reports whether v is in the closed variant set.
func Declared(v Variant) bool {
	_, ok := styles[v]
	return ok
}

// FromString maps an arbitrary category key onto a variant. Keys outside
// the closed set map to Default; this is how domain enums (intel types,
// threat levels, project statuses) select their badge without the caller
// handling unknown values.
func FromString(s string) Variant {
	if Declared(Variant(s)) {
		return Variant(s)
	}
	return Default
}

// StyleFor returns the descriptor for v, falling back to the Default
// descriptor for any undeclared key. It never fails.
func StyleFor(v Variant) lipgloss.Style {
	if s, ok := styles[v]; ok {
		return s
	}
	return styles[Default]
}

// Render produces the styled label with one column of padding either side.
// Overrides are merged after the variant descriptor, so caller-supplied
// attributes win on conflict; later overrides win over earlier ones.
func Render(v Variant, content string, overrides ...lipgloss.Style) string {
	style := StyleFor(v)
	for _, o := range overrides {
		style = o.Inherit(style)
	}
	return style.Render(" " + content + " ")
}

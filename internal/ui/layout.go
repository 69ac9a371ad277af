package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/route"
	"cerebro/internal/ui/textutil"
)

// navEntry is one tab in the header. Only top-level routes appear; the
// project detail route is reached from the projects page, not the header.
type navEntry struct {
	Label string
	Path  string
}

var navEntries = []navEntry{
	{Label: "Overview", Path: "/"},
	{Label: "Projects", Path: "/projects"},
	{Label: "Intelligence", Path: "/intelligence"},
	{Label: "Briefing", Path: "/briefing"},
	{Label: "Settings", Path: "/settings"},
}

// Chrome is the persistent shell around the active page: header with nav
// tabs, the page body, the toast surface, and a footer hint bar. It is
// built once and never torn down across navigations.
type Chrome struct {
	Width  int
	Height int
}

// Header renders the nav bar with the tab for activePath highlighted. A
// detail path highlights its section tab (e.g. /projects/alpha highlights
// Projects).
func (c *Chrome) Header(activePath string) string {
	var tabs []string
	tabs = append(tabs, Styles.Title.Render(" CEREBRO "))
	for _, e := range navEntries {
		style := Styles.TabInactive
		if tabActive(e.Path, activePath) {
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(e.Label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if c.Width > 0 {
		bar = Styles.HeaderBar.Width(c.Width).Render(bar)
	}
	return bar
}

// tabActive reports whether the tab at tabPath should highlight for the
// current path. The root tab matches only exactly; other tabs also match
// their subpaths.
func tabActive(tabPath, activePath string) bool {
	if tabPath == "/" {
		return activePath == "/"
	}
	return activePath == tabPath || strings.HasPrefix(activePath, tabPath+"/")
}

// Footer renders the hint bar.
func (c *Chrome) Footer(hint string) string {
	if c.Width > 0 {
		hint = textutil.PadRight(hint, c.Width)
		return Styles.FooterBar.Render(hint)
	}
	return Styles.FooterBar.Render(hint)
}

// Compose stacks header, page body, toasts, and footer. The page body is
// given the leftover vertical space so the footer stays on the last row.
func (c *Chrome) Compose(activePath, body, toasts, hint string) string {
	header := c.Header(activePath)
	footer := c.Footer(hint)

	if c.Height > 0 {
		used := lipgloss.Height(header) + lipgloss.Height(footer)
		if toasts != "" {
			used += lipgloss.Height(toasts)
		}
		if avail := c.Height - used; avail > 0 {
			body = lipgloss.NewStyle().Height(avail).MaxHeight(avail).Render(body)
		}
	}

	parts := []string{header, body}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// NavPaths returns the header tab paths in display order.
func NavPaths() []string {
	paths := make([]string, len(navEntries))
	for i, e := range navEntries {
		paths[i] = e.Path
	}
	return paths
}

// validateNavEntries checks that every header tab points at a declared
// route. Called once at startup.
func validateNavEntries(t *route.Table) bool {
	for _, e := range navEntries {
		if _, ok := t.Resolve(e.Path); !ok {
			return false
		}
	}
	return true
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/intel"
)

// DashboardPage is the overview: ecosystem totals and overall health.
type DashboardPage struct {
	status  intel.EcosystemStatus
	loaded  bool
	loadErr error
	spinner spinner.Model
	width   int
}

var _ View = (*DashboardPage)(nil)

func NewDashboardPage() *DashboardPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &DashboardPage{spinner: s}
}

// Init implements View.
func (p *DashboardPage) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View.
func (p *DashboardPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil
	case spinner.TickMsg:
		if p.loaded || p.loadErr != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case StatusLoadedMsg:
		p.loaded = msg.Err == nil
		p.loadErr = msg.Err
		p.status = msg.Status
		return p, nil
	}
	return p, nil
}

// View implements View.
func (p *DashboardPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Ecosystem Overview"))
	b.WriteString("\n\n")

	if p.loadErr != nil {
		b.WriteString(Styles.ErrorText.Render("backend unavailable: " + p.loadErr.Error()))
		return b.String()
	}
	if !p.loaded {
		b.WriteString(p.spinner.View() + Styles.Muted.Render(" loading…"))
		return b.String()
	}

	s := p.status
	rows := []struct {
		label string
		value string
	}{
		{"Projects", fmt.Sprintf("%d (%d active)", s.TotalProjects, s.ActiveProjects)},
		{"Intelligence", fmt.Sprintf("%d items", s.TotalIntelligence)},
		{"Health", healthText(s.HealthScore)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Styles.Section.Render(fmt.Sprintf("%-14s", r.label)),
			r.value))
	}
	if s.LastScan != nil {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render("  last scan " + s.LastScan.Format("2006-01-02 15:04")))
	}
	return b.String()
}

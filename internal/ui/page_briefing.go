package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
)

// BriefingPage renders the daily situation report.
type BriefingPage struct {
	briefing intel.Briefing
	loaded   bool
	loadErr  error
	spinner  spinner.Model
}

var _ View = (*BriefingPage)(nil)

func NewBriefingPage() *BriefingPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &BriefingPage{spinner: s}
}

// Init implements View.
func (p *BriefingPage) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View.
func (p *BriefingPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if p.loaded || p.loadErr != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case BriefingLoadedMsg:
		p.loaded = msg.Err == nil
		p.loadErr = msg.Err
		p.briefing = msg.Briefing
		return p, nil
	}
	return p, nil
}

// View implements View.
func (p *BriefingPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Daily Briefing"))
	b.WriteString("\n\n")

	if p.loadErr != nil {
		b.WriteString(Styles.ErrorText.Render("backend unavailable: " + p.loadErr.Error()))
		return b.String()
	}
	if !p.loaded {
		b.WriteString(p.spinner.View() + Styles.Muted.Render(" loading…"))
		return b.String()
	}

	br := p.briefing
	b.WriteString(Styles.Muted.Render("  " + br.Date.Format("Monday, January 2 2006")))
	b.WriteString("\n\n")
	if br.Headline != "" {
		b.WriteString("  " + Styles.Section.Render(br.Headline) + "\n\n")
	}
	if len(br.Sections) == 0 {
		b.WriteString(Styles.Empty.Render("  nothing to report"))
		return b.String()
	}

	for _, sec := range br.Sections {
		b.WriteString("  ")
		b.WriteString(badge.Render(threatVariant(sec.Level), string(sec.Level)))
		b.WriteString(" " + Styles.Section.Render(sec.Title) + "\n")
		for _, line := range sec.Items {
			b.WriteString("    " + Styles.Normal.Render(line) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

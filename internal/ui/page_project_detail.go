package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
	"cerebro/internal/ui/textutil"
)

// ProjectDetailPage shows one project. The name comes from the route
// parameter; the rest arrives with ProjectLoadedMsg.
type ProjectDetailPage struct {
	name    string
	project intel.Project
	loaded  bool
	loadErr error
	spinner spinner.Model
	width   int
}

var _ View = (*ProjectDetailPage)(nil)

func NewProjectDetailPage(name string) *ProjectDetailPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &ProjectDetailPage{name: name, spinner: s}
}

// Name returns the project this page was mounted for.
func (p *ProjectDetailPage) Name() string {
	return p.name
}

// Init implements View.
func (p *ProjectDetailPage) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View.
func (p *ProjectDetailPage) Update(msg tea.Msg) (View, tea.Cmd) {
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
	case ProjectLoadedMsg:
		if msg.Name != p.name {
			return p, nil
		}
		p.loaded = msg.Err == nil
		p.loadErr = msg.Err
		p.project = msg.Project
		return p, nil
	}
	return p, nil
}

// View implements View.
func (p *ProjectDetailPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(p.name))

	if p.loadErr != nil {
		b.WriteString("\n\n")
		b.WriteString(Styles.ErrorText.Render("backend unavailable: " + p.loadErr.Error()))
		return b.String()
	}
	if !p.loaded {
		b.WriteString("\n\n")
		b.WriteString(p.spinner.View() + Styles.Muted.Render(" loading…"))
		return b.String()
	}

	pr := p.project
	b.WriteString("  ")
	b.WriteString(badge.Render(statusVariant(pr.Status), string(pr.Status)))
	b.WriteString("\n\n")

	if pr.Description != "" {
		desc := pr.Description
		if p.width > 4 {
			desc = textutil.Truncate(desc, p.width-4)
		}
		b.WriteString("  " + Styles.Normal.Render(desc) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s\n", Styles.Section.Render("Health      "), healthText(pr.HealthScore)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Styles.Section.Render("Path        "), Styles.Muted.Render(pr.Path)))
	if len(pr.Languages) > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", Styles.Section.Render("Languages   "), strings.Join(pr.Languages, ", ")))
	}
	if pr.LastCommit != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", Styles.Section.Render("Last commit "), pr.LastCommit.Format("2006-01-02 15:04")))
	}
	b.WriteString(fmt.Sprintf("  %s %d\n", Styles.Section.Render("Intelligence"), pr.IntelligenceCount))

	if len(pr.Dependencies) > 0 {
		b.WriteString("\n" + Styles.Section.Render("  Depends on") + "\n")
		for _, d := range pr.Dependencies {
			b.WriteString("    " + Styles.Normal.Render(d) + "\n")
		}
	}
	if len(pr.Dependents) > 0 {
		b.WriteString("\n" + Styles.Section.Render("  Depended on by") + "\n")
		for _, d := range pr.Dependents {
			b.WriteString("    " + Styles.Normal.Render(d) + "\n")
		}
	}
	return b.String()
}

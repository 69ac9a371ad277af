package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
)

// projectItem adapts a project to the list component.
type projectItem struct {
	intel.Project
}

func (p projectItem) FilterValue() string { return p.Name }

func (p projectItem) Title() string {
	return fmt.Sprintf("%s  %s", p.Name, badge.Render(statusVariant(p.Status), string(p.Status)))
}

func (p projectItem) Description() string {
	return fmt.Sprintf("health %.0f%% · %d intel", p.HealthScore*100, p.IntelligenceCount)
}

// ProjectsPage lists tracked projects. Enter opens the detail page for
// the selected project.
type ProjectsPage struct {
	list    list.Model
	loaded  bool
	loadErr error
	spinner spinner.Model
}

var _ View = (*ProjectsPage)(nil)

func NewProjectsPage() *ProjectsPage {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight))
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText))
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Projects"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &ProjectsPage{list: l, spinner: s}
}

// Selected returns the name of the highlighted project, or "".
func (p *ProjectsPage) Selected() string {
	item, ok := p.list.SelectedItem().(projectItem)
	if !ok {
		return ""
	}
	return item.Name
}

// Init implements View.
func (p *ProjectsPage) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements View.
func (p *ProjectsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetWidth(msg.Width)
		p.list.SetHeight(msg.Height)
		return p, nil
	case spinner.TickMsg:
		if p.loaded || p.loadErr != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	case ProjectsLoadedMsg:
		p.loaded = msg.Err == nil
		p.loadErr = msg.Err
		items := make([]list.Item, len(msg.Projects))
		for i, pr := range msg.Projects {
			items[i] = projectItem{pr}
		}
		return p, p.list.SetItems(items)
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if name := p.Selected(); name != "" {
				return p, func() tea.Msg {
					return NavigateMsg{Path: "/projects/" + name}
				}
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View implements View.
func (p *ProjectsPage) View() string {
	if p.loadErr != nil {
		return Styles.Title.Render("Projects") + "\n\n" +
			Styles.ErrorText.Render("backend unavailable: "+p.loadErr.Error())
	}
	if !p.loaded {
		return Styles.Title.Render("Projects") + "\n\n" +
			p.spinner.View() + Styles.Muted.Render(" loading…")
	}
	if len(p.list.Items()) == 0 {
		return Styles.Title.Render("Projects") + "\n\n" +
			Styles.Empty.Render("no projects tracked")
	}
	return p.list.View()
}

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"cerebro/internal/api"
)

// Data loads run as Bubble Tea commands so pages mount instantly and fill
// in when the backend answers. Each command resolves to its Loaded msg;
// errors travel inside the msg and surface as toasts at the app level.

func loadStatusCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		status, err := c.Status(context.Background())
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

func loadProjectsCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		projects, err := c.Projects(context.Background())
		return ProjectsLoadedMsg{Projects: projects, Err: err}
	}
}

func loadProjectCmd(c *api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		project, err := c.Project(context.Background(), name)
		return ProjectLoadedMsg{Name: name, Project: project, Err: err}
	}
}

func loadIntelCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.Intelligence(context.Background())
		return IntelLoadedMsg{Items: items, Err: err}
	}
}

func loadBriefingCmd(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		briefing, err := c.Briefing(context.Background())
		return BriefingLoadedMsg{Briefing: briefing, Err: err}
	}
}

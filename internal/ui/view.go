package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: one routed page with its own model,
// update, and view. Exactly one View is mounted inside the chrome at a
// time; the app swaps Views on navigation and never reuses a torn-down one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

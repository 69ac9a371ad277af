package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// NotFoundPage is mounted when the current path matches no declared
// route. The shell stays up; esc goes back.
type NotFoundPage struct {
	path string
}

var _ View = (*NotFoundPage)(nil)

func NewNotFoundPage(path string) *NotFoundPage {
	return &NotFoundPage{path: path}
}

// Path returns the unresolvable path this page was mounted for.
func (p *NotFoundPage) Path() string {
	return p.path
}

// Init implements View.
func (p *NotFoundPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *NotFoundPage) Update(msg tea.Msg) (View, tea.Cmd) {
	return p, nil
}

// View implements View.
func (p *NotFoundPage) View() string {
	return Styles.Title.Render("Not Found") + "\n\n" +
		Styles.ErrorText.Render(fmt.Sprintf("  no view for path %q", p.path)) + "\n\n" +
		Styles.Hint.Render("  press esc to go back")
}

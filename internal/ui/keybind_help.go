package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC,
// filtered by the current route. In leader mode with a buffer (e.g.
// "SPC g") it shows that submenu's hints.
func RenderKeybindHelp(keyHandler *KeyHandler, routeName string) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq, routeName)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	content := Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
	return boxStyle.Render(content)
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cerebro/internal/badge"
	"cerebro/internal/config"
)

// demoToasts are raised by the r key so users can preview the
// notification surface with the configured TTL.
var demoToasts = []struct {
	text    string
	variant badge.Variant
}{
	{"sample notification", badge.Info},
	{"sample warning", badge.High},
	{"sample failure", badge.Destructive},
}

// SettingsPage shows the effective configuration. Values are read-only;
// editing happens in the config file or environment.
type SettingsPage struct {
	cfg      config.Config
	demoNext int
}

var _ View = (*SettingsPage)(nil)

func NewSettingsPage(cfg config.Config) *SettingsPage {
	return &SettingsPage{cfg: cfg}
}

// Init implements View.
func (p *SettingsPage) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *SettingsPage) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
		demo := demoToasts[p.demoNext%len(demoToasts)]
		p.demoNext++
		return p, func() tea.Msg {
			return ShowToastMsg{Text: demo.text, Variant: demo.variant}
		}
	}
	return p, nil
}

// View implements View.
func (p *SettingsPage) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	telemetry := p.cfg.Telemetry.Endpoint
	if telemetry == "" {
		telemetry = "disabled"
	}
	logFile := p.cfg.Log.File
	if logFile == "" {
		logFile = "disabled"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Backend", p.cfg.API.BaseURL},
		{"Timeout", p.cfg.API.Timeout.String()},
		{"Refresh", p.cfg.UI.RefreshInterval.String()},
		{"Toast TTL", p.cfg.UI.ToastTTL.String()},
		{"Telemetry", telemetry},
		{"Log file", logFile},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Styles.Section.Render(fmt.Sprintf("%-10s", r.label)),
			Styles.Normal.Render(r.value)))
	}
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("  edit ~/.config/cerebro/config.toml or set CEREBRO_* env vars"))
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("  r: preview a toast"))
	return b.String()
}

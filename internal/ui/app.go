package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cerebro/internal/api"
	"cerebro/internal/badge"
	"cerebro/internal/config"
	"cerebro/internal/route"
	"cerebro/internal/telemetry"
)

// ReloadMsg asks the app to refetch the current page's data.
type ReloadMsg struct{}

// chromeRows is the vertical space the header and footer take away from
// the page body.
const chromeRows = 2

// NewRouteTable declares every navigable location in the dashboard.
// Declaration order is match order.
func NewRouteTable() (*route.Table, error) {
	return route.NewTable(
		route.Route{Pattern: "/", Name: route.NameDashboard},
		route.Route{Pattern: "/projects", Name: route.NameProjects},
		route.Route{Pattern: "/projects/{projectName}", Name: route.NameProjectDetail},
		route.Route{Pattern: "/intelligence", Name: route.NameIntelligence},
		route.Route{Pattern: "/briefing", Name: route.NameBriefing},
		route.Route{Pattern: "/settings", Name: route.NameSettings},
	)
}

// AppModel is the root model. It owns the route table, the navigation
// state, and the persistent chrome; the active page is swapped on
// navigation while everything else survives.
type AppModel struct {
	routes *route.Table
	nav    *route.NavigationState
	chrome Chrome
	toasts *ToastStack
	keys   *KeyHandler

	client *api.Client
	tracer *telemetry.Tracer
	logger *zap.Logger
	cfg    config.Config

	page      View
	routeName string
	mountedAt time.Time
}

var _ tea.Model = (*AppModel)(nil)

// NewApp wires the dashboard together. The initial path comes from
// configuration; an unmatched initial path mounts the not-found page
// rather than failing.
func NewApp(cfg config.Config, client *api.Client, tracer *telemetry.Tracer, logger *zap.Logger) (*AppModel, error) {
	routes, err := NewRouteTable()
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	if !validateNavEntries(routes) {
		return nil, fmt.Errorf("header tab points at undeclared route")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &AppModel{
		routes: routes,
		nav:    route.NewNavigationState(routes, cfg.UI.InitialPath),
		toasts: NewToastStack(cfg.UI.ToastTTL),
		client: client,
		tracer: tracer,
		logger: logger,
		cfg:    cfg,
	}
	a.keys = NewKeyHandler(a.buildKeybinds())

	m, ok := a.nav.Current()
	a.page, _ = a.pageFor(m, ok)
	a.routeName = m.Route.Name
	a.mountedAt = time.Now()
	return a, nil
}

// buildKeybinds registers global navigation. SPC g opens the Go submenu;
// the digit keys jump straight to a header tab.
func (a *AppModel) buildKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()

	nav := func(path string) tea.Cmd {
		return func() tea.Msg { return NavigateMsg{Path: path} }
	}

	reg.BindWithDesc("SPC g d", nav("/"), "Overview")
	reg.BindWithDesc("SPC g p", nav("/projects"), "Projects")
	reg.BindWithDesc("SPC g i", nav("/intelligence"), "Intelligence")
	reg.BindWithDesc("SPC g b", nav("/briefing"), "Briefing")
	reg.BindWithDesc("SPC g s", nav("/settings"), "Settings")
	reg.BindWithDesc("SPC r", func() tea.Msg { return ReloadMsg{} }, "Reload")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	for i, path := range NavPaths() {
		reg.Bind(fmt.Sprintf("%d", i+1), nav(path))
	}

	return reg
}

// Init implements tea.Model.
func (a *AppModel) Init() tea.Cmd {
	m, ok := a.nav.Current()
	_, load := a.pageFor(m, ok)
	return tea.Batch(a.page.Init(), load)
}

// Update implements tea.Model.
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.chrome.Width = msg.Width
		a.chrome.Height = msg.Height
		return a, a.forward(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - chromeRows - a.toasts.Len(),
		})

	case tea.KeyMsg:
		if consumed, cmd := a.keys.Handle(msg); consumed {
			return a, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "esc":
			return a, func() tea.Msg { return BackMsg{} }
		}
		return a, a.forward(msg)

	case NavigateMsg:
		prev := a.nav.Path()
		if route.Normalize(msg.Path) == prev {
			return a, nil
		}
		m, ok := a.nav.Navigate(msg.Path)
		return a, a.mount(prev, m, ok)

	case BackMsg:
		prev := a.nav.Path()
		m, ok := a.nav.Back()
		if !ok {
			return a, nil
		}
		return a, a.mount(prev, m, true)

	case ReloadMsg:
		m, ok := a.nav.Current()
		_, load := a.pageFor(m, ok)
		return a, load

	case ShowToastMsg:
		_, cmd := a.toasts.Push(msg.Text, msg.Variant)
		return a, cmd

	case ExpireToastMsg:
		a.toasts.Expire(msg.ID)
		return a, nil

	case StatusLoadedMsg:
		return a, a.handleLoaded("status", msg.Err, msg)
	case ProjectsLoadedMsg:
		return a, a.handleLoaded("projects", msg.Err, msg)
	case ProjectLoadedMsg:
		return a, a.handleLoaded("project "+msg.Name, msg.Err, msg)
	case IntelLoadedMsg:
		return a, a.handleLoaded("intelligence", msg.Err, msg)
	case BriefingLoadedMsg:
		return a, a.handleLoaded("briefing", msg.Err, msg)
	}

	return a, a.forward(msg)
}

// View implements tea.Model.
func (a *AppModel) View() string {
	body := a.page.View()
	if a.keys.LeaderWaiting {
		body += "\n" + RenderKeybindHelp(a.keys, a.routeName)
	}
	return a.chrome.Compose(a.nav.Path(), body, a.toasts.View(), a.hint())
}

// forward passes a message to the active page and keeps the returned view.
func (a *AppModel) forward(msg tea.Msg) tea.Cmd {
	v, cmd := a.page.Update(msg)
	a.page = v
	return cmd
}

// mount swaps the active page for the resolved match. The outgoing page's
// active time becomes a navigation span, attributed to the path and route
// that were just left; the incoming page is initialized and its data load
// kicked off.
func (a *AppModel) mount(prevPath string, m route.Match, ok bool) tea.Cmd {
	now := time.Now()
	a.tracer.Navigation(prevPath, a.routeName, a.mountedAt, now)
	a.logger.Info("navigate",
		zap.String("from", prevPath),
		zap.String("path", m.Path),
		zap.String("route", m.Route.Name),
		zap.Bool("matched", ok),
	)

	page, load := a.pageFor(m, ok)
	a.page = page
	a.routeName = m.Route.Name
	a.mountedAt = now

	cmds := []tea.Cmd{page.Init(), load}
	if a.chrome.Width > 0 {
		cmds = append(cmds, a.forward(tea.WindowSizeMsg{
			Width:  a.chrome.Width,
			Height: a.chrome.Height - chromeRows - a.toasts.Len(),
		}))
	}
	return tea.Batch(cmds...)
}

// pageFor maps a resolved route to its page view and the command that
// loads its data. Unmatched paths get the not-found page.
func (a *AppModel) pageFor(m route.Match, ok bool) (View, tea.Cmd) {
	if !ok {
		return NewNotFoundPage(m.Path), nil
	}
	switch m.Route.Name {
	case route.NameDashboard:
		return NewDashboardPage(), loadStatusCmd(a.client)
	case route.NameProjects:
		return NewProjectsPage(), loadProjectsCmd(a.client)
	case route.NameProjectDetail:
		name := m.Param("projectName")
		return NewProjectDetailPage(name), loadProjectCmd(a.client, name)
	case route.NameIntelligence:
		return NewIntelligencePage(), loadIntelCmd(a.client)
	case route.NameBriefing:
		return NewBriefingPage(), loadBriefingCmd(a.client)
	case route.NameSettings:
		return NewSettingsPage(a.cfg), nil
	}
	return NewNotFoundPage(m.Path), nil
}

// handleLoaded forwards a data message to the page. A failed fetch is
// also logged and raised as a toast; the page sees the error too so it
// can leave its loading state.
func (a *AppModel) handleLoaded(what string, err error, msg tea.Msg) tea.Cmd {
	cmd := a.forward(msg)
	if err == nil {
		return cmd
	}
	a.logger.Warn("load failed", zap.String("what", what), zap.Error(err))
	_, toast := a.toasts.Push("failed to load "+what, badge.Destructive)
	return tea.Batch(cmd, toast)
}

// hint is the footer help line.
func (a *AppModel) hint() string {
	if a.keys.LeaderWaiting {
		return " SPC …"
	}
	return " SPC go · 1-5 tabs · esc back · q quit"
}

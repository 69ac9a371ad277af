package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cerebro/internal/intel"
)

func loadedProjectsPage(t *testing.T, projects []intel.Project) *ProjectsPage {
	t.Helper()
	p := NewProjectsPage()
	v, _ := p.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	v, _ = v.Update(ProjectsLoadedMsg{Projects: projects})
	return v.(*ProjectsPage)
}

func TestProjectsPage_EnterNavigatesToSelected(t *testing.T) {
	p := loadedProjectsPage(t, []intel.Project{
		{Name: "phantom", Status: intel.StatusActive},
		{Name: "spectre", Status: intel.StatusMaintenance},
	})

	if p.Selected() != "phantom" {
		t.Fatalf("initial selection = %q", p.Selected())
	}

	_, cmd := p.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected command from enter")
	}
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Path != "/projects/phantom" {
		t.Errorf("enter produced %#v, want NavigateMsg{/projects/phantom}", msg)
	}
}

func TestProjectsPage_EnterOnEmptyListIsNoop(t *testing.T) {
	p := loadedProjectsPage(t, nil)
	_, cmd := p.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("enter with no projects must not navigate")
	}
	if !strings.Contains(p.View(), "no projects tracked") {
		t.Error("expected empty state text")
	}
}

func TestProjectsPage_ShowsErrorState(t *testing.T) {
	p := NewProjectsPage()
	v, _ := p.Update(ProjectsLoadedMsg{Err: errTest})
	if !strings.Contains(v.View(), "backend unavailable") {
		t.Error("expected error state in view")
	}
}

func TestProjectsPage_ListNavigation(t *testing.T) {
	p := loadedProjectsPage(t, []intel.Project{
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"},
	})

	v, _ := p.Update(keyMsg("j"))
	p = v.(*ProjectsPage)
	if p.Selected() != "beta" {
		t.Errorf("selection after j = %q, want beta", p.Selected())
	}
	v, _ = p.Update(keyMsg("k"))
	p = v.(*ProjectsPage)
	if p.Selected() != "alpha" {
		t.Errorf("selection after k = %q, want alpha", p.Selected())
	}
}

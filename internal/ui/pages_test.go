package ui

import (
	"strings"
	"testing"
	"time"

	"cerebro/internal/config"
	"cerebro/internal/intel"
)

func TestDashboardPage_RendersStatus(t *testing.T) {
	scan := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	p := NewDashboardPage()
	v, _ := p.Update(StatusLoadedMsg{Status: intel.EcosystemStatus{
		TotalProjects:     12,
		ActiveProjects:    7,
		TotalIntelligence: 340,
		HealthScore:       0.91,
		LastScan:          &scan,
	}})

	out := v.View()
	for _, want := range []string{"12 (7 active)", "340 items", "91%", "2026-08-30"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardPage_LoadingState(t *testing.T) {
	p := NewDashboardPage()
	if !strings.Contains(p.View(), "loading") {
		t.Error("expected loading state before data arrives")
	}
}

func TestProjectDetailPage_IgnoresOtherProjects(t *testing.T) {
	p := NewProjectDetailPage("phantom")
	v, _ := p.Update(ProjectLoadedMsg{Name: "spectre", Project: intel.Project{Name: "spectre"}})
	p = v.(*ProjectDetailPage)
	if p.loaded {
		t.Error("detail page must ignore loads for other projects")
	}
}

func TestProjectDetailPage_RendersProject(t *testing.T) {
	p := NewProjectDetailPage("phantom")
	v, _ := p.Update(ProjectLoadedMsg{Name: "phantom", Project: intel.Project{
		Name:              "phantom",
		Path:              "/srv/phantom",
		Description:       "ghost protocol service",
		Status:            intel.StatusActive,
		HealthScore:       0.85,
		Languages:         []string{"go", "rust"},
		Dependencies:      []string{"spectre"},
		IntelligenceCount: 9,
	}})

	out := v.View()
	for _, want := range []string{"phantom", "active", "85%", "ghost protocol", "go, rust", "spectre"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBriefingPage_RendersSections(t *testing.T) {
	p := NewBriefingPage()
	v, _ := p.Update(BriefingLoadedMsg{Briefing: intel.Briefing{
		Date:     time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC),
		Headline: "all quiet",
		Sections: []intel.BriefingSection{
			{Title: "Threats", Level: intel.ThreatHigh, Items: []string{"dependency CVE in spectre"}},
		},
	}})

	out := v.View()
	for _, want := range []string{"all quiet", "Threats", "high", "dependency CVE"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBriefingPage_EmptyReport(t *testing.T) {
	p := NewBriefingPage()
	v, _ := p.Update(BriefingLoadedMsg{Briefing: intel.Briefing{Date: time.Now()}})
	if !strings.Contains(v.View(), "nothing to report") {
		t.Error("expected empty report text")
	}
}

func TestSettingsPage_RendersConfig(t *testing.T) {
	cfg := config.Config{}
	cfg.API.BaseURL = "http://backend:9000"
	cfg.API.Timeout = 10 * time.Second
	cfg.UI.RefreshInterval = 30 * time.Second
	cfg.UI.ToastTTL = 4 * time.Second

	out := NewSettingsPage(cfg).View()
	for _, want := range []string{"http://backend:9000", "10s", "30s", "4s", "disabled"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSettingsPage_RRaisesPreviewToast(t *testing.T) {
	p := NewSettingsPage(config.Config{})

	seen := make(map[string]bool)
	for i := 0; i < len(demoToasts)+1; i++ {
		_, cmd := p.Update(keyMsg("r"))
		if cmd == nil {
			t.Fatalf("press %d: expected a toast command from r", i)
		}
		toast, ok := cmd().(ShowToastMsg)
		if !ok {
			t.Fatalf("press %d: expected ShowToastMsg, got %T", i, cmd())
		}
		seen[toast.Text] = true
	}
	// Repeated presses cycle through the preview set.
	if len(seen) != len(demoToasts) {
		t.Errorf("saw %d distinct toasts, want %d", len(seen), len(demoToasts))
	}

	_, cmd := p.Update(keyMsg("x"))
	if cmd != nil {
		t.Error("other keys must not raise toasts")
	}
}

func TestNotFoundPage_NamesThePath(t *testing.T) {
	out := NewNotFoundPage("/missing").View()
	if !strings.Contains(out, `no view for path "/missing"`) {
		t.Errorf("view = %q", out)
	}
}

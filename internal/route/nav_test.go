package route

import "testing"

func TestNavigationStateNavigateAndBack(t *testing.T) {
	tbl := testTable(t)
	nav := NewNavigationState(tbl, "/")

	if nav.Path() != "/" {
		t.Fatalf("initial path = %q", nav.Path())
	}

	m, ok := nav.Navigate("/settings")
	if !ok || m.Route.Name != NameSettings {
		t.Fatalf("Navigate(/settings) = %q ok=%v", m.Route.Name, ok)
	}
	if nav.HistoryLen() != 1 {
		t.Errorf("history len = %d, want 1", nav.HistoryLen())
	}

	nav.Navigate("/projects/alpha")

	m, ok = nav.Back()
	if !ok || m.Route.Name != NameSettings {
		t.Errorf("Back() = %q ok=%v, want settings", m.Route.Name, ok)
	}
	m, ok = nav.Back()
	if !ok || m.Route.Name != NameDashboard {
		t.Errorf("Back() = %q ok=%v, want dashboard", m.Route.Name, ok)
	}

	// Back with empty history leaves the location unchanged.
	if _, ok := nav.Back(); ok {
		t.Error("Back() on empty history reported ok")
	}
	if nav.Path() != "/" {
		t.Errorf("path after exhausted Back = %q", nav.Path())
	}
}

func TestNavigationStateSamePathNoHistory(t *testing.T) {
	tbl := testTable(t)
	nav := NewNavigationState(tbl, "/briefing")

	nav.Navigate("/briefing")
	nav.Navigate("/briefing/")
	if nav.HistoryLen() != 0 {
		t.Errorf("history len = %d after same-path navigations, want 0", nav.HistoryLen())
	}
}

func TestNavigationStateUnmatchedCurrent(t *testing.T) {
	tbl := testTable(t)
	nav := NewNavigationState(tbl, "/")

	_, ok := nav.Navigate("/nope")
	if ok {
		t.Fatal("expected unmatched navigation")
	}
	if _, matched := nav.Current(); matched {
		t.Error("Current() reports matched for unmatched path")
	}
	if nav.Path() != "/nope" {
		t.Errorf("path = %q, want /nope", nav.Path())
	}

	// Back still works from an unmatched location.
	m, ok := nav.Back()
	if !ok || m.Route.Name != NameDashboard {
		t.Errorf("Back() = %q ok=%v, want dashboard", m.Route.Name, ok)
	}
}

func TestNavigationHistoryBounded(t *testing.T) {
	tbl := testTable(t)
	nav := NewNavigationState(tbl, "/")

	paths := []string{"/projects", "/intelligence", "/briefing", "/settings"}
	for i := 0; i < 40; i++ {
		for _, p := range paths {
			nav.Navigate(p)
		}
	}
	if nav.HistoryLen() > maxHistory {
		t.Errorf("history len = %d, want <= %d", nav.HistoryLen(), maxHistory)
	}
}

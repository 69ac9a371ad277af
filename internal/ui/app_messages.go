package ui

import (
	"github.com/google/uuid"

	"cerebro/internal/badge"
	"cerebro/internal/intel"
)

// NavigateMsg asks the app to make path the current location. Pages emit
// this instead of resolving paths themselves.
type NavigateMsg struct {
	Path string
}

// BackMsg asks the app to return to the previous location.
type BackMsg struct{}

// ShowToastMsg raises a notification on the global toast surface.
type ShowToastMsg struct {
	Text    string
	Variant badge.Variant
}

// ExpireToastMsg removes a toast after its TTL.
type ExpireToastMsg struct {
	ID uuid.UUID
}

// StatusLoadedMsg carries the ecosystem summary for the overview page.
type StatusLoadedMsg struct {
	Status intel.EcosystemStatus
	Err    error
}

// ProjectsLoadedMsg carries the project list.
type ProjectsLoadedMsg struct {
	Projects []intel.Project
	Err      error
}

// ProjectLoadedMsg carries one project for the detail page.
type ProjectLoadedMsg struct {
	Name    string
	Project intel.Project
	Err     error
}

// IntelLoadedMsg carries the intelligence feed.
type IntelLoadedMsg struct {
	Items []intel.Item
	Err   error
}

// BriefingLoadedMsg carries the daily briefing.
type BriefingLoadedMsg struct {
	Briefing intel.Briefing
	Err      error
}

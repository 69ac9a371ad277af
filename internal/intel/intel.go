// Package intel defines the CEREBRO domain model: intelligence items,
// projects, and the ecosystem summary served by the backend API.
package intel

import "time"

// Type classifies where a piece of intelligence came from.
type Type string

const (
	TypeSIGINT  Type = "sigint"  // signals: logs, metrics, events
	TypeHUMINT  Type = "humint"  // human: ADRs, docs, decisions
	TypeOSINT   Type = "osint"   // open source: code, configs
	TypeTECHINT Type = "techint" // technical: deps, architecture
)

// Types lists all declared intelligence types in display order.
func Types() []Type {
	return []Type{TypeSIGINT, TypeHUMINT, TypeOSINT, TypeTECHINT}
}

// Valid reports whether t is a declared intelligence type.
func (t Type) Valid() bool {
	switch t {
	case TypeSIGINT, TypeHUMINT, TypeOSINT, TypeTECHINT:
		return true
	}
	return false
}

// ThreatLevel is the priority assigned to an intelligence item.
type ThreatLevel string

const (
	ThreatCritical ThreatLevel = "critical"
	ThreatHigh     ThreatLevel = "high"
	ThreatMedium   ThreatLevel = "medium"
	ThreatLow      ThreatLevel = "low"
	ThreatInfo     ThreatLevel = "info"
)

// Rank orders threat levels for sorting; lower is more urgent.
// Unknown levels sort after all declared ones.
func (l ThreatLevel) Rank() int {
	switch l {
	case ThreatCritical:
		return 0
	case ThreatHigh:
		return 1
	case ThreatMedium:
		return 2
	case ThreatLow:
		return 3
	case ThreatInfo:
		return 4
	}
	return 5
}

// Valid reports whether l is a declared threat level.
func (l ThreatLevel) Valid() bool {
	return l.Rank() < 5
}

// ProjectStatus is the lifecycle state of a project in the ecosystem.
type ProjectStatus string

const (
	StatusActive      ProjectStatus = "active"
	StatusMaintenance ProjectStatus = "maintenance"
	StatusDeprecated  ProjectStatus = "deprecated"
	StatusArchived    ProjectStatus = "archived"
	StatusUnknown     ProjectStatus = "unknown"
)

// Item is a single piece of gathered intelligence.
type Item struct {
	ID              string      `json:"id"`
	Type            Type        `json:"type"`
	Source          string      `json:"source"`
	Title           string      `json:"title"`
	Content         string      `json:"content"`
	ThreatLevel     ThreatLevel `json:"threat_level"`
	Timestamp       time.Time   `json:"timestamp"`
	Tags            []string    `json:"tags,omitempty"`
	RelatedProjects []string    `json:"related_projects,omitempty"`
}

// Project is a tracked project in the ecosystem.
type Project struct {
	Name              string        `json:"name"`
	Path              string        `json:"path"`
	Description       string        `json:"description"`
	Languages         []string      `json:"languages,omitempty"`
	Status            ProjectStatus `json:"status"`
	HealthScore       float64       `json:"health_score"`
	LastCommit        *time.Time    `json:"last_commit,omitempty"`
	Dependencies      []string      `json:"dependencies,omitempty"`
	Dependents        []string      `json:"dependents,omitempty"`
	IntelligenceCount int           `json:"intelligence_count"`
}

// EcosystemStatus summarizes the whole ecosystem for the dashboard.
type EcosystemStatus struct {
	TotalProjects     int        `json:"total_projects"`
	ActiveProjects    int        `json:"active_projects"`
	TotalIntelligence int        `json:"total_intelligence"`
	HealthScore       float64    `json:"health_score"`
	LastScan          *time.Time `json:"last_scan,omitempty"`
}

// BriefingSection groups briefing lines under a heading with a threat level.
type BriefingSection struct {
	Title string      `json:"title"`
	Level ThreatLevel `json:"level"`
	Items []string    `json:"items"`
}

// Briefing is the daily situation report assembled by the backend.
type Briefing struct {
	Date     time.Time         `json:"date"`
	Headline string            `json:"headline"`
	Sections []BriefingSection `json:"sections"`
}

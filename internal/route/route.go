// Package route implements path-based navigation for the dashboard: an
// ordered table of path patterns resolved by a pure matching function, and a
// NavigationState that tracks the current location and history.
//
// Resolution is deliberately decoupled from rendering: the table knows route
// names, not views. The UI layer maps a resolved name to a page.
package route

import (
	"fmt"
	"strings"
)

// Route names registered by the dashboard. The UI maps each name to a page.
const (
	NameDashboard     = "dashboard"
	NameProjects      = "projects"
	NameProjectDetail = "project-detail"
	NameIntelligence  = "intelligence"
	NameBriefing      = "briefing"
	NameSettings      = "settings"
)

// Route declares one navigable pattern. A pattern is a slash-separated path
// that may contain at most one "{name}" parameter segment, e.g.
// "/projects/{projectName}".
type Route struct {
	Pattern string
	Name    string
}

// Params holds values captured from parameter segments.
type Params map[string]string

// Match is the result of resolving a path against the table.
type Match struct {
	Route  Route
	Path   string
	Params Params
}

// Param returns the captured value for name, or "" if absent.
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Table is an ordered set of routes. Resolution walks the table in
// declaration order and the first structurally matching pattern wins; no
// specificity reordering is applied.
type Table struct {
	routes []Route
}

// NewTable validates and builds a table. Patterns must be unique, absolute,
// and contain at most one parameter segment.
func NewTable(routes ...Route) (*Table, error) {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if !strings.HasPrefix(r.Pattern, "/") {
			return nil, fmt.Errorf("route %q: pattern %q must start with /", r.Name, r.Pattern)
		}
		if seen[r.Pattern] {
			return nil, fmt.Errorf("route %q: duplicate pattern %q", r.Name, r.Pattern)
		}
		seen[r.Pattern] = true
		params := 0
		for _, seg := range splitPath(r.Pattern) {
			if name, ok := paramName(seg); ok {
				if name == "" {
					return nil, fmt.Errorf("route %q: empty parameter segment in %q", r.Name, r.Pattern)
				}
				params++
			}
		}
		if params > 1 {
			return nil, fmt.Errorf("route %q: pattern %q has more than one parameter segment", r.Name, r.Pattern)
		}
	}
	return &Table{routes: routes}, nil
}

// Routes returns the declared routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Resolve matches path against the table. The boolean is false when no
// declared pattern matches; callers must surface that explicitly rather
// than rendering nothing.
func (t *Table) Resolve(path string) (Match, bool) {
	path = Normalize(path)
	segs := splitPath(path)
	for _, r := range t.routes {
		if params, ok := matchSegments(splitPath(r.Pattern), segs); ok {
			return Match{Route: r, Path: path, Params: params}, true
		}
	}
	return Match{Path: path}, false
}

// Normalize canonicalizes a path: ensures a leading slash and strips a
// trailing slash except on the root.
func Normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// matchSegments compares pattern segments to path segments. Parameter
// segments capture the corresponding path segment; literal segments must
// match exactly. Lengths must agree.
func matchSegments(pattern, path []string) (Params, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	var params Params
	for i, seg := range pattern {
		if name, ok := paramName(seg); ok {
			if path[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params, 1)
			}
			params[name] = path[i]
			continue
		}
		if seg != path[i] {
			return nil, false
		}
	}
	return params, true
}

// splitPath splits "/a/b" into ["a" "b"]; root yields an empty slice.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// paramName reports whether seg is a "{name}" parameter segment.
func paramName(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

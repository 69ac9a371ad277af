package route

// maxHistory bounds the navigation history so long sessions don't grow it
// without limit.
const maxHistory = 50

// NavigationState tracks the current location and a bounded back-history.
// It is owned by the UI layer and recomputed on every navigation event;
// nothing here is persisted.
type NavigationState struct {
	table   *Table
	current Match
	matched bool
	history []string
}

// NewNavigationState resolves the initial path against the table.
func NewNavigationState(table *Table, initial string) *NavigationState {
	n := &NavigationState{table: table}
	n.current, n.matched = table.Resolve(initial)
	return n
}

// Current returns the active match. The boolean is false when the current
// path matched no declared route.
func (n *NavigationState) Current() (Match, bool) {
	return n.current, n.matched
}

// Path returns the current normalized path.
func (n *NavigationState) Path() string {
	return n.current.Path
}

// Navigate resolves path and makes it current, pushing the previous
// location onto the history. Navigating to the current path is a no-op.
func (n *NavigationState) Navigate(path string) (Match, bool) {
	path = Normalize(path)
	if path == n.current.Path {
		return n.current, n.matched
	}
	prev := n.current.Path
	n.current, n.matched = n.table.Resolve(path)
	n.history = append(n.history, prev)
	if len(n.history) > maxHistory {
		n.history = n.history[len(n.history)-maxHistory:]
	}
	return n.current, n.matched
}

// Back pops the most recent history entry and makes it current. Returns
// false when there is no history to return to; the current location is
// unchanged in that case.
func (n *NavigationState) Back() (Match, bool) {
	if len(n.history) == 0 {
		return n.current, false
	}
	prev := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.current, n.matched = n.table.Resolve(prev)
	return n.current, true
}

// HistoryLen returns the number of locations available to Back.
func (n *NavigationState) HistoryLen() int {
	return len(n.history)
}

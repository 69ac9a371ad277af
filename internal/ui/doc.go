// Package ui composes the dashboard TUI with Bubble Tea.
//
// Core abstractions:
//   - View: a page with its own model, update, and view (Elm-style)
//   - AppModel: root model; resolves paths through the route table and
//     mounts exactly one page at a time
//   - Chrome: the persistent shell (nav header, footer) that survives
//     route changes
//   - ToastStack: the global notification surface, also persistent
//   - KeybindRegistry/KeyHandler: leader-key command dispatch
//
// Pages never resolve paths themselves; they emit NavigateMsg and the app
// does the rest.
package ui

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"cerebro/internal/badge"
)

// maxToasts bounds the surface; older toasts are evicted first.
const maxToasts = 3

// Toast is one entry on the global notification surface.
type Toast struct {
	ID      uuid.UUID
	Text    string
	Variant badge.Variant
	Created time.Time
}

// ToastStack is the global notification surface. It lives in the chrome
// and survives navigation; pages raise toasts by emitting ShowToastMsg.
type ToastStack struct {
	toasts []Toast
	ttl    time.Duration
}

// NewToastStack creates an empty surface whose toasts expire after ttl.
func NewToastStack(ttl time.Duration) *ToastStack {
	return &ToastStack{ttl: ttl}
}

// Push adds a toast and returns the command that expires it. The oldest
// toast is evicted when the surface is full.
func (s *ToastStack) Push(text string, variant badge.Variant) (Toast, tea.Cmd) {
	t := Toast{
		ID:      uuid.New(),
		Text:    text,
		Variant: variant,
		Created: time.Now(),
	}
	s.toasts = append(s.toasts, t)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	id := t.ID
	return t, tea.Tick(s.ttl, func(time.Time) tea.Msg {
		return ExpireToastMsg{ID: id}
	})
}

// Expire removes the toast with the given ID, if still present.
func (s *ToastStack) Expire(id uuid.UUID) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// View renders the surface, newest last. Empty when no toasts are active.
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}
	out := ""
	for i, t := range s.toasts {
		if i > 0 {
			out += "\n"
		}
		out += badge.Render(t.Variant, t.Text)
	}
	return out
}

package app

import (
	"sync"

	"github.com/dshills/tscview/internal/view"
)

// Session owns the viewer's mutable display state: the currently tracked
// configuration file, its project root, and the panel reference. Handlers
// receive the session instead of reaching for process-wide state; its
// lifetime is tied to the application's.
type Session struct {
	mu sync.Mutex

	file  string
	root  string
	panel *view.Panel
}

// NewSession creates a session tracking the given file.
func NewSession(file, root string) *Session {
	return &Session{file: file, root: root}
}

// Target returns the tracked file and its project root.
func (s *Session) Target() (file, root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file, s.root
}

// SetTarget switches the tracked file.
func (s *Session) SetTarget(file, root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = file
	s.root = root
}

// Panel returns the attached panel, or nil before AttachPanel.
func (s *Session) Panel() *view.Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// AttachPanel associates the display panel with the session.
// The panel's dispose notification clears the reference.
func (s *Session) AttachPanel(panel *view.Panel) {
	s.mu.Lock()
	s.panel = panel
	s.mu.Unlock()

	panel.OnDispose(func() {
		s.mu.Lock()
		s.panel = nil
		s.mu.Unlock()
	})
}

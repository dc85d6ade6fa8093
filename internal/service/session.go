package service

import (
	"sync"

	"github.com/LinFrancis/aucca-app/internal/catalog"
	"github.com/LinFrancis/aucca-app/internal/resolver"
)

// Session is the per-visitor state of the kiosk: the active filters, the
// last question and what it resolved to. Each shell, HTTP request or one-shot
// command owns its own Session; the knowledge base and catalog it refers to
// are shared read-only.
type Session struct {
	mu         sync.Mutex
	selection  catalog.Selection
	lastQuery  string
	lastResult resolver.Result
}

// NewSession starts a session with the given filters.
func NewSession(sel catalog.Selection) *Session {
	return &Session{selection: sel}
}

func (s *Session) Selection() catalog.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSelection replaces the active filters. The last result is kept: it was
// produced under the previous filters and stays on screen until the next
// question.
func (s *Session) SetSelection(sel catalog.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
}

func (s *Session) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// LastResult returns the result on display, or nil before the first answer.
func (s *Session) LastResult() resolver.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func (s *Session) record(query string, r resolver.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = query
	s.lastResult = r
}

// show replaces the displayed result without touching the last query, as
// when a suggestion is picked.
func (s *Session) show(r resolver.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = r
}

// Clear forgets the last question and result but keeps the filters.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastQuery = ""
	s.lastResult = nil
}

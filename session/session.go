// Package session ties per-font caches to the identity of the font they
// were filled for.
//
// Every cache that stores font-dependent results registers with the
// Session. When the font identity changes, Reset clears all of them at
// once; there is no partial repair of stale entries.
package session

import (
	"github.com/gogpu/ninebox/internal/cache"
)

// Session is the font session shared by the parser, the random generator
// and the controller.
//
// Session is not safe for concurrent use; it lives on the UI thread.
type Session struct {
	identity string
	known    bool
	caches   []cache.Clearer
	resets   int
}

// New creates a session with no known font.
func New() *Session {
	return &Session{}
}

// Register adds c to the caches cleared on every reset.
func (s *Session) Register(c cache.Clearer) {
	if c == nil {
		return
	}
	s.caches = append(s.caches, c)
}

// Identity returns the font identity the caches currently belong to, and
// false before the first Reset.
func (s *Session) Identity() (string, bool) {
	return s.identity, s.known
}

// Matches reports whether identity is the one the caches were filled for.
func (s *Session) Matches(identity string) bool {
	return s.known && s.identity == identity
}

// Reset clears every registered cache and binds the session to identity.
func (s *Session) Reset(identity string) {
	s.Clear()
	s.identity = identity
	s.known = true
}

// Forget clears every registered cache and unbinds the session, so the
// next font seen is reported as a change.
func (s *Session) Forget() {
	s.Clear()
	s.identity = ""
	s.known = false
}

// Clear empties every registered cache without changing the identity.
func (s *Session) Clear() {
	for _, c := range s.caches {
		c.Clear()
	}
	s.resets++
}

// Resets returns how many times the caches were cleared.
func (s *Session) Resets() int {
	return s.resets
}

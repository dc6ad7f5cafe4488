package api

import (
	"sync"
	"time"

	"rainbet-service/betting"
)

// sessionEntry pairs a session's vote ledger with its last activity time
type sessionEntry struct {
	ledger   *betting.Ledger
	lastSeen time.Time
}

// SessionStore holds one vote ledger per interactive session. Ledgers are
// created lazily on first access and live only in memory; idle sessions are
// pruned periodically.
type SessionStore struct {
	sessions map[string]*sessionEntry
	mutex    sync.RWMutex
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
	}
}

// Ledger returns the ledger for the given session, creating it if this is
// the session's first access, and marks the session as active now.
func (s *SessionStore) Ledger(sessionID string) *betting.Ledger {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, exists := s.sessions[sessionID]
	if !exists {
		entry = &sessionEntry{ledger: betting.NewLedger()}
		s.sessions[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.ledger
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}

// PruneIdleSessions removes sessions idle for longer than maxAge and
// returns how many were dropped. Their vote tallies are gone for good;
// nothing is persisted.
func (s *SessionStore) PruneIdleSessions(maxAge time.Duration) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cutoff := time.Now().Add(-maxAge)
	prunedCount := 0

	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			prunedCount++
		}
	}

	return prunedCount
}

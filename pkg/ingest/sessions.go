package ingest

import (
	"sync"
	"time"
)

// SessionTracker counts distinct sessions and hashed users per app.
// SAFETY: Periodically drops sessions not seen recently to prevent
// unbounded memory growth.
type SessionTracker struct {
	mu sync.RWMutex

	// sessionsPerApp tracks distinct session ids per app id
	sessionsPerApp map[string]int

	// lastSeen tracks "appID|sessionID" -> last signal timestamp
	lastSeen map[string]time.Time

	// usersSeen tracks distinct "appID|clientUser" pairs
	usersSeen map[string]struct{}

	lastCleanup time.Time
}

const (
	// Drop sessions idle for longer than this
	sessionRetentionPeriod = 24 * time.Hour

	// Run cleanup at most this often
	sessionCleanupInterval = 1 * time.Hour
)

// NewSessionTracker creates a session tracker
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{
		sessionsPerApp: make(map[string]int),
		lastSeen:       make(map[string]time.Time),
		usersSeen:      make(map[string]struct{}),
		lastCleanup:    time.Now(),
	}
}

// Track records one accepted signal's session and user.
func (t *SessionTracker) Track(appID, sessionID, clientUser string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cleanupLocked()

	key := appID + "|" + sessionID
	if _, seen := t.lastSeen[key]; !seen {
		t.sessionsPerApp[appID]++
	}
	t.lastSeen[key] = time.Now()
	t.usersSeen[appID+"|"+clientUser] = struct{}{}
}

// SessionStats is a point-in-time cardinality snapshot.
type SessionStats struct {
	TotalSessions  int            `json:"total_sessions"`
	TotalUsers     int            `json:"total_users"`
	SessionsPerApp map[string]int `json:"sessions_per_app"`
}

// Stats returns current session cardinality.
func (t *SessionTracker) Stats() SessionStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	perApp := make(map[string]int, len(t.sessionsPerApp))
	total := 0
	for app, n := range t.sessionsPerApp {
		perApp[app] = n
		total += n
	}
	return SessionStats{
		TotalSessions:  total,
		TotalUsers:     len(t.usersSeen),
		SessionsPerApp: perApp,
	}
}

// cleanupLocked drops sessions idle past the retention period.
// Caller must hold t.mu.
func (t *SessionTracker) cleanupLocked() {
	if time.Since(t.lastCleanup) < sessionCleanupInterval {
		return
	}
	t.lastCleanup = time.Now()

	cutoff := time.Now().Add(-sessionRetentionPeriod)
	for key, seen := range t.lastSeen {
		if seen.Before(cutoff) {
			delete(t.lastSeen, key)
			// key is "appID|sessionID"
			for i := 0; i < len(key); i++ {
				if key[i] == '|' {
					app := key[:i]
					if t.sessionsPerApp[app] > 0 {
						t.sessionsPerApp[app]--
					}
					break
				}
			}
		}
	}
}

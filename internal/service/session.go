package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tribelet/kit-service/internal/domain/model"
	"github.com/tribelet/kit-service/internal/metrics"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionLimit is returned when the store is at capacity.
var ErrSessionLimit = errors.New("session limit reached")

// Upload slot keys for stale-response tracking. The team logo gets its
// own slot alongside the two placements.
const (
	uploadSlotFront = "front"
	uploadSlotBack  = "back"
	uploadSlotLogo  = "logo"
)

// Session owns one user's customization state for the duration of a
// configuration flow. Each session is independent; the per-session
// mutex maps the browser's single event loop onto concurrent HTTP
// requests, so state mutations stay serialized.
type Session struct {
	ID string

	Kit       *model.KitState
	Order     model.OrderLine
	KitFlow   *Wizard
	TeamFlow  *Wizard
	TeamDraft *TeamDraft

	mu        sync.Mutex
	lastSeen  time.Time
	uploadSeq map[string]uint64
}

func newSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Kit:       model.NewKitState(),
		Order:     model.NewOrderLine(),
		KitFlow:   NewKitWizard(),
		TeamFlow:  NewTeamWizard(),
		TeamDraft: NewTeamDraft(),
		lastSeen:  time.Now(),
		uploadSeq: make(map[string]uint64, 3),
	}
}

// Lock serializes access to the session state.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// BeginUpload registers a new in-flight upload for the given slot and
// returns its sequence number. A later-completing validation with an
// older sequence must not overwrite the slot.
func (s *Session) BeginUpload(slot string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadSeq[slot]++
	return s.uploadSeq[slot]
}

// uploadCurrent reports whether seq is still the latest upload started
// for the slot. Callers must hold the session lock.
func (s *Session) uploadCurrent(slot string, seq uint64) bool {
	return s.uploadSeq[slot] == seq
}

// Reset restores the session to its initial state: fresh kit state,
// zeroed order line, both wizards back at step one, and an empty team
// draft. Upload sequences are kept so in-flight validations from before
// the reset stay stale.
func (s *Session) Reset() {
	s.Kit = model.NewKitState()
	s.Order = model.NewOrderLine()
	s.KitFlow.Reset()
	s.TeamFlow.Reset()
	s.TeamDraft.Reset()
}

// SessionStore holds active sessions with TTL-based expiry, one per
// browser session. There is no cross-session shared state.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	capacity int
	stopCh   chan struct{}
}

// NewSessionStore creates a store that expires sessions after ttl of
// inactivity and refuses new sessions beyond capacity.
func NewSessionStore(ttl time.Duration, capacity int) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if capacity <= 0 {
		capacity = 10000
	}

	store := &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		capacity: capacity,
		stopCh:   make(chan struct{}),
	}
	go store.sweep()
	return store
}

// Create starts a new session.
func (st *SessionStore) Create() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.capacity {
		return nil, ErrSessionLimit
	}

	sess := newSession()
	st.sessions[sess.ID] = sess
	metrics.SetActiveSessions(len(st.sessions))
	return sess, nil
}

// Get returns the session for the given ID and refreshes its expiry.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	sess.lastSeen = time.Now()
	sess.mu.Unlock()
	return sess, nil
}

// Delete removes a session, ending the flow.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	metrics.SetActiveSessions(len(st.sessions))
	st.mu.Unlock()
}

// Count returns the number of active sessions.
func (st *SessionStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Stop shuts down the expiry sweeper.
func (st *SessionStore) Stop() {
	close(st.stopCh)
}

// sweep periodically evicts sessions idle past the TTL.
func (st *SessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.evictExpired()
		case <-st.stopCh:
			return
		}
	}
}

func (st *SessionStore) evictExpired() {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, sess := range st.sessions {
		sess.mu.Lock()
		expired := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if expired {
			delete(st.sessions, id)
		}
	}
	metrics.SetActiveSessions(len(st.sessions))
}

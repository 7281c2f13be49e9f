package conversation

import (
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adalundhe/weft/core/dialog"
)

// SessionStore owns the mapping from session identifier to session
// state. Sessions are created lazily on first access and evicted least
// recently active once MaxSessions is exceeded. Mutation of a
// session's history is serialized by a per-session lock; readers take
// consistent snapshots.
type SessionStore struct {
	mu       sync.Mutex // guards create-if-absent against the LRU
	sessions *lru.Cache[string, *sessionState]

	maxHistory int
	clearing   bool // set around a deliberate Remove, guarded by mu
	logger     *slog.Logger
}

type sessionState struct {
	mu      sync.Mutex
	session dialog.Session
}

// NewSessionStore creates a store bounded by cfg.MaxSessions and
// cfg.MaxHistory.
func NewSessionStore(cfg Config, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	store := &SessionStore{
		maxHistory: cfg.MaxHistory,
		logger:     logger,
	}

	cache, _ := lru.NewWithEvict(cfg.MaxSessions, store.handleEviction)
	store.sessions = cache
	return store
}

// handleEviction fires for capacity evictions only; the LRU also
// invokes it on explicit Remove, which Clear marks via s.clearing.
func (s *SessionStore) handleEviction(sessionID string, _ *sessionState) {
	if s.clearing {
		return
	}
	s.logger.Info("session evicted", "session_id", sessionID)
}

// GetOrCreate returns a snapshot of the session for the identifier,
// creating an empty session if none exists. Two calls with the same
// identifier observe the same underlying state.
func (s *SessionStore) GetOrCreate(sessionID string) *dialog.Session {
	return s.acquire(sessionID).snapshot()
}

// Clear removes all state for the identifier. Clearing an unknown
// session is a no-op.
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearing = true
	s.sessions.Remove(sessionID)
	s.clearing = false
}

// Len reports the number of resident sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

// acquire returns the live state for the identifier, creating it if
// absent. The create-check-insert sequence is atomic under s.mu.
func (s *SessionStore) acquire(sessionID string) *sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.sessions.Get(sessionID); ok {
		return state
	}

	state := &sessionState{
		session: dialog.Session{SessionID: sessionID},
	}
	s.sessions.Add(sessionID, state)
	return state
}

// setLimits resizes the session cap and history cap in place. Shrinking
// the session cap evicts least recently active sessions; the history
// cap applies to subsequent appends.
func (s *SessionStore) setLimits(maxSessions, maxHistory int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxHistory = maxHistory
	s.sessions.Resize(maxSessions)
}

// historyLimit reads the current history cap.
func (s *SessionStore) historyLimit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxHistory
}

// lookup returns the live state without creating one.
func (s *SessionStore) lookup(sessionID string) (*sessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Get(sessionID)
}

// snapshot copies the session under its lock so readers never observe
// a torn append.
func (st *sessionState) snapshot() *dialog.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session.Snapshot()
}

// append adds one record under the session lock, dropping the oldest
// record when the history is at capacity, and advances CurrentID and
// LastActivity.
func (st *sessionState) append(record *dialog.ContextRecord, maxHistory int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	history := st.session.History
	if maxHistory > 0 && len(history) >= maxHistory {
		history = history[len(history)-maxHistory+1:]
	}

	st.session.History = append(history, record)
	st.session.CurrentID = record.ID
	st.session.LastActivity = record.CreatedAt
}

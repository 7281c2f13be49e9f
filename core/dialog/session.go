package dialog

import "time"

// Session is the ordered, append-only history of one conversation.
// History preserves insertion order; individual records are never
// edited or reordered. CurrentID always names the most recent record
// once the history is non-empty.
type Session struct {
	SessionID    string           `json:"session_id"`
	History      []*ContextRecord `json:"history"`
	CurrentID    string           `json:"current_id"`
	LastActivity time.Time        `json:"last_activity"`
}

// Snapshot returns a copy of the session whose history slice is
// independent of the original. Records themselves are shared; they are
// immutable after creation.
func (s *Session) Snapshot() *Session {
	history := make([]*ContextRecord, len(s.History))
	copy(history, s.History)
	return &Session{
		SessionID:    s.SessionID,
		History:      history,
		CurrentID:    s.CurrentID,
		LastActivity: s.LastActivity,
	}
}

// Recent returns up to n records from the tail of the history, oldest
// first.
func (s *Session) Recent(n int) []*ContextRecord {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if n > len(s.History) {
		n = len(s.History)
	}
	return s.History[len(s.History)-n:]
}

// SessionStats aggregates per-session counters.
type SessionStats struct {
	Total        int              `json:"total"`
	ByModality   map[Modality]int `json:"by_modality"`
	LastActivity *time.Time       `json:"last_activity"`
}

// EmptySessionStats is the zero result reported for an unknown or
// cleared session.
func EmptySessionStats() SessionStats {
	return SessionStats{ByModality: map[Modality]int{}}
}

package conversation

import "github.com/adalundhe/weft/core/dialog"

// StatsReporter exposes aggregate per-session counters.
type StatsReporter struct {
	store *SessionStore
}

// NewStatsReporter creates a reporter over the store.
func NewStatsReporter(store *SessionStore) *StatsReporter {
	return &StatsReporter{store: store}
}

// Stats returns the session's record counts by modality and last
// activity time. Unknown and empty sessions report zero counts and a
// nil last activity.
func (sr *StatsReporter) Stats(sessionID string) dialog.SessionStats {
	state, ok := sr.store.lookup(sessionID)
	if !ok {
		return dialog.EmptySessionStats()
	}

	session := state.snapshot()
	stats := dialog.EmptySessionStats()
	stats.Total = len(session.History)
	for _, record := range session.History {
		stats.ByModality[record.Modality]++
	}
	if !session.LastActivity.IsZero() {
		last := session.LastActivity
		stats.LastActivity = &last
	}
	return stats
}

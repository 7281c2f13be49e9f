// Package conversation tracks per-session, multi-modal interaction
// history and assembles relevance-ranked context bundles for a
// downstream response generator. The engine is in-memory and
// synchronous; it performs no I/O and calls no external services.
package conversation

import (
	"log/slog"
	"sync"

	"github.com/adalundhe/weft/core/dialog"
	"github.com/adalundhe/weft/core/relatedness"
)

// Manager is the engine facade consumed by the surrounding
// application. It is explicitly constructed and injectable; callers
// own its lifetime. Reconfigure swaps tuning at runtime without
// dropping session state.
type Manager struct {
	mu sync.RWMutex

	store     *SessionStore
	ingestor  *Ingestor
	selector  *Selector
	suggester *SuggestionEngine
	reporter  *StatsReporter
	engine    *relatedness.Engine
	logger    *slog.Logger
}

// NewManager wires the engine from the configuration. Zero config
// fields fall back to defaults; a nil logger falls back to
// slog.Default().
func NewManager(cfg Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	store := NewSessionStore(cfg, logger)
	engine := relatedness.NewEngine(cfg.Relatedness, logger)
	summarizer := NewSummaryGenerator(cfg)

	return &Manager{
		store:     store,
		ingestor:  NewIngestor(store, logger),
		selector:  NewSelector(store, engine, summarizer, cfg, logger),
		suggester: NewSuggestionEngine(store, cfg, logger),
		reporter:  NewStatsReporter(store),
		engine:    engine,
		logger:    logger,
	}
}

// Reconfigure applies new tuning to the running engine. Session
// history is preserved; the session and history caps are resized and
// the relatedness engine and window settings are swapped atomically
// with respect to the public operations.
func (m *Manager) Reconfigure(cfg Config) {
	cfg = cfg.withDefaults()

	engine := relatedness.NewEngine(cfg.Relatedness, m.logger)
	summarizer := NewSummaryGenerator(cfg)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.setLimits(cfg.MaxSessions, cfg.MaxHistory)
	m.selector = NewSelector(m.store, engine, summarizer, cfg, m.logger)
	m.suggester = NewSuggestionEngine(m.store, cfg, m.logger)

	if m.engine != nil {
		m.engine.Close()
	}
	m.engine = engine

	m.logger.Info("engine reconfigured",
		"max_sessions", cfg.MaxSessions,
		"max_history", cfg.MaxHistory,
		"jaccard_threshold", cfg.Relatedness.JaccardThreshold,
	)
}

// AddContext appends one interaction turn to the session, creating the
// session on first use. The modality must be text, image, or voice.
func (m *Manager) AddContext(sessionID string, modality dialog.Modality, content string, recognition *dialog.RecognitionResult) (*dialog.ContextRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ingestor.AddContext(sessionID, modality, content, recognition)
}

// RelevantContext assembles the primary and related context for a new
// input. Unknown sessions yield a zero Selection.
func (m *Manager) RelevantContext(sessionID, input string) Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selector.RelevantContext(sessionID, input)
}

// SwitchingSuggestions proposes up to two continue-from-here hints
// from recent history.
func (m *Manager) SwitchingSuggestions(sessionID, input string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.suggester.Suggestions(sessionID, input)
}

// SessionStats reports per-session counters. Unknown sessions report
// zeroes.
func (m *Manager) SessionStats(sessionID string) dialog.SessionStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reporter.Stats(sessionID)
}

// ClearContext removes all state for the session.
func (m *Manager) ClearContext(sessionID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.store.Clear(sessionID)
	m.logger.Debug("session cleared", "session_id", sessionID)
}

// Sessions reports the number of resident sessions.
func (m *Manager) Sessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Len()
}

// Close releases engine resources.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine != nil {
		m.engine.Close()
		m.engine = nil
	}
}

package conversation

import (
	"log/slog"

	"github.com/adalundhe/weft/core/dialog"
	"github.com/adalundhe/weft/core/relatedness"
)

// Selection is the relevance-ranked context bundle assembled for a new
// input. Primary holds at most one record: the best candidate to
// anchor a downstream prompt. Related holds every recent record judged
// related to the input.
type Selection struct {
	Primary []*dialog.ContextRecord `json:"primary"`
	Related []*dialog.ContextRecord `json:"related"`
	Summary string                  `json:"summary"`
}

// Selector assembles context selections from recent session history.
type Selector struct {
	store      *SessionStore
	engine     *relatedness.Engine
	summarizer *SummaryGenerator
	window     int
	logger     *slog.Logger
}

// NewSelector creates a selector over the store using the relatedness
// engine for pairwise checks.
func NewSelector(store *SessionStore, engine *relatedness.Engine, summarizer *SummaryGenerator, cfg Config, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Selector{
		store:      store,
		engine:     engine,
		summarizer: summarizer,
		window:     cfg.SelectionWindow,
		logger:     logger,
	}
}

// RelevantContext considers the most recent records of the session and
// partitions them into related and primary context for the input. An
// unknown session yields a zero Selection; selection never fails.
func (sel *Selector) RelevantContext(sessionID, input string) Selection {
	state, ok := sel.store.lookup(sessionID)
	if !ok {
		return Selection{Primary: []*dialog.ContextRecord{}, Related: []*dialog.ContextRecord{}}
	}

	session := state.snapshot()
	considered := session.Recent(sel.window)

	related := make([]*dialog.ContextRecord, 0, len(considered))
	for _, candidate := range considered {
		if sel.engine.Related(input, dialog.ModalityText, candidate.Content, candidate.Modality) {
			related = append(related, candidate)
		}
	}

	primary := make([]*dialog.ContextRecord, 0, 1)
	switch {
	case len(related) > 0:
		primary = append(primary, related[len(related)-1])
	case len(considered) > 0:
		primary = append(primary, considered[len(considered)-1])
	}

	selection := Selection{
		Primary: primary,
		Related: related,
		Summary: sel.summarizer.Summarize(primary, related),
	}

	sel.logger.Debug("context selected",
		"session_id", sessionID,
		"considered", len(considered),
		"related", len(related),
	)
	return selection
}

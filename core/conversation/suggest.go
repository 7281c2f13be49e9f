package conversation

import (
	"fmt"
	"log/slog"

	"github.com/adalundhe/weft/core/dialog"
)

// SuggestionEngine proposes "continue from here" hints drawn from a
// session's recent history, for rendering as quick replies.
type SuggestionEngine struct {
	store     *SessionStore
	window    int
	max       int
	textLimit int
	logger    *slog.Logger
}

// NewSuggestionEngine creates a suggestion engine over the store.
func NewSuggestionEngine(store *SessionStore, cfg Config, logger *slog.Logger) *SuggestionEngine {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &SuggestionEngine{
		store:     store,
		window:    cfg.SuggestionWindow,
		max:       cfg.MaxSuggestions,
		textLimit: cfg.SuggestionTextLimit,
		logger:    logger,
	}
}

// Suggestions scans the most recent records, newest first, and emits
// up to MaxSuggestions hints. Image and voice turns need recognized
// text to yield a hint; text turns always do. Unknown sessions yield
// no suggestions.
func (se *SuggestionEngine) Suggestions(sessionID, input string) []string {
	state, ok := se.store.lookup(sessionID)
	if !ok {
		return nil
	}

	session := state.snapshot()
	recent := session.Recent(se.window)

	suggestions := make([]string, 0, se.max)
	for i := len(recent) - 1; i >= 0 && len(suggestions) < se.max; i-- {
		if hint, ok := se.hintFor(recent[i]); ok {
			suggestions = append(suggestions, hint)
		}
	}
	return suggestions
}

func (se *SuggestionEngine) hintFor(record *dialog.ContextRecord) (string, bool) {
	switch record.Modality {
	case dialog.ModalityText:
		return fmt.Sprintf("Continue from: %q", truncate(record.Content, se.textLimit)), true
	case dialog.ModalityImage, dialog.ModalityVoice:
		text := record.ExtractedText()
		if text == "" {
			return "", false
		}
		return fmt.Sprintf("Continue working with %q", truncate(text, se.textLimit)), true
	default:
		return "", false
	}
}

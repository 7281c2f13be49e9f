package conversation

import "github.com/adalundhe/weft/core/relatedness"

const (
	defaultMaxSessions = 1024
	defaultMaxHistory  = 50

	defaultSelectionWindow  = 5
	defaultSuggestionWindow = 3
	defaultMaxSuggestions   = 2

	defaultSummaryTextLimit    = 100
	defaultSuggestionTextLimit = 50
)

// Config tunes the conversation context engine. Window sizes and
// limits default to the tuned values; retention caps bound memory
// since sessions are never persisted.
type Config struct {
	// Maximum resident sessions; the least recently active session is
	// evicted beyond this.
	MaxSessions int `yaml:"max_sessions"`

	// Maximum retained records per session; the oldest record is
	// dropped when a session's history overflows.
	MaxHistory int `yaml:"max_history"`

	// How many of the most recent records context selection considers.
	SelectionWindow int `yaml:"selection_window"`

	// How many of the most recent records suggestions scan.
	SuggestionWindow int `yaml:"suggestion_window"`

	// Maximum suggestions returned per call.
	MaxSuggestions int `yaml:"max_suggestions"`

	// Character caps for summary and suggestion excerpts.
	SummaryTextLimit    int `yaml:"summary_text_limit"`
	SuggestionTextLimit int `yaml:"suggestion_text_limit"`

	Relatedness relatedness.Config `yaml:"relatedness"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		MaxSessions:         defaultMaxSessions,
		MaxHistory:          defaultMaxHistory,
		SelectionWindow:     defaultSelectionWindow,
		SuggestionWindow:    defaultSuggestionWindow,
		MaxSuggestions:      defaultMaxSuggestions,
		SummaryTextLimit:    defaultSummaryTextLimit,
		SuggestionTextLimit: defaultSuggestionTextLimit,
		Relatedness:         relatedness.DefaultConfig(),
	}
}

func (c Config) withDefaults() Config {
	if c.MaxSessions <= 0 {
		c.MaxSessions = defaultMaxSessions
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = defaultMaxHistory
	}
	if c.SelectionWindow <= 0 {
		c.SelectionWindow = defaultSelectionWindow
	}
	if c.SuggestionWindow <= 0 {
		c.SuggestionWindow = defaultSuggestionWindow
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = defaultMaxSuggestions
	}
	if c.SummaryTextLimit <= 0 {
		c.SummaryTextLimit = defaultSummaryTextLimit
	}
	if c.SuggestionTextLimit <= 0 {
		c.SuggestionTextLimit = defaultSuggestionTextLimit
	}
	return c
}

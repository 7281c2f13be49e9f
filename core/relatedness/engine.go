// Package relatedness decides whether two conversation turns are
// topically or structurally linked. The engine is pure rule-based
// lexical analysis: Jaccard word overlap, topic keyword co-membership,
// and continuation phrasing patterns. It holds no session state.
package relatedness

import (
	"log/slog"

	"github.com/adalundhe/weft/core/dialog"
)

// Engine evaluates pairwise relatedness between conversation turns.
type Engine struct {
	config Config
	topics *TopicIndex
	rules  []ContinuationRule
	cache  *pairCache
	logger *slog.Logger
}

// NewEngine creates an engine with the default topic and continuation
// tables. Zero config fields fall back to defaults.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	e := &Engine{
		config: cfg,
		topics: NewTopicIndex(DefaultTopicKeywords()),
		rules:  DefaultContinuationRules(),
		logger: logger,
	}

	if cfg.CacheEnabled {
		cache, err := newPairCache(cfg)
		if err != nil {
			logger.Warn("relatedness cache disabled", "error", err)
		} else {
			e.cache = cache
		}
	}

	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Related reports whether a new input continues or overlaps a prior
// turn. Any one of the lexical, topical, or continuation checks firing
// makes the pair related.
func (e *Engine) Related(newContent string, newModality dialog.Modality, priorContent string, priorModality dialog.Modality) bool {
	var key string
	if e.cache != nil {
		key = pairKey(newContent, newModality.String(), priorContent, priorModality.String())
		if related, ok := e.cache.get(key); ok {
			return related
		}
	}

	related := e.lexicalOverlap(newContent, priorContent) ||
		e.topics.ShareTopic(newContent, priorContent) ||
		e.continuation(newContent, priorContent, priorModality)

	if e.cache != nil {
		e.cache.set(key, related)
	}
	return related
}

// RelatedToHistory applies Related against the most recent
// HistoryWindow records, newest first, short-circuiting on the first
// match.
func (e *Engine) RelatedToHistory(history []*dialog.ContextRecord, newContent string, newModality dialog.Modality) bool {
	window := e.config.HistoryWindow
	if window > len(history) {
		window = len(history)
	}

	for i := 0; i < window; i++ {
		prior := history[len(history)-1-i]
		if e.Related(newContent, newModality, prior.Content, prior.Modality) {
			return true
		}
	}
	return false
}

// Close releases the decision cache, if any.
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.close()
	}
}

func (e *Engine) lexicalOverlap(a, b string) bool {
	similarity := jaccard(tokenize(a), tokenize(b))
	return similarity > e.config.JaccardThreshold
}

func (e *Engine) continuation(newContent, priorContent string, priorModality dialog.Modality) bool {
	for _, rule := range e.rules {
		if rule.Matches(newContent, priorContent, priorModality) {
			return true
		}
	}
	return false
}

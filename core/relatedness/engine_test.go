package relatedness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/weft/core/dialog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CacheEnabled = false
	engine := NewEngine(cfg, nil)
	t.Cleanup(engine.Close)
	return engine
}

func historyOf(t *testing.T, contents ...string) []*dialog.ContextRecord {
	t.Helper()
	records := make([]*dialog.ContextRecord, 0, len(contents))
	for i, content := range contents {
		record, err := dialog.NewContextRecord(
			string(rune('a'+i)), dialog.ModalityText, content, nil, time.Now())
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}

func TestEngine_Related_LexicalOverlap(t *testing.T) {
	engine := newTestEngine(t)

	assert.True(t, engine.Related(
		"walk the dog in the park", dialog.ModalityText,
		"walk the dog near the park", dialog.ModalityText,
	), "Word overlap well above the threshold with no topic keywords")

	assert.True(t, engine.Related(
		"how big is the sun really", dialog.ModalityText,
		"how big is the sun", dialog.ModalityText,
	))
}

func TestEngine_Related_TopicCoMembership(t *testing.T) {
	engine := newTestEngine(t)

	assert.True(t, engine.Related(
		"What historical period followed that revolution?", dialog.ModalityText,
		"Explain the causes of the French Revolution", dialog.ModalityText,
	), "History keywords on both sides even with low lexical overlap")

	assert.True(t, engine.Related(
		"please solve this equation now", dialog.ModalityText,
		"solve the equation for x", dialog.ModalityText,
	), "Mathematics keywords on both sides; word overlap alone sits below the threshold")
}

func TestEngine_Related_Continuation(t *testing.T) {
	engine := newTestEngine(t)

	assert.True(t, engine.Related(
		"And how does it relate to respiration?", dialog.ModalityText,
		"What is photosynthesis?", dialog.ModalityText,
	))

	assert.True(t, engine.Related(
		"can you read the text in it", dialog.ModalityText,
		"", dialog.ModalityImage,
	), "Request phrasing continues a prior image turn")
}

func TestEngine_Related_Negative(t *testing.T) {
	engine := newTestEngine(t)

	assert.False(t, engine.Related(
		"State Newton's laws of motion", dialog.ModalityText,
		"Explain Tamil grammar rules", dialog.ModalityText,
	))
}

func TestEngine_Related_EmptyContentNeverMatches(t *testing.T) {
	engine := newTestEngine(t)

	assert.False(t, engine.Related("", dialog.ModalityText, "", dialog.ModalityText))
	assert.False(t, engine.Related("", dialog.ModalityText, "solve the equation", dialog.ModalityText))
}

func TestEngine_RelatedToHistory_Window(t *testing.T) {
	engine := newTestEngine(t)

	history := historyOf(t,
		"solve the equation for x", // outside the window of 3
		"favorite breakfast food",
		"weekend hiking plans",
		"best paint colors",
	)

	assert.False(t, engine.RelatedToHistory(history, "please solve this equation now", dialog.ModalityText),
		"Only the most recent three records are checked")

	assert.True(t, engine.RelatedToHistory(history[:1], "please solve this equation now", dialog.ModalityText))
}

func TestEngine_RelatedToHistory_Empty(t *testing.T) {
	engine := newTestEngine(t)
	assert.False(t, engine.RelatedToHistory(nil, "anything", dialog.ModalityText))
}

func TestEngine_CachedDecisionsAreStable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheEnabled = true
	engine := NewEngine(cfg, nil)
	defer engine.Close()
	require.NotNil(t, engine.cache)

	first := engine.Related(
		"please solve this equation now", dialog.ModalityText,
		"solve the equation for x", dialog.ModalityText,
	)
	engine.cache.wait()

	second := engine.Related(
		"please solve this equation now", dialog.ModalityText,
		"solve the equation for x", dialog.ModalityText,
	)

	assert.True(t, first)
	assert.Equal(t, first, second)
}

func TestEngine_ConfigDefaults(t *testing.T) {
	engine := NewEngine(Config{}, nil)
	defer engine.Close()

	assert.InDelta(t, 0.30, engine.Config().JaccardThreshold, 1e-9)
	assert.Equal(t, 3, engine.Config().HistoryWindow)
}

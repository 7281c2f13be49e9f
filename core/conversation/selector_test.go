package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/weft/core/dialog"
	"github.com/adalundhe/weft/core/relatedness"
)

func newTestSelector(t *testing.T, cfg Config) (*Selector, *Ingestor) {
	t.Helper()
	cfg.Relatedness.CacheEnabled = false

	store := NewSessionStore(cfg, nil)
	engine := relatedness.NewEngine(cfg.Relatedness, nil)
	t.Cleanup(engine.Close)

	selector := NewSelector(store, engine, NewSummaryGenerator(cfg), cfg, nil)
	return selector, NewIngestor(store, nil)
}

func TestSelector_UnknownSession(t *testing.T) {
	selector, _ := newTestSelector(t, DefaultConfig())

	selection := selector.RelevantContext("never-seen", "anything")

	assert.Empty(t, selection.Primary)
	assert.Empty(t, selection.Related)
	assert.Equal(t, "", selection.Summary)
}

func TestSelector_EmptySession(t *testing.T) {
	selector, ingestor := newTestSelector(t, DefaultConfig())

	_, err := ingestor.AddContext("s1", dialog.ModalityText, "hello", nil)
	require.NoError(t, err)
	selector.store.Clear("s1")
	selector.store.GetOrCreate("s1")

	selection := selector.RelevantContext("s1", "anything")
	assert.Empty(t, selection.Primary)
	assert.Empty(t, selection.Related)
	assert.Equal(t, "", selection.Summary)
}

func TestSelector_RelatedSubsequence(t *testing.T) {
	selector, ingestor := newTestSelector(t, DefaultConfig())

	contents := []string{
		"solve the equation for x",
		"favorite breakfast food",
		"simplify the equation further",
	}
	for _, content := range contents {
		_, err := ingestor.AddContext("s1", dialog.ModalityText, content, nil)
		require.NoError(t, err)
	}

	selection := selector.RelevantContext("s1", "please solve this equation now")

	require.Len(t, selection.Related, 2)
	assert.Equal(t, "solve the equation for x", selection.Related[0].Content)
	assert.Equal(t, "simplify the equation further", selection.Related[1].Content)

	require.Len(t, selection.Primary, 1)
	assert.Equal(t, "simplify the equation further", selection.Primary[0].Content,
		"Primary is the most recent related record")
}

func TestSelector_FallbackPrimary(t *testing.T) {
	selector, ingestor := newTestSelector(t, DefaultConfig())

	_, err := ingestor.AddContext("s1", dialog.ModalityText, "favorite breakfast food", nil)
	require.NoError(t, err)

	selection := selector.RelevantContext("s1", "quantum entanglement basics")

	assert.Empty(t, selection.Related)
	require.Len(t, selection.Primary, 1)
	assert.Equal(t, "favorite breakfast food", selection.Primary[0].Content,
		"With no related records the most recent considered record anchors the context")
}

func TestSelector_WindowLimitsConsideration(t *testing.T) {
	selector, ingestor := newTestSelector(t, DefaultConfig())

	_, err := ingestor.AddContext("s1", dialog.ModalityText, "solve the equation for x", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := ingestor.AddContext("s1", dialog.ModalityText, fmt.Sprintf("small talk number %d", i), nil)
		require.NoError(t, err)
	}

	selection := selector.RelevantContext("s1", "please solve this equation now")

	assert.Empty(t, selection.Related, "The math record fell outside the five-record window")
	require.Len(t, selection.Primary, 1)
	assert.Equal(t, "small talk number 4", selection.Primary[0].Content)
}

func TestSelector_ImageRecordWithExtractedText(t *testing.T) {
	selector, ingestor := newTestSelector(t, DefaultConfig())

	record, err := ingestor.AddContext("s1", dialog.ModalityImage, "",
		&dialog.RecognitionResult{ExtractedText: "2x + 3 = 7", Confidence: 0.95})
	require.NoError(t, err)

	selection := selector.RelevantContext("s1", "how do I solve this equation")

	require.Len(t, selection.Primary, 1)
	assert.Equal(t, record.ID, selection.Primary[0].ID)
	assert.Contains(t, selection.Summary, "2x + 3 = 7", "Summary shows the recognized text, not the empty raw content")
	assert.Contains(t, selection.Summary, "image")
}

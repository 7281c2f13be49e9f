package relatedness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTopicKeywords_Coverage(t *testing.T) {
	table := DefaultTopicKeywords()

	require.Contains(t, table, TopicMathematics)
	require.Contains(t, table, TopicScience)
	require.Contains(t, table, TopicLanguage)
	require.Contains(t, table, TopicHistory)
	require.Contains(t, table, TopicGeography)

	for topic, keywords := range table {
		assert.GreaterOrEqual(t, len(keywords), 4, "topic %s needs at least 4 keywords", topic)
		assert.LessOrEqual(t, len(keywords), 8, "topic %s allows at most 8 keywords", topic)
	}
}

func TestTopicIndex_Topics(t *testing.T) {
	idx := NewTopicIndex(DefaultTopicKeywords())

	topics := idx.Topics("Explain the causes of the French Revolution")
	assert.Contains(t, topics, TopicHistory)

	assert.Empty(t, idx.Topics("hello there"))
	assert.Empty(t, idx.Topics(""))
}

func TestTopicIndex_ShareTopic(t *testing.T) {
	idx := NewTopicIndex(DefaultTopicKeywords())

	assert.True(t, idx.ShareTopic(
		"Explain the causes of the French Revolution",
		"What historical period followed that revolution?",
	), "History keywords on both sides")

	assert.False(t, idx.ShareTopic(
		"Explain Tamil grammar rules",
		"State Newton's laws of motion",
	), "Language vs science share no topic")

	assert.False(t, idx.ShareTopic("", "solve the equation"))
}

func TestTopicIndex_WordBoundaries(t *testing.T) {
	idx := NewTopicIndex(map[Topic][]string{
		TopicMathematics: {"solve"},
	})

	assert.Contains(t, idx.Topics("solve this"), TopicMathematics)
	assert.Empty(t, idx.Topics("dissolved sugar"), "Keyword must match on word boundaries")
}

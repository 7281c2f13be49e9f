package relatedness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	set := tokenize("Solve THE equation  for x")

	assert.Len(t, set, 5)
	assert.Contains(t, set, "solve")
	assert.Contains(t, set, "the")
	assert.Contains(t, set, "x")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, tokenize(""))
	assert.Nil(t, tokenize("   \t\n"))
}

func TestJaccard(t *testing.T) {
	a := tokenize("solve the equation for x")
	b := tokenize("please solve this equation now")

	// Intersection {solve, equation}, union of 8 distinct words.
	assert.InDelta(t, 0.25, jaccard(a, b), 1e-9)
}

func TestJaccard_Identical(t *testing.T) {
	a := tokenize("hello world")
	assert.InDelta(t, 1.0, jaccard(a, a), 1e-9)
}

func TestJaccard_Disjoint(t *testing.T) {
	a := tokenize("alpha beta")
	b := tokenize("gamma delta")
	assert.Zero(t, jaccard(a, b))
}

func TestJaccard_EmptySets(t *testing.T) {
	assert.Zero(t, jaccard(nil, tokenize("hello")))
	assert.Zero(t, jaccard(tokenize("hello"), nil))
	assert.Zero(t, jaccard(nil, nil))
}

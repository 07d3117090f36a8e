package search_test

import (
	"testing"

	"github.com/carbon-chess/engine/pkg/eval"
	"github.com/carbon-chess/engine/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTable(t *testing.T) {
	tt := search.NewTranspositionTable(3)

	_, ok := tt.Get(2, "somekey")
	assert.False(t, ok)

	tt.Put(2, "somekey", eval.Score(42))
	score, ok := tt.Get(2, "somekey")
	assert.True(t, ok)
	assert.Equal(t, eval.Score(42), score)

	// Same key at a different depth is a distinct entry.
	_, ok = tt.Get(1, "somekey")
	assert.False(t, ok)

	// Overwrite.
	tt.Put(2, "somekey", eval.Score(7))
	score, ok = tt.Get(2, "somekey")
	assert.True(t, ok)
	assert.Equal(t, eval.Score(7), score)

	assert.Equal(t, 1, tt.Len(2))
	assert.Equal(t, 0, tt.Len(0))
}

func TestTranspositionTableCoversMaxDepth(t *testing.T) {
	tt := search.NewTranspositionTable(4)

	tt.Put(4, "leaf", eval.ZeroScore)
	_, ok := tt.Get(4, "leaf")
	assert.True(t, ok)
}

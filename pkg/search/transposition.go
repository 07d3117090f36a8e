package search

import (
	"sync"

	"github.com/carbon-chess/engine/pkg/eval"
)

// TranspositionTable caches evaluated scores keyed by FEN string, indexed by
// search depth rather than by position alone: the same position reached at
// two different depths is cached as two separate entries, since a shallower
// search of a position is not a valid substitute for a deeper one. Entries
// are unconditionally overwritten on Put; there is no replacement policy.
// Safe for concurrent use by the worker pool's searchers.
type TranspositionTable struct {
	levels []level
}

type level struct {
	mu      sync.RWMutex
	entries map[string]eval.Score
}

// NewTranspositionTable allocates a table with one level per depth in
// [0, maxDepth], inclusive, since the cache is probed at maxDepth itself
// before the leaf check fires.
func NewTranspositionTable(maxDepth int) *TranspositionTable {
	t := &TranspositionTable{levels: make([]level, maxDepth+1)}
	for i := range t.levels {
		t.levels[i].entries = make(map[string]eval.Score)
	}
	return t
}

// Get returns the cached score for key at depth, if present.
func (t *TranspositionTable) Get(depth int, key string) (eval.Score, bool) {
	lv := &t.levels[depth]
	lv.mu.RLock()
	defer lv.mu.RUnlock()

	score, ok := lv.entries[key]
	return score, ok
}

// Put stores score for key at depth, overwriting any existing entry.
func (t *TranspositionTable) Put(depth int, key string, score eval.Score) {
	lv := &t.levels[depth]
	lv.mu.Lock()
	defer lv.mu.Unlock()

	lv.entries[key] = score
}

// Len returns the number of cached entries at depth, for diagnostics.
func (t *TranspositionTable) Len(depth int) int {
	lv := &t.levels[depth]
	lv.mu.RLock()
	defer lv.mu.RUnlock()

	return len(lv.entries)
}

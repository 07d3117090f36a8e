package eval

import (
	"math/rand"
	"sync"

	"github.com/carbon-chess/engine/pkg/board"
)

// Noisy wraps an Evaluator and adds a small amount of randomness to its
// scores, in the half-open range [-limit/2, limit-limit/2) centipawns. A limit of zero
// disables the noise and Noisy behaves exactly like the wrapped Evaluator.
// Safe for concurrent use by the pool's worker goroutines.
type Noisy struct {
	Eval  Evaluator
	Limit int

	mu   sync.Mutex
	rand *rand.Rand
}

func NewNoisy(ev Evaluator, limit int, seed int64) *Noisy {
	return &Noisy{Eval: ev, Limit: limit, rand: rand.New(rand.NewSource(seed))}
}

func (n *Noisy) Evaluate(pos *board.Position, from board.Color) Score {
	score := n.Eval.Evaluate(pos, from)
	if n.Limit <= 0 {
		return score
	}
	n.mu.Lock()
	noise := n.rand.Intn(n.Limit) - n.Limit/2
	n.mu.Unlock()
	return score + Score(noise)
}

package search

import (
	"github.com/carbon-chess/engine/pkg/board"
	"github.com/carbon-chess/engine/pkg/board/fen"
	"github.com/carbon-chess/engine/pkg/eval"
)

// AbortFlag reports whether an in-flight search should collapse to its
// static score. Implementations must be safe for concurrent readers; the
// worker pool's shared abort flag is the production implementation, guarded
// by a reader-writer lock rather than exceptions or cancellation tokens.
type AbortFlag interface {
	IsSet() bool
}

// NeverAbort never reports aborted, for single-shot searches run outside a pool.
type NeverAbort struct{}

func (NeverAbort) IsSet() bool { return false }

// AlphaBeta implements alpha-beta pruned search over the legal move tree,
// backed by a depth-indexed TranspositionTable. The search entry fixes a
// single point of view, myColor, for the whole recursion: the root calls
// Search with myColor set to the side that played the root move (the
// opposite of the post-move position's side to move), so the returned score
// is always from the perspective of the side about to benefit from that
// root move. Each recursive node then acts as the maximizing player when
// the position's side to move equals myColor, and as the minimizing player
// otherwise -- plain minimax with alpha-beta bounds, not negamax.
//
// Recursion contract at depth, ascending from 0 at the root to maxDepth at
// the horizon:
//
//	function search(pos, depth) is
//	    if cached(pos, depth) then return cached value
//	    if depth = maxDepth or abort is set then return Eval(pos, myColor)
//	    if pos.side_to_move == myColor then maximize else minimize
//	    for each legal move of pos do
//	        value := max/min(value, search(make_move(pos, move), depth+1))
//	        alpha/beta := max/min(alpha/beta, value)
//	        if beta <= alpha then break (* cutoff *)
//	    if no legal move then value := mate/stalemate score
//	    cache(pos, depth, value)
//	    return value
//
// The transposition probe runs before both the leaf check and the abort
// check, so a cached value for a position overrides what the static
// evaluation or an in-progress abort would otherwise have produced.
type AlphaBeta struct {
	Eval eval.Evaluator
	TT   *TranspositionTable
}

// Search returns the signed centipawn score of pos from myColor's point of view.
func (s AlphaBeta) Search(pos *board.Position, myColor board.Color, depth, maxDepth int, alpha, beta eval.Score, abort AbortFlag) eval.Score {
	key := fen.Encode(pos)
	if cached, ok := s.TT.Get(depth, key); ok {
		return cached
	}

	if depth == maxDepth || abort.IsSet() {
		score := s.Eval.Evaluate(pos, myColor)
		s.TT.Put(depth, key, score)
		return score
	}

	maximizing := pos.SideToMove() == myColor

	moves, err := pos.LegalMoves()
	if err != nil {
		switch {
		case board.IsKind(err, board.Checkmate):
			score := eval.InfScore
			if maximizing {
				score = eval.NegInfScore
			}
			s.TT.Put(depth, key, score)
			return score
		case board.IsKind(err, board.Stalemate):
			s.TT.Put(depth, key, eval.ZeroScore)
			return eval.ZeroScore
		default:
			// Real errors below the search root indicate a bug, not a game-ending condition.
			panic(err)
		}
	}

	value := eval.InfScore
	if maximizing {
		value = eval.NegInfScore
	}

	for _, m := range moves {
		child, err := pos.MakeMove(m)
		if err != nil {
			panic(err) // unreachable: LegalMoves only returns moves MakeMove accepts
		}

		score := s.Search(child, myColor, depth+1, maxDepth, alpha, beta, abort)

		if maximizing {
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if score < value {
				value = score
			}
			if value < beta {
				beta = value
			}
		}
		if beta <= alpha {
			break // cutoff
		}
	}

	s.TT.Put(depth, key, value)
	return value
}

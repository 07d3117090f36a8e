// Package eval contains static position evaluation.
package eval

import (
	"fmt"
	"math"

	"github.com/carbon-chess/engine/pkg/board"
)

// Score is a signed centipawn score. Positive favors the color the score
// was computed from. Must have enough range that an unbalanced king
// (effectively infinite) never overflows when summed with ordinary
// material and positional terms.
type Score int64

const (
	MaxScore Score = math.MaxInt64
	MinScore Score = math.MinInt64

	// NegInfScore and InfScore are the near-extreme mate scores the searcher
	// returns on Checkmate, rather than true MinScore/MaxScore. The mate score
	// does not depend on depth: a shallower mate and a deeper one score the same.
	NegInfScore Score = MinScore + 1
	InfScore    Score = MaxScore - 1

	ZeroScore Score = 0
)

func (s Score) String() string {
	return fmt.Sprintf("%d", int64(s))
}

// Negate flips the score to the opponent's point of view. NegInfScore and
// InfScore are one off MinScore/MaxScore precisely so this never overflows.
func (s Score) Negate() Score {
	return -s
}

const (
	PawnValue   Score = 100
	KnightValue Score = 300
	BishopValue Score = 300
	RookValue   Score = 500
	QueenValue  Score = 900
)

// KingValue is half of the signed-integer maximum, so any position with an
// unbalanced king dominates the score regardless of material or mobility.
const KingValue Score = MaxScore / 2

// NominalValue returns the material value of a piece kind.
func NominalValue(k board.Kind) Score {
	switch k {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	case board.King:
		return KingValue
	default:
		return 0
	}
}

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the signed centipawn score from the given color's point of view.
	Evaluate(pos *board.Position, from board.Color) Score
}

// Standard is the material + positional + mobility evaluator. The score is
// computed from scratch on every call; there is no incremental evaluation.
type Standard struct{}

func (Standard) Evaluate(pos *board.Position, from board.Color) Score {
	return contribution(pos, from) - contribution(pos, from.Opponent())
}

// contribution sums material, centerness, and mobility for every piece of color.
func contribution(pos *board.Position, color board.Color) Score {
	var total Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		pc, ok := pos.PieceAt(sq)
		if !ok || pc.Color != color {
			continue
		}
		total += NominalValue(pc.Kind)
		total += Score(sq.PositionalValue())
		total += mobilityBonus(pos, sq, pc)
	}
	return total
}

// mobilityBonus sums 1 per empty attacked square, 2 per opponent-occupied
// attacked square, plus 2 extra for pawns when the attacked square is the
// current en-passant target. Sliding pieces stop (inclusive) at the first
// occupant, per Position.AttacksFrom; leapers sum their full destination set.
func mobilityBonus(pos *board.Position, sq board.Square, pc board.Piece) Score {
	var total Score
	for _, a := range pos.AttacksFrom(sq) {
		if occ, isOcc := pos.PieceAt(a); isOcc {
			if occ.Color != pc.Color {
				total += 2
			}
		} else {
			total += 1
		}
		if pc.Kind == board.Pawn && pos.IsEnPassantTarget(a) {
			total += 2
		}
	}
	return total
}

package board_test

import (
	"testing"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/seekerror/stdlib/pkg/lang"
)

func TestMoveStringAndAlgebraicRoundTrip(t *testing.T) {
	tests := []struct {
		move board.Move
		text string
	}{
		{board.Move{Kind: board.Pawn, From: board.NewSquare(6, 4), To: board.NewSquare(4, 4)}, "e2-e4"},
		{board.Move{Kind: board.Knight, From: board.NewSquare(7, 1), To: board.NewSquare(5, 2)}, "Nb1-c3"},
		{board.Move{Kind: board.Rook, From: board.NewSquare(7, 0), To: board.NewSquare(5, 0), Capture: true}, "Ra1xa3"},
		{board.Move{Kind: board.Pawn, From: board.NewSquare(3, 3), To: board.NewSquare(2, 4), Capture: true, EnPassant: true}, "d5xe6e.p."},
		{board.Move{Kind: board.Pawn, From: board.NewSquare(1, 3), To: board.NewSquare(0, 3), Promotion: lang.Some(board.Queen)}, "d7-d8=Q"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, tt.move.String())

		parsed, err := board.ParseMoveAlgebraic(tt.text, board.White)
		require.NoError(t, err)
		assert.Equal(t, tt.move, parsed)
	}
}

func TestMoveCastleString(t *testing.T) {
	king := board.Move{Kind: board.King, From: board.NewSquare(7, 4), To: board.NewSquare(7, 6), Castle: board.CastleKingside}
	assert.Equal(t, "O-O", king.String())
	assert.True(t, king.IsCastle())

	queen := board.Move{Kind: board.King, From: board.NewSquare(7, 4), To: board.NewSquare(7, 2), Castle: board.CastleQueenside}
	assert.Equal(t, "O-O-O", queen.String())

	parsed, err := board.ParseMoveAlgebraic("O-O", board.Black)
	require.NoError(t, err)
	from, to := board.CastleSquares(board.Black, board.CastleKingside)
	assert.Equal(t, board.Move{Kind: board.King, From: from, To: to, Castle: board.CastleKingside}, parsed)
}

func TestMoveFormatLong(t *testing.T) {
	m := board.Move{Kind: board.Pawn, From: board.NewSquare(6, 4), To: board.NewSquare(4, 4)}
	assert.Equal(t, "e2e4", m.FormatLong())

	promo := board.Move{Kind: board.Pawn, From: board.NewSquare(1, 3), To: board.NewSquare(0, 3), Promotion: lang.Some(board.Queen)}
	assert.Equal(t, "d7d8q", promo.FormatLong())

	ep := board.Move{Kind: board.Pawn, From: board.NewSquare(3, 3), To: board.NewSquare(2, 4), Capture: true, EnPassant: true}
	assert.Equal(t, "d5e6e.p.", ep.FormatLong())
}

func TestParseMoveLong(t *testing.T) {
	pos := board.Initial()

	m, err := board.ParseMoveLong("e2e4", pos)
	require.NoError(t, err)
	assert.Equal(t, board.Move{Kind: board.Pawn, From: board.NewSquare(6, 4), To: board.NewSquare(4, 4)}, m)

	king, err := board.ParseMoveLong("e1g1", pos)
	require.NoError(t, err)
	assert.True(t, king.IsCastle())
}

func TestMoveLess(t *testing.T) {
	knight := board.Move{Kind: board.Knight, From: board.NewSquare(7, 1), To: board.NewSquare(5, 2)}
	king := board.Move{Kind: board.King, From: board.NewSquare(7, 4), To: board.NewSquare(7, 3)}
	assert.True(t, knight.Less(king))
	assert.False(t, king.Less(knight))
}

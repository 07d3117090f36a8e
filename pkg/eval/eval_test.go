package eval_test

import (
	"testing"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/carbon-chess/engine/pkg/board/fen"
	"github.com/carbon-chess/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominalValue(t *testing.T) {
	tests := []struct {
		kind     board.Kind
		expected eval.Score
	}{
		{board.Pawn, 100},
		{board.Knight, 300},
		{board.Bishop, 300},
		{board.Rook, 500},
		{board.Queen, 900},
		{board.King, eval.KingValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, eval.NominalValue(tt.kind))
	}
}

func TestEvaluateSymmetric(t *testing.T) {
	tests := []string{
		fen.Initial,
		"k7/8/8/8/8/8/8/7K w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, f := range tests {
		pos, err := fen.Decode(f)
		require.NoError(t, err)

		var e eval.Standard
		assert.Equal(t, eval.ZeroScore, e.Evaluate(pos, board.White))
		assert.Equal(t, eval.ZeroScore, e.Evaluate(pos, board.Black))
	}
}

func TestEvaluateFavorsMaterial(t *testing.T) {
	pos, err := fen.Decode("kq6/8/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	var e eval.Standard
	white := e.Evaluate(pos, board.White)
	black := e.Evaluate(pos, board.Black)

	assert.Negative(t, white, "white is down a queen and should score unfavorably")
	assert.Positive(t, black, "black is up a queen and should score favorably")
	assert.Equal(t, white, -black)
}

func TestEvaluateAntisymmetric(t *testing.T) {
	pos, err := fen.Decode("r3k2r/ppp2ppp/8/8/8/8/PPP2PPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var e eval.Standard
	assert.Equal(t, e.Evaluate(pos, board.White), -e.Evaluate(pos, board.Black))
}

package fen_test

import (
	"testing"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/carbon-chess/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"8/8/8/pP6/8/8/8/8 w - a6 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(pos))
	}
}

func TestDecodeFields(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 5 10")
	require.NoError(t, err)

	assert.Equal(t, board.Black, pos.SideToMove())
	assert.Equal(t, board.FullCastlingRights, pos.Castling())
	assert.Equal(t, 5, pos.Halfmove())
	assert.Equal(t, 10, pos.Fullmove())

	ep, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, "e3", ep.Algebraic())

	p, ok := pos.PieceAt(board.NewSquare(0, 0))
	require.True(t, ok)
	assert.Equal(t, board.Piece{Kind: board.Rook, Color: board.Black}, p)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"8/8/8/8/8/8/8/7 w - - 0 1",                              // wrong square count
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i9 0 1",
	}
	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err)
	}
}

func TestEncodeInitial(t *testing.T) {
	assert.Equal(t, fen.Initial, fen.Encode(board.Initial()))
}

package board_test

import (
	"testing"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	assert.Equal(t, board.ZeroSquare, board.NewSquare(0, 0))
	assert.Equal(t, board.Square(7), board.NewSquare(0, 7))
	assert.Equal(t, board.Square(56), board.NewSquare(7, 0))
	assert.Equal(t, board.Square(63), board.NewSquare(7, 7))
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, board.Square(0).IsValid())
	assert.True(t, board.Square(63).IsValid())
	assert.False(t, board.Square(64).IsValid())
}

func TestSquareRankFile(t *testing.T) {
	sq := board.NewSquare(1, 4)
	assert.Equal(t, 1, sq.Rank())
	assert.Equal(t, 4, sq.File())
	assert.True(t, sq.RankIs(7))
	assert.False(t, sq.RankIs(8))
	assert.True(t, sq.FileIs('e'))
	assert.True(t, sq.FileIs('E'))
	assert.False(t, sq.FileIs('d'))
}

func TestSquarePositionalValue(t *testing.T) {
	assert.Equal(t, 0, board.NewSquare(0, 0).PositionalValue())
	assert.Equal(t, 0, board.NewSquare(7, 7).PositionalValue())
	assert.Equal(t, 3, board.NewSquare(3, 3).PositionalValue())
	assert.Equal(t, 3, board.NewSquare(4, 4).PositionalValue())
}

func TestSquareAlgebraic(t *testing.T) {
	tests := []struct {
		sq   board.Square
		text string
	}{
		{board.NewSquare(0, 0), "a8"},
		{board.NewSquare(7, 0), "a1"},
		{board.NewSquare(7, 7), "h1"},
		{board.NewSquare(4, 4), "e4"},
		{board.NewSquare(0, 7), "h8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, tt.sq.Algebraic())
		assert.Equal(t, tt.text, tt.sq.String())

		parsed, err := board.ParseSquareAlgebraic(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.sq, parsed)
	}
}

func TestParseSquareAlgebraicInvalid(t *testing.T) {
	tests := []string{"", "e", "e44", "i4", "e9", "e0"}
	for _, tt := range tests {
		_, err := board.ParseSquareAlgebraic(tt)
		assert.Error(t, err)
		assert.True(t, board.IsKind(err, board.ParseError))
	}
}

func TestSquareDirections(t *testing.T) {
	e4 := board.NewSquare(4, 4)

	n, ok := e4.North(1)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(3, 4), n)

	s, ok := e4.South(1)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(5, 4), s)

	e, ok := e4.East(1)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 5), e)

	w, ok := e4.West(1)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 3), w)

	_, ok = board.NewSquare(0, 0).North(1)
	assert.False(t, ok)
	_, ok = board.NewSquare(0, 0).West(1)
	assert.False(t, ok)
	_, ok = board.NewSquare(7, 7).South(1)
	assert.False(t, ok)
	_, ok = board.NewSquare(7, 7).East(1)
	assert.False(t, ok)
}

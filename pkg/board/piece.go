package board

import "fmt"

// Kind represents a chess piece type, color-agnostic. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// order gives the total ordering of kinds used to canonicalize move lists:
// Knight < Bishop < Rook < Queen < Pawn < King.
var order = map[Kind]int{
	Knight: 0,
	Bishop: 1,
	Rook:   2,
	Queen:  3,
	Pawn:   4,
	King:   5,
}

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a (Kind, Color) pair. The zero value is not a valid piece.
type Piece struct {
	Kind  Kind
	Color Color
}

func (p Piece) IsValid() bool {
	return p.Kind.IsValid()
}

// Less gives the stable total order used to canonicalize move lists: White
// before Black, then Knight < Bishop < Rook < Queen < Pawn < King.
func (p Piece) Less(o Piece) bool {
	if p.Color != o.Color {
		return p.Color < o.Color
	}
	return order[p.Kind] < order[o.Kind]
}

func (p Piece) String() string {
	if p.Color == White {
		return fmt.Sprintf("%c", []rune(p.Kind.String())[0]-('a'-'A'))
	}
	return p.Kind.String()
}

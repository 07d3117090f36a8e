// Package fen reads and writes positions in Forsyth-Edwards Notation, the
// canonical external encoding and transposition cache key.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/carbon-chess/engine/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Position. It accepts any well-formed FEN.
func Decode(s string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: %q", s)
	}

	// (1) Piece placement, rank 8 down to rank 1, file a through h per rank.

	var placements []board.Placement
	sq := board.ZeroSquare
	for _, r := range parts[0] {
		switch {
		case r == '/':
			// cosmetic rank separator
		case unicode.IsDigit(r):
			sq += board.Square(r - '0')
		case unicode.IsLetter(r):
			piece, ok := parsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, s)
			}
			placements = append(placements, board.Placement{Square: sq, Piece: piece})
			sq++
		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", r, s)
		}
	}
	if sq != board.NumSquares {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", s)
	}

	// (2) Active color.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	// (4) En passant target square, or "-".

	var ep lang.Optional[board.Square]
	if parts[3] != "-" {
		target, err := board.ParseSquareAlgebraic(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q: %w", s, err)
		}
		ep = lang.Some(target)
	}

	// (5) Halfmove clock.

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	// (6) Fullmove number.

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 0 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	return board.NewPosition(placements, active, castling, ep, halfmove, fullmove)
}

// Encode renders the position in canonical FEN form, suitable for both
// external I/O and as the transposition cache key.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		blanks := 0
		for file := 0; file < 8; file++ {
			pc, ok := pos.PieceAt(board.NewSquare(rank, file))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(pc))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if rank < 7 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.Algebraic()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(pos.SideToMove()), printCastling(pos.Castling()), ep, pos.Halfmove(), pos.Fullmove())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Piece, bool) {
	k, ok := board.ParseKind(r)
	if !ok {
		return board.Piece{}, false
	}
	if unicode.IsUpper(r) {
		return board.Piece{Kind: k, Color: board.White}, true
	}
	return board.Piece{Kind: k, Color: board.Black}, true
}

func printPiece(p board.Piece) rune {
	return []rune(p.String())[0]
}

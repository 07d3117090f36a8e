package board

import (
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Move describes one ply. Castling moves ignore Capture and EnPassant;
// origin/destination are still populated with the king's actual travel
// squares so that generated and parsed castling moves compare equal.
type Move struct {
	Kind      Kind
	From, To  Square
	Capture   bool
	EnPassant bool
	Promotion lang.Optional[Kind]
	Castle    CastleVariant
}

func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// Less gives the stable ordering used to canonicalize legal move lists:
// by mover Kind (Knight < Bishop < Rook < Queen < Pawn < King), then by
// origin square, then by destination square, then by promotion kind.
func (m Move) Less(o Move) bool {
	if m.Kind != o.Kind {
		return order[m.Kind] < order[o.Kind]
	}
	if m.From != o.From {
		return m.From < o.From
	}
	if m.To != o.To {
		return m.To < o.To
	}
	mp, _ := m.Promotion.V()
	op, _ := o.Promotion.V()
	return order[mp] < order[op]
}

// CastleSquares returns the king's origin and destination square for the
// given color and variant.
func CastleSquares(c Color, v CastleVariant) (from, to Square) {
	rank := 7
	if c == Black {
		rank = 0
	}
	from = NewSquare(rank, 4) // e-file
	if v == CastleKingside {
		to = NewSquare(rank, 6) // g-file
	} else {
		to = NewSquare(rank, 2) // c-file
	}
	return from, to
}

// FormatLong renders the move in the wire long-algebraic format used with
// the protocol front-end: <from><to>[e.p.][promotion-letter]. Castling is
// naturally rendered as the king's two-square movement since From/To are
// always populated with the king's travel squares.
func (m Move) FormatLong() string {
	var sb strings.Builder
	sb.WriteString(m.From.Algebraic())
	sb.WriteString(m.To.Algebraic())
	if m.EnPassant {
		sb.WriteString("e.p.")
	}
	if k, ok := m.Promotion.V(); ok {
		sb.WriteString(strings.ToLower(k.String()))
	}
	return sb.String()
}

// ParseMoveLong parses the wire long-algebraic format. Since the wire format
// carries no piece letter, the position is consulted to determine the
// mover's Kind, and to recognize castling by the king's travel squares.
func ParseMoveLong(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return Move{}, newParseError("move %q too short", s)
	}
	from, err := ParseSquareAlgebraic(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquareAlgebraic(s[2:4])
	if err != nil {
		return Move{}, err
	}
	rest := s[4:]

	piece, ok := pos.PieceAt(from)
	if !ok {
		return Move{}, newParseError("move %q: no piece on origin square", s)
	}

	if piece.Kind == King {
		for _, c := range [...]Color{White, Black} {
			for _, v := range [...]CastleVariant{CastleKingside, CastleQueenside} {
				cf, ct := CastleSquares(c, v)
				if cf == from && ct == to {
					return Move{Kind: King, From: from, To: to, Castle: v}, nil
				}
			}
		}
	}

	ep := strings.HasPrefix(rest, "e.p.")
	if ep {
		rest = rest[len("e.p."):]
	}

	m := Move{Kind: piece.Kind, From: from, To: to, EnPassant: ep}
	m.Capture = pos.Occupied(to) || ep
	if rest != "" {
		k, ok := ParseKind([]rune(rest)[0])
		if !ok {
			return Move{}, newParseError("move %q: invalid promotion %q", s, rest)
		}
		m.Promotion = lang.Some(k)
	}
	return m, nil
}

// String renders the move in the internal algebraic test notation:
// [KQRBN]?<from>[-x]<to>[e.p.][=Q|=R|=B|=N], or "O-O"/"O-O-O".
func (m Move) String() string {
	if m.IsCastle() {
		return m.Castle.String()
	}

	var sb strings.Builder
	if m.Kind != Pawn {
		sb.WriteString(strings.ToUpper(m.Kind.String()))
	}
	sb.WriteString(m.From.Algebraic())
	if m.Capture {
		sb.WriteString("x")
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(m.To.Algebraic())
	if m.EnPassant {
		sb.WriteString("e.p.")
	}
	if k, ok := m.Promotion.V(); ok {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(k.String()))
	}
	return sb.String()
}

// ParseMoveAlgebraic parses the internal algebraic test notation. Color
// disambiguates castling, whose text form carries no square information.
func ParseMoveAlgebraic(s string, color Color) (Move, error) {
	switch s {
	case "O-O":
		from, to := CastleSquares(color, CastleKingside)
		return Move{Kind: King, From: from, To: to, Castle: CastleKingside}, nil
	case "O-O-O":
		from, to := CastleSquares(color, CastleQueenside)
		return Move{Kind: King, From: from, To: to, Castle: CastleQueenside}, nil
	}

	runes := []rune(s)
	i := 0
	kind := Pawn
	if i < len(runes) && strings.ContainsRune("KQRBN", runes[i]) {
		k, _ := ParseKind(runes[i])
		kind = k
		i++
	}
	if i+2 > len(runes) {
		return Move{}, newParseError("invalid move text %q", s)
	}
	from, err := ParseSquareAlgebraic(string(runes[i : i+2]))
	if err != nil {
		return Move{}, err
	}
	i += 2

	if i >= len(runes) || (runes[i] != '-' && runes[i] != 'x') {
		return Move{}, newParseError("invalid move text %q: expected '-' or 'x'", s)
	}
	capture := runes[i] == 'x'
	i++

	if i+2 > len(runes) {
		return Move{}, newParseError("invalid move text %q", s)
	}
	to, err := ParseSquareAlgebraic(string(runes[i : i+2]))
	if err != nil {
		return Move{}, err
	}
	i += 2

	m := Move{Kind: kind, From: from, To: to, Capture: capture}

	rest := string(runes[i:])
	if strings.HasPrefix(rest, "e.p.") {
		m.EnPassant = true
		rest = rest[len("e.p."):]
	}
	if strings.HasPrefix(rest, "=") {
		rest = rest[1:]
		if len(rest) != 1 {
			return Move{}, newParseError("invalid promotion in move text %q", s)
		}
		k, ok := ParseKind([]rune(rest)[0])
		if !ok {
			return Move{}, newParseError("invalid promotion in move text %q", s)
		}
		m.Promotion = lang.Some(k)
	}
	return m, nil
}

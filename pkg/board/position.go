package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Placement pairs a square with the piece occupying it, for Position construction.
type Placement struct {
	Square Square
	Piece  Piece
}

func (p Placement) String() string {
	return fmt.Sprintf("%v@%v", p.Piece, p.Square)
}

// Position represents an immutable board position suitable for move
// generation: piece placement, side to move, castling rights, and the
// en-passant target, but no draw bookkeeping (repetition, 50-move rule).
// Positions are value objects: NewPosition and MakeMove always return a
// fresh Position; none is ever mutated in place.
type Position struct {
	cells      [64]Piece
	sideToMove Color
	castling   Castling
	enPassant  lang.Optional[Square]
	halfmove   int
	fullmove   int
}

// NewPosition builds a Position from an explicit piece placement and game
// state. Returns ParseError on a duplicate placement or an en-passant
// target off rank 3/6.
func NewPosition(placements []Placement, side Color, castling Castling, ep lang.Optional[Square], halfmove, fullmove int) (*Position, error) {
	p := &Position{sideToMove: side, castling: castling, enPassant: ep, halfmove: halfmove, fullmove: fullmove}

	for _, pl := range placements {
		if p.cells[pl.Square].Kind != NoKind {
			return nil, newParseError("duplicate placement on %v", pl.Square)
		}
		p.cells[pl.Square] = pl.Piece
	}
	if sq, ok := ep.V(); ok && !sq.RankIs(3) && !sq.RankIs(6) {
		return nil, newParseError("en passant target %v not on rank 3 or 6", sq)
	}
	return p, nil
}

// Initial returns the standard chess starting position.
func Initial() *Position {
	var placements []Placement
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		placements = append(placements,
			Placement{NewSquare(0, file), Piece{back[file], Black}},
			Placement{NewSquare(1, file), Piece{Pawn, Black}},
			Placement{NewSquare(6, file), Piece{Pawn, White}},
			Placement{NewSquare(7, file), Piece{back[file], White}},
		)
	}
	pos, err := NewPosition(placements, White, FullCastlingRights, lang.Optional[Square]{}, 0, 1)
	if err != nil {
		panic(err) // unreachable: the starting position is always well-formed
	}
	return pos
}

func (p *Position) SideToMove() Color   { return p.sideToMove }
func (p *Position) Castling() Castling  { return p.castling }
func (p *Position) Halfmove() int       { return p.halfmove }
func (p *Position) Fullmove() int       { return p.fullmove }
func (p *Position) EnPassant() (Square, bool) { return p.enPassant.V() }

func (p *Position) PieceAt(sq Square) (Piece, bool) {
	pc := p.cells[sq]
	return pc, pc.Kind != NoKind
}

func (p *Position) Occupied(sq Square) bool {
	return p.cells[sq].Kind != NoKind
}

func (p *Position) IsEnPassantTarget(sq Square) bool {
	t, ok := p.enPassant.V()
	return ok && t == sq
}

func (p *Position) CastleKingsideRights(c Color) bool {
	return p.castling.IsAllowed(KingSide(c))
}

func (p *Position) CastleQueensideRights(c Color) bool {
	return p.castling.IsAllowed(QueenSide(c))
}

// PiecesOfColor returns every placement belonging to the given color.
func (p *Position) PiecesOfColor(c Color) []Placement {
	var ret []Placement
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if pc, ok := p.PieceAt(sq); ok && pc.Color == c {
			ret = append(ret, Placement{sq, pc})
		}
	}
	return ret
}

// PiecesOfKindAndColor returns every square holding a piece of the given kind and color.
func (p *Position) PiecesOfKindAndColor(k Kind, c Color) []Square {
	var ret []Square
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if pc, ok := p.PieceAt(sq); ok && pc.Kind == k && pc.Color == c {
			ret = append(ret, sq)
		}
	}
	return ret
}

func (p *Position) kingSquare(c Color) (Square, bool) {
	squares := p.PiecesOfKindAndColor(King, c)
	if len(squares) != 1 {
		return ZeroSquare, false
	}
	return squares[0], true
}

// forwardDir returns the rank-index delta of a one-square pawn push for the
// given color: White moves toward rank index 0 (the 8th rank), Black toward
// rank index 7 (the 1st rank).
func forwardDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func backRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// AttacksFrom returns the squares the piece standing on sq attacks, given
// current occupancy: sliding pieces walk each ray and stop at (inclusive
// of) the first occupant; leapers return their full destination set; pawns
// return their two forward diagonals plus, when en-passant participation
// applies, the square behind the en-passant target.
func (p *Position) AttacksFrom(sq Square) []Square {
	piece, ok := p.PieceAt(sq)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case Pawn:
		return p.pawnAttacks(sq, piece.Color)
	case Knight:
		return leap(sq, knightOffsets)
	case King:
		return leap(sq, kingOffsets)
	case Bishop:
		return p.slide(sq, diagonalDirs)
	case Rook:
		return p.slide(sq, orthogonalDirs)
	case Queen:
		return p.slide(sq, append(append([]dir{}, diagonalDirs...), orthogonalDirs...))
	default:
		return nil
	}
}

func (p *Position) pawnAttacks(sq Square, color Color) []Square {
	fwd := forwardDir(color)
	var diag [2]Square
	var ok [2]bool
	diag[0], ok[0] = sq.mv(fwd, -1)
	diag[1], ok[1] = sq.mv(fwd, 1)

	var ret []Square
	for i, d := range diag {
		if ok[i] {
			ret = append(ret, d)
		}
	}

	ep, epOk := p.EnPassant()
	if !epOk {
		return ret
	}
	for i, d := range diag {
		if !ok[i] || d != ep {
			continue
		}
		ret2, ok2 := ep.mv(-fwd, 0)
		if !ok2 {
			continue
		}
		if pushed, occ := p.PieceAt(ret2); occ && pushed.Kind == Pawn && pushed.Color == color.Opponent() {
			ret = append(ret, ret2)
		}
	}
	return ret
}

type dir struct{ dv, dh int }

var knightOffsets = []dir{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingOffsets = []dir{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
var diagonalDirs = []dir{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDirs = []dir{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func leap(sq Square, offsets []dir) []Square {
	var ret []Square
	for _, o := range offsets {
		if d, ok := sq.mv(o.dv, o.dh); ok {
			ret = append(ret, d)
		}
	}
	return ret
}

func (p *Position) slide(sq Square, dirs []dir) []Square {
	var ret []Square
	for _, o := range dirs {
		for n := 1; ; n++ {
			d, ok := sq.mv(o.dv*n, o.dh*n)
			if !ok {
				break
			}
			ret = append(ret, d)
			if p.Occupied(d) {
				break
			}
		}
	}
	return ret
}

// ColorThreatens reports whether any piece of attacker could capture on
// target given current occupancy, ignoring whether doing so would leave
// the attacker's own king in check.
func (p *Position) ColorThreatens(attacker Color, target Square) bool {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		pc, ok := p.PieceAt(sq)
		if !ok || pc.Color != attacker {
			continue
		}
		for _, a := range p.AttacksFrom(sq) {
			if a == target {
				return true
			}
		}
	}
	return false
}

// PseudoLegalMoves generates every move obeying piece geometry and own-piece
// blocking for the side to move, ignoring whether the result leaves the
// mover's own king in check.
func (p *Position) PseudoLegalMoves() []Move {
	var ret []Move
	color := p.sideToMove
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		pc, ok := p.PieceAt(sq)
		if !ok || pc.Color != color {
			continue
		}
		switch pc.Kind {
		case Pawn:
			ret = append(ret, p.genPawnMoves(sq, color)...)
		case Knight:
			ret = append(ret, p.genLeaperMoves(sq, Knight, color, knightOffsets)...)
		case Bishop:
			ret = append(ret, p.genSliderMoves(sq, Bishop, color, diagonalDirs)...)
		case Rook:
			ret = append(ret, p.genSliderMoves(sq, Rook, color, orthogonalDirs)...)
		case Queen:
			ret = append(ret, p.genSliderMoves(sq, Queen, color, append(append([]dir{}, diagonalDirs...), orthogonalDirs...))...)
		case King:
			ret = append(ret, p.genLeaperMoves(sq, King, color, kingOffsets)...)
			ret = append(ret, p.genCastleMoves(color)...)
		}
	}
	return ret
}

var promotionKinds = []Kind{Queen, Knight, Rook, Bishop}

func (p *Position) genPawnMoves(sq Square, color Color) []Move {
	fwd := forwardDir(color)
	promRank := 0
	if color == Black {
		promRank = 7
	}
	startRank := 6
	if color == Black {
		startRank = 1
	}

	var ret []Move

	if dest, ok := sq.mv(fwd, 0); ok && !p.Occupied(dest) {
		ret = append(ret, emitPawn(sq, dest, false, false, dest.Rank() == promRank)...)

		if sq.Rank() == startRank {
			if dest2, ok2 := sq.mv(2*fwd, 0); ok2 && !p.Occupied(dest2) {
				ret = append(ret, Move{Kind: Pawn, From: sq, To: dest2})
			}
		}
	}

	for _, dh := range [2]int{-1, 1} {
		dest, ok := sq.mv(fwd, dh)
		if !ok {
			continue
		}
		if occ, isOcc := p.PieceAt(dest); isOcc {
			if occ.Color == color.Opponent() {
				ret = append(ret, emitPawn(sq, dest, true, false, dest.Rank() == promRank)...)
			}
			continue
		}
		if p.IsEnPassantTarget(dest) {
			ret = append(ret, Move{Kind: Pawn, From: sq, To: dest, Capture: true, EnPassant: true})
		}
	}
	return ret
}

func emitPawn(from, to Square, capture, enPassant, promote bool) []Move {
	if !promote {
		return []Move{{Kind: Pawn, From: from, To: to, Capture: capture, EnPassant: enPassant}}
	}
	var ret []Move
	for _, k := range promotionKinds {
		ret = append(ret, Move{Kind: Pawn, From: from, To: to, Capture: capture, EnPassant: enPassant, Promotion: lang.Some(k)})
	}
	return ret
}

func (p *Position) genLeaperMoves(sq Square, kind Kind, color Color, offsets []dir) []Move {
	var ret []Move
	for _, o := range offsets {
		dest, ok := sq.mv(o.dv, o.dh)
		if !ok {
			continue
		}
		if occ, isOcc := p.PieceAt(dest); isOcc {
			if occ.Color != color {
				ret = append(ret, Move{Kind: kind, From: sq, To: dest, Capture: true})
			}
			continue
		}
		ret = append(ret, Move{Kind: kind, From: sq, To: dest})
	}
	return ret
}

func (p *Position) genSliderMoves(sq Square, kind Kind, color Color, dirs []dir) []Move {
	var ret []Move
	for _, o := range dirs {
		for n := 1; ; n++ {
			dest, ok := sq.mv(o.dv*n, o.dh*n)
			if !ok {
				break
			}
			occ, isOcc := p.PieceAt(dest)
			if !isOcc {
				ret = append(ret, Move{Kind: kind, From: sq, To: dest})
				continue
			}
			if occ.Color != color {
				ret = append(ret, Move{Kind: kind, From: sq, To: dest, Capture: true})
			}
			break
		}
	}
	return ret
}

func (p *Position) genCastleMoves(color Color) []Move {
	var ret []Move
	opp := color.Opponent()
	rank := backRank(color)
	kingSq := NewSquare(rank, 4)

	if p.CastleKingsideRights(color) {
		f, g := NewSquare(rank, 5), NewSquare(rank, 6)
		if !p.Occupied(f) && !p.Occupied(g) && !p.ColorThreatens(opp, kingSq) && !p.ColorThreatens(opp, f) {
			ret = append(ret, Move{Kind: King, From: kingSq, To: g, Castle: CastleKingside})
		}
	}
	if p.CastleQueensideRights(color) {
		d, c, b := NewSquare(rank, 3), NewSquare(rank, 2), NewSquare(rank, 1)
		if !p.Occupied(d) && !p.Occupied(c) && !p.Occupied(b) && !p.ColorThreatens(opp, kingSq) && !p.ColorThreatens(opp, d) {
			ret = append(ret, Move{Kind: King, From: kingSq, To: c, Castle: CastleQueenside})
		}
	}
	return ret
}

// LegalMoves filters PseudoLegalMoves down to those make_move accepts, sorted
// by the canonical move ordering. Fails with Checkmate or Stalemate when no
// legal move exists.
func (p *Position) LegalMoves() ([]Move, error) {
	var ret []Move
	for _, m := range p.PseudoLegalMoves() {
		_, err := p.MakeMove(m)
		switch {
		case err == nil:
			ret = append(ret, m)
		case IsKind(err, IllegalMove):
			// excluded: self-check or castling through/into check
		default:
			return nil, err
		}
	}

	if len(ret) == 0 {
		if kingSq, ok := p.kingSquare(p.sideToMove); ok && p.ColorThreatens(p.sideToMove.Opponent(), kingSq) {
			return nil, newError(Checkmate, "no legal moves, king threatened")
		}
		return nil, newError(Stalemate, "no legal moves")
	}

	for i := 0; i < len(ret); i++ {
		for j := i + 1; j < len(ret); j++ {
			if ret[j].Less(ret[i]) {
				ret[i], ret[j] = ret[j], ret[i]
			}
		}
	}
	return ret, nil
}

// MakeMove applies a pseudo-legal move to an immutable position, returning
// a new position or a failure. All clocks and side-to-move are updated
// regardless of branch; the resulting en-passant target is always cleared,
// since make_move never sets a new one (only from_fen/setboard do).
func (p *Position) MakeMove(m Move) (*Position, error) {
	mover := p.sideToMove

	next := *p
	next.enPassant = lang.Optional[Square]{}
	next.sideToMove = mover.Opponent()
	if mover == Black {
		next.fullmove = p.fullmove + 1
	}
	if m.Capture || m.Kind == Pawn {
		next.halfmove = 0
	} else {
		next.halfmove = p.halfmove + 1
	}

	switch {
	case m.IsCastle():
		if err := next.applyCastle(p, mover, m); err != nil {
			return nil, err
		}
	case m.EnPassant:
		if err := next.applyEnPassant(p, mover, m); err != nil {
			return nil, err
		}
	default:
		if err := next.applyRegular(p, mover, m); err != nil {
			return nil, err
		}
	}

	if kingSq, ok := next.kingSquare(mover); ok {
		if next.ColorThreatens(mover.Opponent(), kingSq) {
			return nil, newIllegalMoveError("move leaves king on %v in check", kingSq)
		}
	}
	return &next, nil
}

func (p *Position) applyCastle(orig *Position, color Color, m Move) error {
	variant := m.Castle
	right := KingSide(color)
	if variant == CastleQueenside {
		right = QueenSide(color)
	}
	if !orig.castling.IsAllowed(right) {
		return newIllegalMoveError("castling right %v not held", right)
	}

	rank := backRank(color)
	kingSq := NewSquare(rank, 4)
	var rookSq, rookDest Square
	var between []Square
	var cross Square
	if variant == CastleKingside {
		rookSq = NewSquare(rank, 7)
		rookDest = NewSquare(rank, 5)
		cross = NewSquare(rank, 5)
		between = []Square{NewSquare(rank, 5), NewSquare(rank, 6)}
	} else {
		rookSq = NewSquare(rank, 0)
		rookDest = NewSquare(rank, 3)
		cross = NewSquare(rank, 3)
		between = []Square{NewSquare(rank, 1), NewSquare(rank, 2), NewSquare(rank, 3)}
	}

	for _, sq := range between {
		if orig.Occupied(sq) {
			return newIllegalMoveError("castling path blocked on %v", sq)
		}
	}

	kp, ok := orig.PieceAt(kingSq)
	if !ok || kp.Kind != King || kp.Color != color {
		return newBadBoardStateError("no %v king on %v", color, kingSq)
	}
	rp, ok := orig.PieceAt(rookSq)
	if !ok || rp.Kind != Rook || rp.Color != color {
		return newBadBoardStateError("no %v rook on %v", color, rookSq)
	}

	opp := color.Opponent()
	if orig.ColorThreatens(opp, kingSq) || orig.ColorThreatens(opp, cross) {
		return newIllegalMoveError("castling through check via %v", cross)
	}

	p.cells[kingSq] = Piece{}
	p.cells[rookSq] = Piece{}
	p.cells[m.To] = Piece{Kind: King, Color: color}
	p.cells[rookDest] = Piece{Kind: Rook, Color: color}
	p.castling = p.castling.Without(Both(color))
	return nil
}

func (p *Position) applyEnPassant(orig *Position, color Color, m Move) error {
	ep, ok := orig.EnPassant()
	if !ok || ep != m.To {
		return newIllegalMoveError("no en passant target at %v", m.To)
	}
	if orig.Occupied(m.To) {
		return newBadBoardStateError("en passant landing square %v occupied", m.To)
	}

	fwd := forwardDir(color)
	captured, ok := m.To.mv(-fwd, 0)
	if !ok {
		return newBadBoardStateError("en passant capture square behind %v off board", m.To)
	}
	cp, ok := orig.PieceAt(captured)
	if !ok || cp.Kind != Pawn || cp.Color == color {
		return newBadBoardStateError("no captured pawn behind en passant target %v", m.To)
	}

	p.cells[captured] = Piece{}
	p.cells[m.From] = Piece{}
	p.cells[m.To] = Piece{Kind: Pawn, Color: color}
	return nil
}

func (p *Position) applyRegular(orig *Position, color Color, m Move) error {
	mover, ok := orig.PieceAt(m.From)
	if !ok || mover.Kind != m.Kind || mover.Color != color {
		return newBadBoardStateError("no %v %v on %v", color, m.Kind, m.From)
	}

	dest, destOk := orig.PieceAt(m.To)
	if destOk && dest.Color == color {
		return newIllegalMoveError("destination %v occupied by own piece", m.To)
	}
	if m.Capture && !destOk {
		return newIllegalMoveError("capture flagged but destination %v empty", m.To)
	}
	if !m.Capture && destOk {
		return newIllegalMoveError("destination %v occupied but move not flagged as capture", m.To)
	}

	final := mover
	if promo, ok := m.Promotion.V(); ok {
		if mover.Kind != Pawn {
			return newIllegalMoveError("promotion on non-pawn mover %v", mover.Kind)
		}
		final = Piece{Kind: promo, Color: color}
	}

	p.cells[m.From] = Piece{}
	p.cells[m.To] = final

	switch mover.Kind {
	case King:
		p.castling = p.castling.Without(Both(color))
	case Rook:
		rank := backRank(color)
		switch m.From {
		case NewSquare(rank, 7):
			p.castling = p.castling.Without(KingSide(color))
		case NewSquare(rank, 0):
			p.castling = p.castling.Without(QueenSide(color))
		}
	}
	return nil
}

func (p *Position) String() string {
	var sb strings.Builder
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if sq != 0 && int(sq)%8 == 0 {
			sb.WriteRune('/')
		}
		if pc, ok := p.PieceAt(sq); ok {
			sb.WriteString(pc.String())
		} else {
			sb.WriteRune('-')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.Algebraic()
	}
	return fmt.Sprintf("%v %v %v(%v)", sb.String(), p.sideToMove, p.castling, ep)
}

package board

import "fmt"

// ErrorKind classifies the failures the core can surface, per the error taxonomy.
type ErrorKind uint8

const (
	// ParseError signals malformed move or square text, or a FEN placement
	// that NewPosition rejects. fen.Decode reports its own syntax errors
	// (field count, square count, color, castling, clocks) as plain errors,
	// not as *Error.
	ParseError ErrorKind = iota
	// IllegalMove signals a move failed make_move's preconditions, including
	// moving into check and castling through or into an attacked square.
	IllegalMove
	// BadBoardState signals an internal inconsistency found during move
	// application, e.g. an en-passant target square that was found occupied.
	BadBoardState
	// Checkmate signals a terminal position with no legal moves and the side
	// to move in check.
	Checkmate
	// Stalemate signals a terminal position with no legal moves and the side
	// to move not in check.
	Stalemate
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case IllegalMove:
		return "IllegalMove"
	case BadBoardState:
		return "BadBoardState"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "?"
	}
}

// Error is the concrete error type returned by the board and move packages.
// Callers that need to distinguish failure classes should use errors.As and
// inspect Kind, rather than matching on message text.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.msg)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func newParseError(format string, args ...any) error {
	return newError(ParseError, format, args...)
}

func newIllegalMoveError(format string, args ...any) error {
	return newError(IllegalMove, format, args...)
}

func newBadBoardStateError(format string, args ...any) error {
	return newError(BadBoardState, format, args...)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

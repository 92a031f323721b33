package chess

import "fmt"

// MoveFlags marks the special properties of a move.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagDoublePawnPush
)

// Move is a single move as produced by the move generator. It is a value:
// it refers to squares, never into a particular Board.
type Move struct {
	// Source square.
	From Square

	// Destination square. For castling this is the king's destination.
	To Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// Capture, en passant, castling and double-push markers.
	Flags MoveFlags
}

// Is reports whether all of the given flags are set.
func (m Move) Is(f MoveFlags) bool {
	return m.Flags&f == f
}

// IsCapture reports whether the move removes an enemy piece, including
// en passant captures.
func (m Move) IsCapture() bool {
	return m.Flags&(FlagCapture|FlagEnPassant) != 0
}

// IsCastle reports whether the move is either castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// UCI returns the coordinate form of the move: <from><to>[promotion].
func (m Move) UCI() string {
	buf := []byte{byte(m.From.Col), byte(m.From.Rank), byte(m.To.Col), byte(m.To.Rank)}
	if m.Promotion != Empty {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.UCI()
}

// UCIMove is the syntactic content of a coordinate move string.
type UCIMove struct {
	From      Square
	To        Square
	Promotion Piece
}

// ParseUCI parses a coordinate move such as "e2e4" or "a7a8q". Only the
// syntax is checked; legality is the move generator's job.
func ParseUCI(text string) (UCIMove, error) {
	if len(text) != 4 && len(text) != 5 {
		return UCIMove{}, fmt.Errorf("move %q: want 4 or 5 characters", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return UCIMove{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return UCIMove{}, fmt.Errorf("move %q: %w", text, err)
	}
	m := UCIMove{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return UCIMove{}, fmt.Errorf("move %q: invalid promotion piece %q", text, text[4])
		}
	}
	return m, nil
}

package chess

// Board represents a chess board with all state needed for the game.
// A Board holds no pointers, so assigning or copying it yields an
// independent position.
type Board struct {
	// The board squares, indexed board[file][rank] with 0-7 indices.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The fullmove number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	// Remaining castling rights.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WKing = Sq('e', '1')
	b.BKing = Sq('e', '8')
	b.Castling = AllCastling
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on a square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// GetByIndex returns the piece at the given board array indices.
func (b *Board) GetByIndex(col, rank int) Piece {
	return b.Squares[col][rank]
}

// SetByIndex places a piece at the given board array indices.
func (b *Board) SetByIndex(col, rank int, piece Piece) {
	b.Squares[col][rank] = piece
}

// KingSquare returns the tracked king square of the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKingSquare records where the king of the given colour stands.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// SetEnPassant records the en passant target square.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CountPieces returns how many of the given coloured piece are on the board.
func (b *Board) CountPieces(piece Piece) int {
	count := 0
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[col][rank] == piece {
				count++
			}
		}
	}
	return count
}

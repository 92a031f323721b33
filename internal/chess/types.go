// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN active-colour letter ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Off // Off the board
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Off"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K', ' '}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the pieces a pawn may promote to, in generation order.
var PromotionPieces = [...]Piece{Queen, Rook, Bishop, Knight}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankConvert converts a rank character to a board array index.
// It returns -1 for characters off the board.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a board array index.
// It returns -1 for characters off the board.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a board array index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a board array index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether p is a coloured piece rather than Empty or Off.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// CastlingRights is the set of four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether all flags in r are set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String renders the rights in FEN order ("KQkq"), or "-" if none remain.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// KingsideRight returns the kingside flag of the given colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside flag of the given colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// GameStatus classifies a position.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawInsufficientMaterial
	DrawThreefoldRepetition
)

var gameStatusNames = [...]string{
	Ongoing:                  "ongoing",
	Checkmate:                "checkmate",
	Stalemate:                "stalemate",
	DrawFiftyMove:            "draw-fifty-move",
	DrawInsufficientMaterial: "draw-insufficient-material",
	DrawThreefoldRepetition:  "draw-threefold-repetition",
}

// String returns the status tag used at the service boundary.
func (s GameStatus) String() string {
	if s >= 0 && int(s) < len(gameStatusNames) {
		return gameStatusNames[s]
	}
	return "unknown"
}

// IsGameOver reports whether the status ends the game.
func (s GameStatus) IsGameOver() bool {
	return s != Ongoing
}

// IsDraw reports whether the status is one of the draw conditions.
func (s GameStatus) IsDraw() bool {
	return s == Stalemate || s == DrawFiftyMove ||
		s == DrawInsufficientMaterial || s == DrawThreefoldRepetition
}

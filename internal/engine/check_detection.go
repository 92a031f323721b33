package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureCols = []int{-1, 1}
)

// InCheck reports whether the side to move is in check.
func InCheck(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove)
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)

	// If king position not tracked, search for it
	if !king.Valid() || board.At(king) != chess.MakeColouredPiece(colour, chess.King) {
		king = findKing(board, colour)
		if !king.Valid() {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank)
			}
		}
	}
	return chess.Square{}
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Pawns attack diagonally forward only; their pushes never attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a white pawn attacks from one rank below.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range pawnCaptureCols {
		if board.At(sq.Offset(dc, pawnDir)) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.At(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.At(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)

	// Check sliding pieces (bishop, rook, queen) along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if slidingAttack(board, sq, diagonalDirs, bishop, queen) {
		return true
	}

	// Check sliding pieces along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return slidingAttack(board, sq, straightDirs, rook, queen)
}

// slidingAttack walks each direction from sq until the first occupied square
// and reports whether it holds one of the two attacking pieces.
func slidingAttack(board *chess.Board, sq chess.Square, dirs [][2]int, a, b chess.Piece) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.Valid() {
			piece := board.At(cur)
			if piece != chess.Empty {
				if piece == a || piece == b {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}

package engine

import (
	"github.com/lgbarn/alphadepth-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the fifty-move rule
// applies: fifty full moves by both sides without a pawn move or capture.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences that makes a repetition draw.
const RepetitionLimit = 3

// HasInsufficientMaterial reports whether neither side can ever mate:
// bare kings, a single minor piece against a bare king, or one bishop each
// on squares of the same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	// Indexed by chess.Colour.
	var minors, bishops [2]int
	var bishopOnLight [2]bool

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.GetByIndex(file, rank)
			if !chess.IsOccupied(piece) {
				continue
			}
			colour := chess.ExtractColour(piece)

			switch chess.ExtractPiece(piece) {
			case chess.King:
			case chess.Knight:
				minors[colour]++
			case chess.Bishop:
				minors[colour]++
				bishops[colour]++
				bishopOnLight[colour] = chess.SquareAt(file, rank).IsLight()
			default:
				return false
			}
		}
	}

	if minors[chess.White]+minors[chess.Black] <= 1 {
		return true
	}
	return minors[chess.White] == 1 && minors[chess.Black] == 1 &&
		bishops[chess.White] == 1 && bishops[chess.Black] == 1 &&
		bishopOnLight[chess.White] == bishopOnLight[chess.Black]
}

// IsFiftyMoveDraw reports whether the fifty-move rule applies.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

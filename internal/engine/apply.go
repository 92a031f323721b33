package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

// MakeMove returns the board that results from playing move on board.
// The input board is not modified. The move is assumed to come from the
// move generator for this board; arbitrary moves are not validated.
func MakeMove(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()
	applyMove(next, move)
	return next
}

// applyMove plays move on a board the caller exclusively owns.
func applyMove(board *chess.Board, move chess.Move) {
	colour := board.ToMove
	piece := board.At(move.From)
	captured := board.At(move.To)
	pieceType := chess.ExtractPiece(piece)

	board.ClearEnPassant()

	switch {
	case move.IsCastle():
		applyCastle(board, colour, move.Is(chess.FlagCastleKingside))
	case pieceType == chess.Pawn:
		applyPawnMove(board, move, colour)
	default:
		applyPieceMove(board, move, piece, colour)
	}

	// Update castling rights if a rook was captured on its home square
	if chess.IsOccupied(captured) && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.To)
	}

	// Update halfmove clock
	if pieceType == chess.Pawn || chess.IsOccupied(captured) {
		board.HalfmoveClock = 0
	} else if board.HalfmoveClock < maxClock {
		board.HalfmoveClock++
	}

	if colour == chess.Black && board.MoveNumber < maxClock {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move chess.Move, piece chess.Piece, colour chess.Colour) {
	// Move the piece
	board.Put(move.From, chess.Empty)
	board.Put(move.To, piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		// Update king position; a king move forfeits both rights
		board.SetKingSquare(colour, move.To)
		board.Castling &^= chess.KingsideRight(colour) | chess.QueensideRight(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, move.From)
	}
}

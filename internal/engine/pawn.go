package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

// applyPawnMove applies a pawn move, including en passant captures,
// promotions and setting the en passant target after a double push.
func applyPawnMove(board *chess.Board, move chess.Move, colour chess.Colour) {
	pawn := board.At(move.From)

	// Handle en passant capture
	if move.Is(chess.FlagEnPassant) {
		// Remove the captured pawn, which stands behind the target square
		board.Put(move.To.Offset(0, -chess.ColourOffset(colour)), chess.Empty)
	}

	// Move the pawn
	board.Put(move.From, chess.Empty)

	// Handle promotion
	if move.Promotion != chess.Empty {
		board.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		board.Put(move.To, pawn)
	}

	// Set en passant square if double pawn push
	if move.Is(chess.FlagDoublePawnPush) {
		board.SetEnPassant(move.From.Offset(0, chess.ColourOffset(colour)))
	}
}

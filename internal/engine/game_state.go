package engine

import (
	"github.com/lgbarn/alphadepth-go/internal/chess"
	"github.com/lgbarn/alphadepth-go/internal/hashing"
)

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// PositionKey returns the canonical key used for repetition detection:
// the placement, side to move, castling and en passant FEN fields.
func PositionKey(board *chess.Board) string {
	return PlacementFEN(board)
}

// Classify determines the game status of board. history holds the position
// keys (see PositionKey) of earlier positions in the game; it is only read.
//
// Rules are applied in priority order: checkmate, stalemate, fifty-move
// rule, insufficient material, threefold repetition. Positions without a
// legal move are never reported as any other draw.
func Classify(board *chess.Board, history []string) chess.GameStatus {
	return classify(board, HasLegalMoves(board, board.ToMove), history)
}

// classify is Classify for callers that already know whether a legal move exists.
func classify(board *chess.Board, hasMoves bool, history []string) chess.GameStatus {
	if !hasMoves {
		if InCheck(board) {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	if IsFiftyMoveDraw(board) {
		return chess.DrawFiftyMove
	}
	if HasInsufficientMaterial(board) {
		return chess.DrawInsufficientMaterial
	}
	if IsThreefoldRepetition(board, history) {
		return chess.DrawThreefoldRepetition
	}
	return chess.Ongoing
}

// IsThreefoldRepetition reports whether the current position occurs at
// least three times across history and the position itself.
func IsThreefoldRepetition(board *chess.Board, history []string) bool {
	if len(history) < RepetitionLimit-1 {
		return false
	}
	table := hashing.NewRepetitionTableFrom(history)
	return table.Add(PositionKey(board)) >= RepetitionLimit
}

// Evaluation bundles everything the rules say about one position.
type Evaluation struct {
	Board      *chess.Board
	LegalMoves []chess.Move
	InCheck    bool
	Status     chess.GameStatus
}

// Evaluate generates the legal moves of board once and derives the check
// flag and game status from them.
func Evaluate(board *chess.Board, history []string) Evaluation {
	moves := LegalMoves(board)
	return Evaluation{
		Board:      board,
		LegalMoves: moves,
		InCheck:    InCheck(board),
		Status:     classify(board, len(moves) > 0, history),
	}
}

package engine

import (
	"github.com/lgbarn/alphadepth-go/internal/chess"
	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// LegalMoves returns the strictly legal moves of the side to move: the
// pseudo-legal moves that do not leave the mover's own king attacked.
// The order follows PseudoLegalMoves and is deterministic.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if tryMove(board, move, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It stops at the first legal move found.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	position := board
	if board.ToMove != colour {
		position = board.Copy()
		position.ToMove = colour
		position.ClearEnPassant()
	}
	for _, move := range generateMoves(position, colour, make([]chess.Move, 0, 64)) {
		if tryMove(position, move, colour) {
			return true
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	// Make a copy of the board
	testBoard := *board

	// Make the move
	applyMove(&testBoard, move)

	// Check if our king is in check after the move
	return !IsInCheck(&testBoard, colour)
}

// FindLegalMove resolves a coordinate move string such as "e2e4" or "e7e8q"
// against the legal moves of board. A pawn reaching the last rank must name
// its promotion piece.
func FindLegalMove(board *chess.Board, uci string) (chess.Move, error) {
	want, err := chess.ParseUCI(uci)
	if err != nil {
		return chess.Move{}, errors.Wrap(errors.ErrIllegalMove, err.Error())
	}
	for _, move := range LegalMoves(board) {
		if move.From == want.From && move.To == want.To && move.Promotion == want.Promotion {
			return move, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s is not legal in this position", uci)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		nodes += Perft(MakeMove(board, move), depth-1)
	}
	return nodes
}

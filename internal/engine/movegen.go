package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

// PseudoLegalMoves returns the moves of the side to move that obey each
// piece's movement rules, without checking whether the mover's king is left
// in check. Castling is the exception: it is only generated when the king
// neither stands on, passes through nor lands on an attacked square.
//
// Moves are produced square by square from a1 to h8, file by file, so the
// order is deterministic for a given board.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	return generateMoves(board, board.ToMove, make([]chess.Move, 0, 64))
}

// generateMoves appends the pseudo-legal moves of colour to moves.
func generateMoves(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
				continue
			}
			moves = generatePieceMoves(board, chess.Sq(col, rank), chess.ExtractPiece(piece), colour, moves)
		}
	}
	return generateCastles(board, colour, moves)
}

// generatePieceMoves appends the moves of a single piece.
func generatePieceMoves(board *chess.Board, from chess.Square, pieceType chess.Piece, colour chess.Colour, moves []chess.Move) []chess.Move {
	switch pieceType {
	case chess.Pawn:
		return generatePawnMoves(board, from, colour, moves)
	case chess.Knight:
		return generateStepMoves(board, from, colour, knightOffsets, moves)
	case chess.Bishop:
		return generateSlidingMoves(board, from, colour, diagonalDirs, moves)
	case chess.Rook:
		return generateSlidingMoves(board, from, colour, straightDirs, moves)
	case chess.Queen:
		return generateSlidingMoves(board, from, colour, allSlidingDirs, moves)
	case chess.King:
		return generateStepMoves(board, from, colour, kingOffsets, moves)
	}
	return moves
}

// generatePawnMoves appends pushes, captures, en passant captures and
// promotions for the pawn on from.
func generatePawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Forward move
	one := from.Offset(0, dir)
	if board.At(one) == chess.Empty {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one})

		// Double push from starting rank
		if from.Rank == pawnStartRank(colour) {
			two := from.Offset(0, 2*dir)
			if board.At(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Flags: chess.FlagDoublePawnPush})
			}
		}
	}

	// Captures
	enemyPawn := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	for _, dc := range pawnCaptureCols {
		to := from.Offset(dc, dir)
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		if chess.IsOccupied(target) && chess.ExtractColour(target) != colour {
			moves = appendPawnMove(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
			continue
		}
		// En passant: the target is empty and the enemy pawn stands behind it.
		if board.EnPassant && to == board.EPSquare && target == chess.Empty &&
			board.At(to.Offset(0, -dir)) == enemyPawn {
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagEnPassant})
		}
	}
	return moves
}

// appendPawnMove appends m, branching into the four promotions when the pawn
// reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Rank != chess.FirstRank && m.To.Rank != chess.LastRank {
		return append(moves, m)
	}
	for _, promo := range chess.PromotionPieces {
		m.Promotion = promo
		moves = append(moves, m)
	}
	return moves
}

// pawnStartRank returns the rank pawns of the given colour start on.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// generateStepMoves appends single-step moves (knight and king).
func generateStepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		target := board.At(to)
		switch {
		case target == chess.Empty:
			moves = append(moves, chess.Move{From: from, To: to})
		case target != chess.Off && chess.ExtractColour(target) != colour:
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
		}
	}
	return moves
}

// generateSlidingMoves appends moves for a sliding piece (bishop, rook, queen).
// A ray stops at the first occupied square, which is included only when it
// holds an enemy piece.
func generateSlidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to, Flags: chess.FlagCapture})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

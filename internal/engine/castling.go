package engine

import "github.com/lgbarn/alphadepth-go/internal/chess"

// generateCastles appends the castling moves available to colour. Unlike
// other moves these are fully checked here: the king must not be in check,
// pass through an attacked square, or land on one.
func generateCastles(board *chess.Board, colour chess.Colour, moves []chess.Move) []chess.Move {
	rank := chess.HomeRank(colour)
	kingFrom := chess.Sq('e', rank)
	if board.At(kingFrom) != chess.MakeColouredPiece(colour, chess.King) {
		return moves
	}
	kingside := board.Castling.Has(chess.KingsideRight(colour))
	queenside := board.Castling.Has(chess.QueensideRight(colour))
	if !kingside && !queenside {
		return moves
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, kingFrom, enemy) {
		return moves
	}

	rook := chess.MakeColouredPiece(colour, chess.Rook)

	if kingside && board.Get('h', rank) == rook &&
		board.Get('f', rank) == chess.Empty && board.Get('g', rank) == chess.Empty &&
		!IsSquareAttacked(board, chess.Sq('f', rank), enemy) &&
		!IsSquareAttacked(board, chess.Sq('g', rank), enemy) {
		moves = append(moves, chess.Move{From: kingFrom, To: chess.Sq('g', rank), Flags: chess.FlagCastleKingside})
	}

	// b-file must be empty for the rook to pass, but the king never crosses it.
	if queenside && board.Get('a', rank) == rook &&
		board.Get('b', rank) == chess.Empty && board.Get('c', rank) == chess.Empty &&
		board.Get('d', rank) == chess.Empty &&
		!IsSquareAttacked(board, chess.Sq('d', rank), enemy) &&
		!IsSquareAttacked(board, chess.Sq('c', rank), enemy) {
		moves = append(moves, chess.Move{From: kingFrom, To: chess.Sq('c', rank), Flags: chess.FlagCastleQueenside})
	}

	return moves
}

// applyCastle moves king and rook for a castling move and clears both of
// the mover's castling rights.
func applyCastle(board *chess.Board, colour chess.Colour, kingside bool) {
	rank := chess.HomeRank(colour)
	kingFromCol := chess.Col('e')
	var kingToCol, rookFromCol, rookToCol chess.Col

	if kingside {
		kingToCol = 'g'
		rookFromCol = 'h'
		rookToCol = 'f'
	} else {
		kingToCol = 'c'
		rookFromCol = 'a'
		rookToCol = 'd'
	}

	// Move king
	king := board.Get(kingFromCol, rank)
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	// Move rook
	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	board.SetKingSquare(colour, chess.Sq(kingToCol, rank))
	board.Castling &^= chess.KingsideRight(colour) | chess.QueensideRight(colour)
}

// updateCastlingRightsForRook removes castling rights when a rook moves from
// or is captured on its home square.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.HomeRank(colour) {
		return
	}
	switch sq.Col {
	case 'h':
		board.Castling &^= chess.KingsideRight(colour)
	case 'a':
		board.Castling &^= chess.QueensideRight(colour)
	}
}

package hashing

import (
	"github.com/lgbarn/alphadepth-go/internal/chess"
)

// Zobrist keys: one per (coloured piece, square), one for Black to move, one
// per castling flag and one per en passant file.
var (
	pieceKeys    [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range pieceKeys {
		for piece := chess.Pawn; piece <= chess.King; piece++ {
			for sq := range pieceKeys[colour][piece] {
				pieceKeys[colour][piece][sq] = next()
			}
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
}

// GenerateZobristHash computes the Zobrist hash of the canonical position:
// piece placement, side to move, castling rights and en passant target.
// Clocks do not contribute, so positions that repeat hash equal.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64

	for col := 0; col < chess.BoardSize; col++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.GetByIndex(col, rank)
			if !chess.IsOccupied(piece) {
				continue
			}
			colour := chess.ExtractColour(piece)
			hash ^= pieceKeys[colour][chess.ExtractPiece(piece)][rank*chess.BoardSize+col]
		}
	}

	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}

	for i, right := range []chess.CastlingRights{
		chess.WhiteKingside, chess.WhiteQueenside, chess.BlackKingside, chess.BlackQueenside,
	} {
		if board.Castling.Has(right) {
			hash ^= castlingKeys[i]
		}
	}

	if board.EnPassant {
		hash ^= epFileKeys[board.EPSquare.File()]
	}

	return hash
}

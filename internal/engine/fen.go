// Package engine implements the chess rules: the FEN codec, move generation,
// check detection and game-state classification.
package engine

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/alphadepth-go/internal/chess"
	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of whitespace-separated fields in a FEN string.
const fenFieldCount = 6

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Every failure is a
// *errors.FENError; no partially decoded board is ever returned.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, errors.NewFENError(errors.FieldCount, 0, "want %d fields, got %d", fenFieldCount, len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if err := validateKings(board); err != nil {
		return nil, err
	}
	if err := validateOpponentNotInCheck(board); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewFENError(errors.RankLength, 1, "want %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for i, rankText := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)
		lastWasDigit := false

		for _, c := range rankText {
			switch {
			case c >= '1' && c <= '8':
				if lastWasDigit {
					return errors.NewFENError(errors.RankLength, 1, "rank %c has consecutive digits", rank)
				}
				col += chess.Col(c - '0')
				lastWasDigit = true
			default:
				if c > unicode.MaxASCII {
					return errors.NewFENError(errors.PieceChar, 1, "invalid piece character %q", c)
				}
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return errors.NewFENError(errors.PieceChar, 1, "invalid piece character %q", c)
				}
				if col > chess.LastCol {
					return errors.NewFENError(errors.RankLength, 1, "rank %c has more than 8 files", rank)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
					return errors.NewFENError(errors.PawnRank, 1, "pawn on %c%c", col, rank)
				}

				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				if piece == chess.King {
					board.SetKingSquare(colour, chess.Sq(col, rank))
				}
				col++
				lastWasDigit = false
			}
		}

		if files := int(col - chess.FirstCol); files != chess.BoardSize {
			return errors.NewFENError(errors.RankLength, 1, "rank %c has %d files, want 8", rank, files)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.NewFENError(errors.ActiveColour, 2, "invalid side to move %q", side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for _, c := range field {
		var right chess.CastlingRights
		switch c {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return errors.NewFENError(errors.CastlingChar, 3, "invalid castling character %q", c)
		}
		if board.Castling.Has(right) {
			return errors.NewFENError(errors.CastlingChar, 3, "castling character %q repeated", c)
		}
		board.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return errors.NewFENError(errors.EnPassantSquare, 4, "%v", err)
	}

	// The target lies behind a pawn that just advanced two squares, so it
	// is on rank 3 with Black to move or on rank 6 with White to move.
	want := chess.Rank('6')
	if board.ToMove == chess.Black {
		want = '3'
	}
	if sq.Rank != want {
		return errors.NewFENError(errors.EnPassantSquare, 4, "%s is not on rank %c", sq, want)
	}

	board.SetEnPassant(sq)
	return nil
}

// maxClock is the largest halfmove clock or fullmove number a FEN may carry.
// MakeMove saturates at it so every board it returns encodes to a decodable FEN.
const maxClock = math.MaxUint32

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return errors.NewFENError(errors.Clock, 5, "halfmove clock %q is not a non-negative number", halfmove)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || fm == 0 {
		return errors.NewFENError(errors.Clock, 6, "fullmove number %q is not a positive number", fullmove)
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// validateKings checks that each side has exactly one king.
func validateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		n := board.CountPieces(chess.MakeColouredPiece(colour, chess.King))
		if n != 1 {
			return errors.NewFENError(errors.KingCount, 1, "%s has %d kings, want 1", strings.ToLower(colour.String()), n)
		}
	}
	return nil
}

// validateOpponentNotInCheck rejects positions where the side that just
// moved has left its king attacked.
func validateOpponentNotInCheck(board *chess.Board) error {
	opponent := board.ToMove.Opposite()
	if IsInCheck(board, opponent) {
		return errors.NewFENError(errors.OpponentInCheck, 2, "%s is in check with %s to move",
			strings.ToLower(opponent.String()), strings.ToLower(board.ToMove.String()))
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.MoveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// PlacementFEN returns the first four FEN fields: placement, side to move,
// castling rights and en passant target.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

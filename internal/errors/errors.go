// Package errors provides sentinel errors and error types for alphadepth.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed or rule-violating FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENErrorKind names the structural problem found in a FEN string.
type FENErrorKind int

const (
	FieldCount FENErrorKind = iota
	PieceChar
	RankLength
	ActiveColour
	CastlingChar
	EnPassantSquare
	Clock
	KingCount
	PawnRank
	OpponentInCheck
)

var fenErrorKindNames = [...]string{
	FieldCount:      "field count",
	PieceChar:       "piece character",
	RankLength:      "rank length",
	ActiveColour:    "active colour",
	CastlingChar:    "castling rights",
	EnPassantSquare: "en passant square",
	Clock:           "move clock",
	KingCount:       "king count",
	PawnRank:        "pawn rank",
	OpponentInCheck: "opponent in check",
}

// String returns a short human-readable name for the kind.
func (k FENErrorKind) String() string {
	if k >= 0 && int(k) < len(fenErrorKindNames) {
		return fenErrorKindNames[k]
	}
	return "unknown"
}

// FENError describes why a FEN string was rejected. It unwraps to
// ErrInvalidFEN so callers can match any FEN failure with errors.Is().
type FENError struct {
	Kind   FENErrorKind // What was wrong
	Field  int          // 1-based FEN field number (0 if not applicable)
	Detail string       // Human-readable detail
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	parts := []string{ErrInvalidFEN.Error()}

	if e.Field > 0 {
		parts = append(parts, fmt.Sprintf("field %d", e.Field))
	}
	parts = append(parts, e.Kind.String())

	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrInvalidFEN, enabling errors.Is() to work through
// the FENError wrapper.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// NewFENError builds a FENError with a formatted detail message.
func NewFENError(kind FENErrorKind, field int, format string, args ...interface{}) *FENError {
	return &FENError{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

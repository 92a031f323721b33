package position

import (
	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// ErrorKind classifies failures reported by the Service.
type ErrorKind int

const (
	// InvalidFEN means the FEN text could not be decoded.
	InvalidFEN ErrorKind = iota
	// IllegalMove means the requested move is not legal in the position.
	IllegalMove
	// InvalidHistory means the supplied history exceeds the configured limit.
	InvalidHistory
)

var errorKindNames = [...]string{
	InvalidFEN:     "invalid-fen",
	IllegalMove:    "illegal-move",
	InvalidHistory: "invalid-history",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "unknown"
}

// Error is the error type returned by Service methods. The wrapped error
// carries the detail; for InvalidFEN it is an *errors.FENError.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the human-readable message of the underlying error.
func (e *Error) Detail() string {
	return e.Err.Error()
}

// KindOf reports the ErrorKind of err if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

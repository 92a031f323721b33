// Package position is the entry point transports use to query the rules
// engine: it decodes FEN text, generates legal moves, classifies the game
// state and reports the result as a Snapshot.
package position

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/alphadepth-go/internal/chess"
	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/engine"
	"github.com/lgbarn/alphadepth-go/internal/errors"
	"github.com/lgbarn/alphadepth-go/internal/hashing"
)

// Snapshot describes a single position.
type Snapshot struct {
	FEN            string   `json:"fen"`
	Turn           string   `json:"turn"`
	InCheck        bool     `json:"inCheck"`
	GameStatus     string   `json:"gameStatus"`
	GameOver       bool     `json:"gameOver"`
	LegalMoveCount int      `json:"legalMoveCount"`
	LegalMoves     []string `json:"legalMovesList,omitempty"`

	// Key is the canonical position key to pass back as history.
	Key string `json:"key"`
	// Hash is the Zobrist hash of the position as 16 hex digits.
	Hash string `json:"hash"`

	// Set by Play only: the move played and the history for the next call.
	Move    string   `json:"move,omitempty"`
	History []string `json:"history,omitempty"`
}

// MarshalJSON writes legalMovesList whenever the moves were listed, as []
// when there are none, and leaves it out when they were not requested.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type snapshot Snapshot
	out := struct {
		snapshot
		LegalMoves *[]string `json:"legalMovesList,omitempty"`
	}{snapshot: snapshot(s)}
	if s.LegalMoves != nil {
		out.LegalMoves = &s.LegalMoves
	}
	return json.Marshal(out)
}

// Service answers position queries. It holds only configuration, so a
// single Service may be shared by any number of goroutines.
type Service struct {
	includeMoves bool
	maxHistory   int
	log          zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMoves sets whether snapshots list the legal moves by default.
func WithMoves(include bool) Option {
	return func(s *Service) { s.includeMoves = include }
}

// WithMaxHistory limits the number of history keys accepted (0 = no limit).
func WithMaxHistory(n int) Option {
	return func(s *Service) { s.maxHistory = n }
}

// WithLogger sets the logger used for per-call debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithConfig applies the inspect settings of cfg.
func WithConfig(cfg *config.InspectConfig) Option {
	return func(s *Service) {
		s.includeMoves = cfg.IncludeMoves
		s.maxHistory = cfg.MaxHistory
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CallOption adjusts a single Inspect or Play call.
type CallOption func(*callOptions)

type callOptions struct {
	includeMoves bool
}

// IncludeMoves overrides the Service default for listing legal moves.
func IncludeMoves(include bool) CallOption {
	return func(o *callOptions) { o.includeMoves = include }
}

func (s *Service) callOptions(opts []CallOption) callOptions {
	o := callOptions{includeMoves: s.includeMoves}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Inspect decodes fen and reports its turn, check status, game status and
// legal moves. history holds the keys of earlier positions of the game,
// oldest first, and is only read.
func (s *Service) Inspect(fen string, history []string, opts ...CallOption) (*Snapshot, error) {
	o := s.callOptions(opts)

	board, err := s.decode(fen, history)
	if err != nil {
		return nil, err
	}

	snap := s.snapshot(board, history, o.includeMoves)
	s.log.Debug().
		Str("fen", snap.FEN).
		Str("status", snap.GameStatus).
		Int("moves", snap.LegalMoveCount).
		Msg("inspected position")
	return snap, nil
}

// Play applies the coordinate move uci (e.g. "e2e4", "e7e8q") to fen and
// returns the snapshot of the resulting position. The snapshot's History is
// history extended with the key of the position the move was played from.
func (s *Service) Play(fen, uci string, history []string, opts ...CallOption) (*Snapshot, error) {
	o := s.callOptions(opts)

	board, err := s.decode(fen, history)
	if err != nil {
		return nil, err
	}

	move, err := engine.FindLegalMove(board, uci)
	if err != nil {
		return nil, &Error{Kind: IllegalMove, Err: err}
	}

	next := engine.MakeMove(board, move)
	nextHistory := make([]string, len(history), len(history)+1)
	copy(nextHistory, history)
	nextHistory = append(nextHistory, engine.PositionKey(board))

	snap := s.snapshot(next, nextHistory, o.includeMoves)
	snap.Move = move.UCI()
	snap.History = nextHistory
	s.log.Debug().
		Str("from", fen).
		Str("move", snap.Move).
		Str("status", snap.GameStatus).
		Msg("played move")
	return snap, nil
}

func (s *Service) decode(fen string, history []string) (*chess.Board, error) {
	if s.maxHistory > 0 && len(history) > s.maxHistory {
		return nil, &Error{
			Kind: InvalidHistory,
			Err:  fmt.Errorf("%d history entries exceed the limit of %d", len(history), s.maxHistory),
		}
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, &Error{Kind: InvalidFEN, Err: err}
	}
	return board, nil
}

func (s *Service) snapshot(board *chess.Board, history []string, includeMoves bool) *Snapshot {
	eval := engine.Evaluate(board, history)

	snap := &Snapshot{
		FEN:            engine.BoardToFEN(board),
		Turn:           string(board.ToMove.Letter()),
		InCheck:        eval.InCheck,
		GameStatus:     eval.Status.String(),
		GameOver:       eval.Status.IsGameOver(),
		LegalMoveCount: len(eval.LegalMoves),
		Key:            engine.PositionKey(board),
		Hash:           fmt.Sprintf("%016x", hashing.GenerateZobristHash(board)),
	}
	if includeMoves {
		snap.LegalMoves = make([]string, len(eval.LegalMoves))
		for i, m := range eval.LegalMoves {
			snap.LegalMoves[i] = m.UCI()
		}
	}
	return snap
}

// IsInvalidFEN reports whether err was caused by undecodable FEN text.
func IsInvalidFEN(err error) bool {
	return errors.Is(err, errors.ErrInvalidFEN)
}

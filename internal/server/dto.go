package server

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// GameInfoResponse is returned by GET /api/game-info. LegalMoves is a count.
type GameInfoResponse struct {
	FEN        string `json:"fen"`
	Turn       string `json:"turn"`
	GameOver   bool   `json:"gameOver"`
	InCheck    bool   `json:"inCheck"`
	LegalMoves int    `json:"legalMoves"`
}

// InspectRequest is the body of POST /api/inspect.
type InspectRequest struct {
	FEN          string   `json:"fen"`
	History      []string `json:"history,omitempty"`
	IncludeMoves *bool    `json:"includeMoves,omitempty"` // nil = server default
}

// MoveRequest is the body of POST /api/move.
type MoveRequest struct {
	FEN     string   `json:"fen"`
	Move    string   `json:"move"` // UCI coordinates, e.g. "e2e4" or "e7e8q"
	History []string `json:"history,omitempty"`
}

// ErrorResponse is the body of every 4xx reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

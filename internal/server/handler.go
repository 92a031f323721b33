// Package server exposes the position service over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/errors"
	"github.com/lgbarn/alphadepth-go/internal/position"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "AlphaDepth Chess Engine"

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	svc          *position.Service
	version      string
	maxBodyBytes int64
	log          zerolog.Logger
	now          func() time.Time
}

// NewHandler creates a Handler answering with svc.
func NewHandler(svc *position.Service, cfg *config.ServerConfig, version string, log zerolog.Logger) *Handler {
	return &Handler{
		svc:          svc,
		version:      version,
		maxBodyBytes: cfg.MaxBodyBytes,
		log:          log,
		now:          time.Now,
	}
}

// NewRouter wraps a Handler with the request ID and access log middleware.
func NewRouter(svc *position.Service, cfg *config.ServerConfig, version string, log zerolog.Logger) http.Handler {
	return RequestID(AccessLog(log, NewHandler(svc, cfg, version, log)))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/health":
		if !allow(w, r, http.MethodGet) {
			return
		}
		h.handleHealth(w, r)

	case "/api/game-info":
		if !allow(w, r, http.MethodGet) {
			return
		}
		h.handleGameInfo(w, r)

	case "/api/inspect":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleInspect(w, r)

	case "/api/move":
		if !allow(w, r, http.MethodPost) {
			return
		}
		h.handleMove(w, r)

	default:
		http.NotFound(w, r)
	}
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   h.version,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleGameInfo(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		writeError(w, http.StatusBadRequest, "FEN parameter required", "")
		return
	}

	snap, err := h.svc.Inspect(fen, nil, position.IncludeMoves(false))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GameInfoResponse{
		FEN:        fen,
		Turn:       snap.Turn,
		GameOver:   snap.GameOver,
		InCheck:    snap.InCheck,
		LegalMoves: snap.LegalMoveCount,
	})
}

func (h *Handler) handleInspect(w http.ResponseWriter, r *http.Request) {
	var req InspectRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.FEN == "" {
		writeError(w, http.StatusBadRequest, "FEN parameter required", "")
		return
	}

	var opts []position.CallOption
	if req.IncludeMoves != nil {
		opts = append(opts, position.IncludeMoves(*req.IncludeMoves))
	}
	snap, err := h.svc.Inspect(req.FEN, req.History, opts...)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.FEN == "" {
		writeError(w, http.StatusBadRequest, "FEN parameter required", "")
		return
	}
	if req.Move == "" {
		writeError(w, http.StatusBadRequest, "Move parameter required", "")
		return
	}

	snap, err := h.svc.Play(req.FEN, req.Move, req.History)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// decode reads a JSON body into v, answering 400 or 413 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *position.Error
	if !errors.As(err, &perr) {
		h.log.Error().Err(err).Str("request_id", RequestIDFrom(r.Context())).Msg("inspect failed")
		writeError(w, http.StatusInternalServerError, "Internal error", "")
		return
	}

	var msg string
	switch perr.Kind {
	case position.InvalidFEN:
		msg = "Invalid FEN"
	case position.IllegalMove:
		msg = "Illegal move"
	case position.InvalidHistory:
		msg = "Invalid history"
	}
	writeError(w, http.StatusBadRequest, msg, perr.Detail())
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

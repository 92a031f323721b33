package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/logging"
	"github.com/lgbarn/alphadepth-go/internal/position"
	"github.com/lgbarn/alphadepth-go/internal/testutil"
)

func newTestHandler() *Handler {
	h := NewHandler(position.New(), config.NewServerConfig(), "1.0.0", logging.Nop())
	h.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		rd = bytes.NewReader(data)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, rd))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func gameInfoURL(fen string) string {
	return "/api/game-info?fen=" + url.QueryEscape(fen)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet, "/api/health", nil)
	testutil.AssertEqual(t, rec.Code, http.StatusOK)
	testutil.AssertEqual(t, rec.Header().Get("Content-Type"), "application/json")

	var got HealthResponse
	decodeBody(t, rec, &got)
	testutil.AssertEqual(t, got, HealthResponse{
		Status:    "healthy",
		Service:   "AlphaDepth Chess Engine",
		Version:   "1.0.0",
		Timestamp: "2024-03-01T12:00:00Z",
	})
}

func TestGameInfo(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want GameInfoResponse
	}{
		{
			name: "initial position",
			fen:  testutil.InitialFEN,
			want: GameInfoResponse{FEN: testutil.InitialFEN, Turn: "w", LegalMoves: 20},
		},
		{
			name: "checkmate",
			fen:  testutil.FoolsMateFEN,
			want: GameInfoResponse{FEN: testutil.FoolsMateFEN, Turn: "w", GameOver: true, InCheck: true},
		},
		{
			name: "stalemate",
			fen:  testutil.StalemateFEN,
			want: GameInfoResponse{FEN: testutil.StalemateFEN, Turn: "b", GameOver: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestHandler(), http.MethodGet, gameInfoURL(tt.fen), nil)
			testutil.AssertEqual(t, rec.Code, http.StatusOK)

			var got GameInfoResponse
			decodeBody(t, rec, &got)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestGameInfo_EchoesRequestFEN(t *testing.T) {
	for _, fen := range []string{
		"r3k2r/8/8/8/8/8/8/R3K2R w kqKQ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR  w KQkq - 0 1",
	} {
		rec := do(t, newTestHandler(), http.MethodGet, gameInfoURL(fen), nil)
		testutil.AssertEqual(t, rec.Code, http.StatusOK, "fen %q", fen)

		var got GameInfoResponse
		decodeBody(t, rec, &got)
		testutil.AssertEqual(t, got.FEN, fen)
		testutil.AssertEqual(t, got.Turn, "w")
	}
}

func TestGameInfo_Errors(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"missing fen", "/api/game-info", "FEN parameter required"},
		{"empty fen", "/api/game-info?fen=", "FEN parameter required"},
		{"invalid fen", gameInfoURL("not a fen"), "Invalid FEN"},
		{"no kings", gameInfoURL("8/8/8/8/8/8/8/8 w - - 0 1"), "Invalid FEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestHandler(), http.MethodGet, tt.target, nil)
			testutil.AssertEqual(t, rec.Code, http.StatusBadRequest)

			var got ErrorResponse
			decodeBody(t, rec, &got)
			testutil.AssertEqual(t, got.Error, tt.wantError)
		})
	}
}

func TestInspect(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodPost, "/api/inspect", InspectRequest{FEN: testutil.KiwipeteFEN})
	testutil.AssertEqual(t, rec.Code, http.StatusOK)

	var got position.Snapshot
	decodeBody(t, rec, &got)
	testutil.AssertEqual(t, got.LegalMoveCount, 48)
	testutil.AssertNil(t, got.LegalMoves, "moves omitted by default")
	testutil.AssertEqual(t, len(got.Hash), 16)
}

func TestInspect_IncludeMovesAndHistory(t *testing.T) {
	include := true
	key := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	rec := do(t, newTestHandler(), http.MethodPost, "/api/inspect", InspectRequest{
		FEN:          testutil.InitialFEN,
		History:      []string{key, key},
		IncludeMoves: &include,
	})
	testutil.AssertEqual(t, rec.Code, http.StatusOK)

	var got position.Snapshot
	decodeBody(t, rec, &got)
	testutil.AssertEqual(t, len(got.LegalMoves), 20)
	testutil.AssertEqual(t, got.GameStatus, "draw-threefold-repetition")
	testutil.AssertTrue(t, got.GameOver, "repetition ends the game")
}

func TestMove(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodPost, "/api/move", MoveRequest{
		FEN:  "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2",
		Move: "d8h4",
	})
	testutil.AssertEqual(t, rec.Code, http.StatusOK)

	var got position.Snapshot
	decodeBody(t, rec, &got)
	testutil.AssertEqual(t, got.FEN, testutil.FoolsMateFEN)
	testutil.AssertEqual(t, got.Move, "d8h4")
	testutil.AssertEqual(t, got.GameStatus, "checkmate")
	testutil.AssertEqual(t, len(got.History), 1)
}

func TestPostErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"bad json", "/api/inspect", "{", http.StatusBadRequest, "Invalid JSON"},
		{"unknown field", "/api/inspect", `{"fen":"x","depth":3}`, http.StatusBadRequest, "Invalid JSON"},
		{"missing fen", "/api/inspect", InspectRequest{}, http.StatusBadRequest, "FEN parameter required"},
		{"invalid fen", "/api/inspect", InspectRequest{FEN: "8/8/8/8 w - - 0 1"}, http.StatusBadRequest, "Invalid FEN"},
		{"missing move", "/api/move", MoveRequest{FEN: testutil.InitialFEN}, http.StatusBadRequest, "Move parameter required"},
		{"illegal move", "/api/move", MoveRequest{FEN: testutil.InitialFEN, Move: "e2e5"}, http.StatusBadRequest, "Illegal move"},
		{"move after mate", "/api/move", MoveRequest{FEN: testutil.FoolsMateFEN, Move: "e2e4"}, http.StatusBadRequest, "Illegal move"},
		{
			"body too large", "/api/inspect",
			`{"fen":"` + strings.Repeat("x", 2<<20) + `"}`,
			http.StatusRequestEntityTooLarge, "Request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestHandler(), http.MethodPost, tt.target, tt.body)
			testutil.AssertEqual(t, rec.Code, tt.wantStatus)

			var got ErrorResponse
			decodeBody(t, rec, &got)
			testutil.AssertEqual(t, got.Error, tt.wantError)
		})
	}
}

func TestInvalidFEN_Detail(t *testing.T) {
	rec := do(t, newTestHandler(), http.MethodGet,
		gameInfoURL("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"), nil)

	var got ErrorResponse
	decodeBody(t, rec, &got)
	testutil.AssertContains(t, got.Detail, "active colour")
}

func TestRouting(t *testing.T) {
	tests := []struct {
		method     string
		target     string
		wantStatus int
		wantAllow  string
	}{
		{http.MethodPost, "/api/health", http.StatusMethodNotAllowed, "GET"},
		{http.MethodPost, "/api/game-info", http.StatusMethodNotAllowed, "GET"},
		{http.MethodGet, "/api/inspect", http.StatusMethodNotAllowed, "POST"},
		{http.MethodGet, "/api/move", http.StatusMethodNotAllowed, "POST"},
		{http.MethodPost, "/api/analyze", http.StatusNotFound, ""},
		{http.MethodGet, "/", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, newTestHandler(), tt.method, tt.target, nil)
			testutil.AssertEqual(t, rec.Code, tt.wantStatus)
			testutil.AssertEqual(t, rec.Header().Get("Allow"), tt.wantAllow)
		})
	}
}

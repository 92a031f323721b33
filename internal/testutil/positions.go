package testutil

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// Well-known positions shared by tests across packages.
const (
	InitialFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// PositionCase is one entry of a YAML position fixture file.
type PositionCase struct {
	Name    string   `yaml:"name"`
	FEN     string   `yaml:"fen"`
	History []string `yaml:"history"`

	// Move, if set, is played before the expectations are checked
	Move string `yaml:"move"`

	// Expectations; Error is the error kind name when the input is rejected
	Status     string   `yaml:"status"`
	Turn       string   `yaml:"turn"`
	InCheck    bool     `yaml:"in_check"`
	LegalMoves *int     `yaml:"legal_moves"`
	Includes   []string `yaml:"includes"`
	Excludes   []string `yaml:"excludes"`
	ResultFEN  string   `yaml:"result_fen"`
	Error      string   `yaml:"error"`
}

// LoadPositionCases reads a YAML list of PositionCase from path.
// It calls t.Fatal if the file cannot be read or decoded.
func LoadPositionCases(t *testing.T, path string) []PositionCase {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var cases []PositionCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	if len(cases) == 0 {
		t.Fatalf("%s holds no cases", path)
	}
	return cases
}

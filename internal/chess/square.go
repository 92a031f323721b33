package chess

import "fmt"

// Square is a board coordinate using character coords ('a'-'h', '1'-'8').
// The zero Square is not on the board.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from its coordinates.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// SquareAt builds a square from 0-7 file and rank indices.
func SquareAt(file, rank int) Square {
	return Square{Col: ToCol(file), Rank: ToRank(rank)}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return ColConvert(s.Col) >= 0 && RankConvert(s.Rank) >= 0
}

// File returns the 0-7 file index.
func (s Square) File() int {
	return ColConvert(s.Col)
}

// RankIndex returns the 0-7 rank index.
func (s Square) RankIndex() int {
	return RankConvert(s.Rank)
}

// Offset returns the square dc files and dr ranks away. The result may be
// off the board; check Valid before use.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.RankIndex())%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", text)
	}
	sq := Square{Col: Col(text[0]), Rank: Rank(text[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: off the board", text)
	}
	return sq, nil
}

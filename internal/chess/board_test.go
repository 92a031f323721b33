package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling != NoCastling {
			t.Errorf("Castling = %v; want none", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for col := Col('a'); col <= 'h'; col++ {
			for rank := Rank('1'); rank <= '8'; rank++ {
				if got := b.Get(col, rank); got != Empty {
					t.Errorf("Get(%c, %c) = %v; want Empty", col, rank, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		// White back rank
		{"white rook a1", 'a', '1', W(Rook)},
		{"white knight b1", 'b', '1', W(Knight)},
		{"white bishop c1", 'c', '1', W(Bishop)},
		{"white queen d1", 'd', '1', W(Queen)},
		{"white king e1", 'e', '1', W(King)},
		{"white bishop f1", 'f', '1', W(Bishop)},
		{"white knight g1", 'g', '1', W(Knight)},
		{"white rook h1", 'h', '1', W(Rook)},
		// White pawns
		{"white pawn a2", 'a', '2', W(Pawn)},
		{"white pawn e2", 'e', '2', W(Pawn)},
		{"white pawn h2", 'h', '2', W(Pawn)},
		// Black pawns
		{"black pawn a7", 'a', '7', B(Pawn)},
		{"black pawn e7", 'e', '7', B(Pawn)},
		{"black pawn h7", 'h', '7', B(Pawn)},
		// Black back rank
		{"black rook a8", 'a', '8', B(Rook)},
		{"black knight b8", 'b', '8', B(Knight)},
		{"black bishop c8", 'c', '8', B(Bishop)},
		{"black queen d8", 'd', '8', B(Queen)},
		{"black king e8", 'e', '8', B(King)},
		{"black bishop f8", 'f', '8', B(Bishop)},
		{"black knight g8", 'g', '8', B(Knight)},
		{"black rook h8", 'h', '8', B(Rook)},
		// Empty squares
		{"empty e3", 'e', '3', Empty},
		{"empty d4", 'd', '4', Empty},
		{"empty f5", 'f', '5', Empty},
		{"empty c6", 'c', '6', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(tt.col, tt.rank)
			if got != tt.piece {
				t.Errorf("Get(%c, %c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}

	t.Run("king positions", func(t *testing.T) {
		if b.WKing != Sq('e', '1') {
			t.Errorf("White king position = %v; want e1", b.WKing)
		}
		if b.BKing != Sq('e', '8') {
			t.Errorf("Black king position = %v; want e8", b.BKing)
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		if b.Castling != AllCastling {
			t.Errorf("Castling = %v; want KQkq", b.Castling)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		{"white pawn on e4", 'e', '4', W(Pawn)},
		{"black knight on f6", 'f', '6', B(Knight)},
		{"white queen on d1", 'd', '1', W(Queen)},
		{"black king on e8", 'e', '8', B(King)},
		{"empty square", 'a', '1', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.Set(tt.col, tt.rank, tt.piece)
			got := b.Get(tt.col, tt.rank)
			if got != tt.piece {
				t.Errorf("after Set(%c, %c, %v), Get() = %v; want %v",
					tt.col, tt.rank, tt.piece, got, tt.piece)
			}
			if got := b.At(Sq(tt.col, tt.rank)); got != tt.piece {
				t.Errorf("At(%c%c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}

	t.Run("invalid coordinates return Off", func(t *testing.T) {
		b := NewBoard()
		// Test invalid coordinates
		if got := b.Get('i', '1'); got != Off {
			t.Errorf("Get('i', '1') = %v; want Off", got)
		}
		if got := b.Get('a', '9'); got != Off {
			t.Errorf("Get('a', '9') = %v; want Off", got)
		}
		if got := b.At(Sq('a', '1').Offset(-1, 0)); got != Off {
			t.Errorf("At(off board) = %v; want Off", got)
		}
	})

	t.Run("Set with invalid coordinates is no-op", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		// Set on invalid coordinate should not crash
		b.Set('z', '9', W(Queen))
		// Board should remain unchanged
		if got := b.Get('e', '1'); got != W(King) {
			t.Errorf("Get('e', '1') = %v after invalid Set; want white king", got)
		}
	})
}

func TestBoardGetByIndexSetByIndex(t *testing.T) {
	b := NewBoard()

	b.SetByIndex(4, 3, W(Knight)) // e4

	if got := b.GetByIndex(4, 3); got != W(Knight) {
		t.Errorf("GetByIndex(4, 3) = %v; want white knight", got)
	}

	// Verify consistency with Get/Set using char coords
	if got := b.Get('e', '4'); got != W(Knight) {
		t.Errorf("Get('e', '4') = %v; want white knight (consistency check)", got)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.ToMove = Black
	original.MoveNumber = 5
	original.SetEnPassant(Sq('e', '3'))

	copied := original.Copy()

	t.Run("copies all state", func(t *testing.T) {
		if *copied != *original {
			t.Errorf("copy differs from original")
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		// Modify the copy
		copied.Set('e', '4', W(Pawn))
		copied.ToMove = White
		copied.MoveNumber = 10
		copied.ClearEnPassant()

		// Original should be unchanged
		if got := original.Get('e', '4'); got != Empty {
			t.Errorf("original Get('e', '4') = %v after copy modification; want Empty", got)
		}
		if original.ToMove != Black {
			t.Errorf("original ToMove = %v after copy modification; want Black", original.ToMove)
		}
		if original.MoveNumber != 5 {
			t.Errorf("original MoveNumber = %d after copy modification; want 5", original.MoveNumber)
		}
		if !original.EnPassant || original.EPSquare != Sq('e', '3') {
			t.Errorf("original en passant = (%v, %v); want (true, e3)", original.EnPassant, original.EPSquare)
		}
	})
}

func TestBoardCountPieces(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		piece Piece
		want  int
	}{
		{W(Pawn), 8},
		{B(Pawn), 8},
		{W(King), 1},
		{B(Knight), 2},
		{W(Queen), 1},
	}

	for _, tt := range tests {
		if got := b.CountPieces(tt.piece); got != tt.want {
			t.Errorf("CountPieces(%v) = %d; want %d", tt.piece, got, tt.want)
		}
	}
}

func TestSquare(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		for _, name := range []string{"a1", "e4", "h8", "c6"} {
			sq, err := ParseSquare(name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", name, err)
			}
			if got := sq.String(); got != name {
				t.Errorf("ParseSquare(%q).String() = %q", name, got)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, name := range []string{"", "e", "e44", "i1", "a0", "a9", "E4"} {
			if _, err := ParseSquare(name); err == nil {
				t.Errorf("ParseSquare(%q) succeeded; want error", name)
			}
		}
		if got := (Square{}).String(); got != "-" {
			t.Errorf("zero Square String() = %q; want -", got)
		}
	})

	t.Run("offset", func(t *testing.T) {
		if got := Sq('e', '2').Offset(0, 2); got != Sq('e', '4') {
			t.Errorf("e2 + (0,2) = %v; want e4", got)
		}
		if Sq('h', '1').Offset(1, 0).Valid() {
			t.Error("h1 + (1,0) is valid; want off board")
		}
		if got := SquareAt(2, 5); got != Sq('c', '6') {
			t.Errorf("SquareAt(2, 5) = %v; want c6", got)
		}
	})

	t.Run("colour", func(t *testing.T) {
		if Sq('a', '1').IsLight() {
			t.Error("a1 is light; want dark")
		}
		if !Sq('h', '1').IsLight() {
			t.Error("h1 is dark; want light")
		}
		if Sq('c', '1').IsLight() != Sq('f', '8').IsLight() {
			t.Error("c1 and f8 differ in colour")
		}
	})
}

func TestParseUCI(t *testing.T) {
	tests := []struct {
		text    string
		want    UCIMove
		wantErr bool
	}{
		{text: "e2e4", want: UCIMove{From: Sq('e', '2'), To: Sq('e', '4')}},
		{text: "a7a8q", want: UCIMove{From: Sq('a', '7'), To: Sq('a', '8'), Promotion: Queen}},
		{text: "b2b1n", want: UCIMove{From: Sq('b', '2'), To: Sq('b', '1'), Promotion: Knight}},
		{text: "e7e8k", wantErr: true},
		{text: "e7e8Q", wantErr: true},
		{text: "e2", wantErr: true},
		{text: "e2e9", wantErr: true},
		{text: "z2e4", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseUCI(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUCI(%q) error = %v; wantErr %v", tt.text, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseUCI(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMoveUCI(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: Sq('e', '2'), To: Sq('e', '4'), Flags: FlagDoublePawnPush}, "e2e4"},
		{Move{From: Sq('e', '1'), To: Sq('g', '1'), Flags: FlagCastleKingside}, "e1g1"},
		{Move{From: Sq('a', '7'), To: Sq('b', '8'), Promotion: Knight, Flags: FlagCapture}, "a7b8n"},
	}

	for _, tt := range tests {
		if got := tt.move.UCI(); got != tt.want {
			t.Errorf("UCI() = %q; want %q", got, tt.want)
		}
	}

	ep := Move{Flags: FlagEnPassant}
	if !ep.IsCapture() {
		t.Error("en passant IsCapture() = false; want true")
	}
	if !(Move{Flags: FlagCastleQueenside}).IsCastle() {
		t.Error("IsCastle() = false for queenside castle")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{BlackKingside, "k"},
	}

	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for piece := Pawn; piece <= King; piece++ {
			cp := MakeColouredPiece(colour, piece)
			if ExtractPiece(cp) != piece || ExtractColour(cp) != colour {
				t.Errorf("MakeColouredPiece(%v, %v) round trip = (%v, %v)", colour, piece, ExtractColour(cp), ExtractPiece(cp))
			}
			if !IsOccupied(cp) {
				t.Errorf("IsOccupied(%v %v) = false", colour, piece)
			}
		}
	}
	if IsOccupied(Empty) || IsOccupied(Off) {
		t.Error("Empty or Off reported as occupied")
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
}

package engine

import "testing"

func TestPositionFromFENRoundTrip(t *testing.T) {
	data := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range data {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		if got := pos.String(); got != fen {
			t.Errorf("PositionFromFEN(%q).String() = %q, want %q", fen, got, fen)
		}
	}
}

func TestPositionFromFENRejectsGarbage(t *testing.T) {
	data := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range data {
		if _, err := PositionFromFEN(fen); err == nil {
			t.Errorf("PositionFromFEN(%q): expected error, got nil", fen)
		}
	}
}

func TestDoUndoMoveRestoresPosition(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	before := pos.String()

	var moves []Move
	pos.GenerateMoves(AllMoves, &moves)
	for _, m := range moves {
		if !pos.IsLegal(m) {
			continue
		}
		pos.DoMove(m)
		pos.UndoMove()
		if got := pos.String(); got != before {
			t.Fatalf("DoMove/UndoMove(%s) did not restore position: got %q, want %q", m.UCI(), got, before)
		}
	}
}

func TestCastlingMovesTheRook(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.MoveFromUCI("e1g1")
	if err != nil {
		t.Fatal(err)
	}
	pos.DoMove(m)
	if pos.Get(SquareF1) != WhiteRook {
		t.Error("expected white rook on f1 after O-O")
	}
	if pos.Get(SquareH1) != NoPiece {
		t.Error("expected h1 empty after O-O")
	}
	if pos.Get(SquareG1) != WhiteKing {
		t.Error("expected white king on g1 after O-O")
	}
	if pos.CastlingRights()&(WhiteOO|WhiteOOO) != 0 {
		t.Error("expected white to lose all castling rights after castling")
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.MoveFromUCI("d4e3")
	if err != nil {
		t.Fatal(err)
	}
	if m.Flag() != Enpassant {
		t.Fatalf("expected d4e3 to be flagged Enpassant, got %v", m.Flag())
	}
	pos.DoMove(m)
	if pos.Get(SquareE4) != NoPiece {
		t.Error("expected the captured white pawn on e4 to be removed")
	}
	if pos.Get(SquareE3) != BlackPawn {
		t.Error("expected black pawn on e3 after en passant")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	data := []struct {
		fen        string
		want       bool
	}{
		{"8/8/4k3/8/8/3K4/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/3KN3/8/8 w - - 0 1", true},
		// Two knights is not an automatic draw by the dead-position rule
		// even though it almost never wins in practice.
		{"8/8/4k3/8/8/3KNN2/8/8 w - - 0 1", false},
		{"8/8/4k3/8/8/3KB3/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/3KQ3/8/8 w - - 0 1", false},
		{"8/8/4k3/8/8/3KP3/8/8 w - - 0 1", false},
	}
	for _, d := range data {
		pos, err := PositionFromFEN(d.fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", d.fen, err)
		}
		if got := pos.InsufficientMaterial(); got != d.want {
			t.Errorf("InsufficientMaterial(%q) = %v, want %v", d.fen, got, d.want)
		}
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	pos, err := PositionFromFEN("8/8/4k3/8/8/3KN3/8/8 w - - 99 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.IsFiftyMoveDraw() {
		t.Fatal("99 half-moves should not yet claim the fifty-move rule")
	}
	var moves []Move
	pos.GenerateMoves(Quiet, &moves)
	var quiet Move
	for _, m := range moves {
		if pos.IsLegal(m) {
			quiet = m
			break
		}
	}
	pos.DoMove(quiet)
	if !pos.IsFiftyMoveDraw() {
		t.Fatal("100 half-moves since the last capture/pawn push should claim the fifty-move rule")
	}
}

func TestIsCheckedDetectsCheck(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsChecked(White) {
		t.Fatal("white king on e1 should be in check from the rook on e2")
	}
	if pos.IsChecked(Black) {
		t.Fatal("black king should not be in check")
	}
}

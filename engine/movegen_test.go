package engine

import "testing"

func perftCount(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves []Move
	pos.GenerateMoves(AllMoves, &moves)
	var nodes uint64
	for _, m := range moves {
		if !pos.IsLegal(m) {
			continue
		}
		pos.DoMove(m)
		nodes += perftCount(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, w := range want {
		if got := perftCount(pos, depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := PositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		if got := perftCount(pos, depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftEnPassantAndPromotions(t *testing.T) {
	// "duplain" position, exercises en passant and under-promotion heavy lines.
	pos, err := PositionFromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	want := []uint64{1, 14, 191, 2812, 43238}
	for depth, w := range want {
		if got := perftCount(pos, depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestHasLegalMovesStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and is not in check.
	pos, err := PositionFromFEN("k7/8/1Q6/8/8/8/8/1K6 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.HasLegalMoves() {
		t.Fatal("expected no legal moves in stalemate position")
	}
	if pos.IsChecked(Black) {
		t.Fatal("stalemate position should not be check")
	}
}

func TestHasLegalMovesCheckmate(t *testing.T) {
	// Back-rank mate: white rook on e8 mates the black king.
	pos, err := PositionFromFEN("4R1k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.HasLegalMoves() {
		t.Fatal("expected no legal moves in checkmate position")
	}
	if !pos.IsChecked(Black) {
		t.Fatal("expected black king to be in check")
	}
}

func TestMoveFromUCIRejectsIllegalMove(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pos.MoveFromUCI("e2e5"); err == nil {
		t.Fatal("expected e2e5 (illegal pawn triple-push) to be rejected")
	}
}

func TestMoveFromUCIPromotionDisambiguates(t *testing.T) {
	pos, err := PositionFromFEN("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.MoveFromUCI("a7a8q")
	if err != nil {
		t.Fatal(err)
	}
	if m.Flag() != Promotion || m.PromotionPiece() != Queen {
		t.Fatalf("expected queen promotion, got flag %v promo %v", m.Flag(), m.PromotionPiece())
	}
}

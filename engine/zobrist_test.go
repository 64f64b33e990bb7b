package engine

import "testing"

// recomputeKey rebuilds the Zobrist key for pos from scratch, as a
// reference implementation independent of the incremental updates
// Put/Remove/setSideToMove/setCastlingRights/setEPSquare apply on
// every DoMove/UndoMove.
func recomputeKey(pos *Position) uint64 {
	var key uint64
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		if pi := pos.Get(sq); pi != NoPiece {
			key ^= ZobristPiece[pi][sq]
		}
	}
	key ^= ZobristCastle[pos.CastlingRights()]
	if ep := pos.EPSquare(); ep != NoSquare {
		key ^= ZobristEnpassant[ep]
	}
	key ^= ZobristColor[pos.SideToMove]
	return key
}

func TestZobristIncrementalMatchesRecompute(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pos.Key(), recomputeKey(pos); got != want {
		t.Fatalf("start position: incremental key %x, recomputed %x", got, want)
	}

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6"}
	for _, s := range moves {
		m, err := pos.MoveFromUCI(s)
		if err != nil {
			t.Fatalf("move %s: %v", s, err)
		}
		pos.DoMove(m)
		if got, want := pos.Key(), recomputeKey(pos); got != want {
			t.Fatalf("after %s: incremental key %x, recomputed %x", s, got, want)
		}
	}

	for range moves {
		pos.UndoMove()
	}
	if got, want := pos.Key(), recomputeKey(pos); got != want {
		t.Fatalf("after undoing all moves: incremental key %x, recomputed %x", got, want)
	}
	if pos.String() != FENStartPos {
		t.Fatalf("after undoing all moves: position is %q, want %q", pos.String(), FENStartPos)
	}
}

func TestZobristCastlingRightsChangeKey(t *testing.T) {
	// After 1.e4 e5 both sides still hold every castling right; playing
	// Ke2 loses both white castling rights and must update the key
	// exactly as recomputing from scratch would.
	pos, err := PositionFromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pos.Key(), recomputeKey(pos); got != want {
		t.Fatalf("before move: incremental key %x, recomputed %x", got, want)
	}
	m, err := pos.MoveFromUCI("e1e2")
	if err != nil {
		t.Fatal(err)
	}
	pos.DoMove(m)
	if got, want := pos.Key(), recomputeKey(pos); got != want {
		t.Fatalf("after Ke2: incremental key %x, recomputed %x", got, want)
	}
	if pos.CastlingRights()&(WhiteOO|WhiteOOO) != 0 {
		t.Fatal("white should have lost both castling rights after Ke2")
	}
}

func TestZobristDistinctPositionsDistinctKeys(t *testing.T) {
	a, _ := PositionFromFEN(FENStartPos)
	b, _ := PositionFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if a.Key() == b.Key() {
		t.Fatal("distinct positions should (almost certainly) hash differently")
	}
}

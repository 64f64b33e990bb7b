package engine

import (
	"testing"
	"time"
)

func TestPlayFindsBackRankMateInOne(t *testing.T) {
	if testing.Short() {
		t.Skip("search is too slow for -short")
	}
	pos, err := PositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine(pos, NopLogger{}, 1)
	tc := NewTimeControl(White, SearchLimits{Depth: 3, Infinite: true}, time.Now())
	pv := eng.Play(tc)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if got, want := pv[0].UCI(), "a1a8"; got != want {
		t.Errorf("best move = %s, want %s (Ra8#)", got, want)
	}
}

func TestPlayReturnsALegalMoveFromTheStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("search is too slow for -short")
	}
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine(pos, NopLogger{}, 1)
	tc := NewTimeControl(White, SearchLimits{Depth: 2, Infinite: true}, time.Now())
	pv := eng.Play(tc)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if !pos.IsLegal(pv[0]) {
		t.Errorf("best move %s is not legal in the start position", pv[0].UCI())
	}
}

func TestPlayStopsAtTheRequestedDepth(t *testing.T) {
	if testing.Short() {
		t.Skip("search is too slow for -short")
	}
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine(pos, NopLogger{}, 1)
	tc := NewTimeControl(White, SearchLimits{Depth: 2, Infinite: true}, time.Now())
	eng.Play(tc)
	if eng.Stats.Depth > 2 {
		t.Errorf("Stats.Depth = %d, want <= 2", eng.Stats.Depth)
	}
}

func TestNewGameResetsLearnedState(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine(pos, NopLogger{}, 1)
	eng.history.bump(WhitePawn, SquareE4, 5)
	eng.killers.add(0, NewMove(SquareE2, SquareE4, Normal, NoPieceType))
	eng.tt.Store(1, MoveNone, 10, 1, Exact)

	eng.NewGame()

	if eng.history.get(WhitePawn, SquareE4) != 0 {
		t.Error("NewGame should reset the history table")
	}
	if eng.killers.isKiller(0, NewMove(SquareE2, SquareE4, Normal, NoPieceType)) {
		t.Error("NewGame should reset killer moves")
	}
	if _, ok := eng.tt.Probe(1); ok {
		t.Error("NewGame should clear the transposition table")
	}
}

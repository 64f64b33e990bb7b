// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"
	"time"
)

func newTestPool(t *testing.T, threads int) *Pool {
	t.Helper()
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	return NewPool(pos, NopLogger{}, 1, threads)
}

func TestNewPoolSingleThreadHasNoHelpers(t *testing.T) {
	p := newTestPool(t, 1)
	if got, want := p.Threads(), 1; got != want {
		t.Errorf("Threads() = %d, want %d", got, want)
	}
	if len(p.helpers) != 0 {
		t.Errorf("len(helpers) = %d, want 0", len(p.helpers))
	}
}

func TestSetThreadsGrowsHelperPool(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(4)
	if got, want := p.Threads(), 4; got != want {
		t.Errorf("Threads() = %d, want %d", got, want)
	}
	if got, want := len(p.helpers), 3; got != want {
		t.Errorf("len(helpers) = %d, want %d", got, want)
	}
}

func TestSetThreadsClampsToValidRange(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(0)
	if got, want := p.Threads(), 1; got != want {
		t.Errorf("Threads() after SetThreads(0) = %d, want %d (clamped to 1)", got, want)
	}
	p.SetThreads(MaxThreads + 1000)
	if got, want := p.Threads(), MaxThreads; got != want {
		t.Errorf("Threads() after SetThreads(MaxThreads+1000) = %d, want %d (clamped)", got, want)
	}
}

func TestHelpersGetIndependentPositions(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(2)
	h := p.helpers[0]
	if h.Position == p.main.Position {
		t.Fatal("helper must not share the main engine's Position pointer")
	}
	if h.Position.String() != p.main.Position.String() {
		t.Errorf("helper FEN = %q, want %q (same starting position)", h.Position.String(), p.main.Position.String())
	}
}

func TestHelpersShareTheTranspositionTable(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(3)
	for i, h := range p.helpers {
		if h.tt != p.main.tt {
			t.Errorf("helper %d has its own transposition table, want the shared one", i)
		}
	}
}

func TestSetPositionUpdatesMainAndHelpers(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(2)
	pos, err := PositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	p.SetPosition(pos)

	if p.main.Position != pos {
		t.Error("SetPosition should install pos directly on the main engine")
	}
	h := p.helpers[0]
	if h.Position == pos {
		t.Error("helper should receive its own clone, not the shared pointer")
	}
	if h.Position.String() != pos.String() {
		t.Errorf("helper FEN = %q, want %q", h.Position.String(), pos.String())
	}
}

func TestNewGameResetsHelperLearnedState(t *testing.T) {
	p := newTestPool(t, 1)
	p.SetThreads(2)
	h := p.helpers[0]
	h.history.bump(WhitePawn, SquareE4, 5)
	h.killers.add(0, NewMove(SquareE2, SquareE4, Normal, NoPieceType))

	p.NewGame()

	if h.history.get(WhitePawn, SquareE4) != 0 {
		t.Error("NewGame should reset a helper's history table")
	}
	if h.killers.isKiller(0, NewMove(SquareE2, SquareE4, Normal, NoPieceType)) {
		t.Error("NewGame should reset a helper's killer moves")
	}
}

func TestPoolPlayFindsBackRankMateInOneWithMultipleThreads(t *testing.T) {
	if testing.Short() {
		t.Skip("search is too slow for -short")
	}
	pos, err := PositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPool(pos, NopLogger{}, 1, 4)
	tc := NewTimeControl(White, SearchLimits{Depth: 3, Infinite: true}, time.Now())
	pv := p.Play(tc)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if got, want := pv[0].UCI(), "a1a8"; got != want {
		t.Errorf("best move = %s, want %s (Ra8#)", got, want)
	}
}

func TestPoolPlayReturnsALegalMoveWithHelpersRunning(t *testing.T) {
	if testing.Short() {
		t.Skip("search is too slow for -short")
	}
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPool(pos, NopLogger{}, 1, 3)
	tc := NewTimeControl(White, SearchLimits{Depth: 2, Infinite: true}, time.Now())
	pv := p.Play(tc)
	if len(pv) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if !pos.IsLegal(pv[0]) {
		t.Errorf("best move %s is not legal in the start position", pv[0].UCI())
	}
}

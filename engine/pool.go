// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pool.go implements Lazy SMP: a main search thread plus zero or more
// helper threads, each running an independent iterative-deepening
// search over its own Position and state stack, cooperating only
// through the shared transposition table.
package engine

import "sync"

// DefaultThreads is the Threads option's default: single-threaded search.
const DefaultThreads = 1

// MaxThreads bounds the Threads option, matching the UCI spin range
// engines conventionally advertise.
const MaxThreads = 1024

// Pool owns the main search engine and any helper engines. The main
// engine is authoritative: its principal variation is what Pool.Play
// returns and what drives "info"/"bestmove" output. Helpers search
// silently (a NopLogger) purely to seed the shared transposition table
// with results the main thread's probes can reuse.
type Pool struct {
	main    *Engine
	helpers []*Engine
	tt      *TranspositionTable
}

// NewPool returns a Pool searching pos with the given number of threads
// (clamped to [1, MaxThreads]) and a shared transposition table sized
// ttSizeMB.
func NewPool(pos *Position, log Logger, ttSizeMB, threads int) *Pool {
	tt := NewTranspositionTable(ttSizeMB)
	p := &Pool{tt: tt}
	p.main = newPooledEngine(pos, log, tt)
	p.SetThreads(threads)
	return p
}

func newPooledEngine(pos *Position, log Logger, tt *TranspositionTable) *Engine {
	if log == nil {
		log = NopLogger{}
	}
	return &Engine{
		Position: pos,
		Log:      log,
		tt:       tt,
		history:  &historyTable{},
		killers:  &killerMoves{},
		pv:       make(map[uint64]Move),
	}
}

// SetThreads resizes the helper pool to threads-1 workers (clamped to
// [1, MaxThreads]), preserving the main engine and the shared table.
func (p *Pool) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	if threads > MaxThreads {
		threads = MaxThreads
	}
	p.helpers = p.helpers[:0]
	for i := 1; i < threads; i++ {
		p.helpers = append(p.helpers, newPooledEngine(p.main.Position.Clone(), NopLogger{}, p.tt))
	}
}

// Threads reports the current worker count, main thread included.
func (p *Pool) Threads() int { return 1 + len(p.helpers) }

// SetPosition replaces the position every engine in the pool searches.
func (p *Pool) SetPosition(pos *Position) {
	p.main.SetPosition(pos)
	for _, h := range p.helpers {
		h.SetPosition(pos.Clone())
	}
}

// NewGame resets per-game learned state (TT, history, killers) across
// every engine in the pool.
func (p *Pool) NewGame() {
	p.main.NewGame()
	for _, h := range p.helpers {
		h.history = &historyTable{}
		h.killers = &killerMoves{}
		h.pv = make(map[uint64]Move)
	}
}

// Play runs the main engine's iterative deepening to completion against
// tc while helper engines search the same root and deadline in
// parallel, feeding the shared transposition table. It returns the
// main engine's principal variation, moves[0] being the move to play.
func (p *Pool) Play(tc *TimeControl) []Move {
	var wg sync.WaitGroup
	for _, h := range p.helpers {
		wg.Add(1)
		go func(h *Engine) {
			defer wg.Done()
			h.Play(tc)
		}(h)
	}

	pv := p.main.Play(tc)

	// The main thread's iterative deepening is authoritative; once it
	// has produced a result, helpers still iterating serve no purpose.
	tc.Stop()
	wg.Wait()
	return pv
}

// Stats reports the main engine's search statistics.
func (p *Pool) Stats() Stats { return p.main.Stats }

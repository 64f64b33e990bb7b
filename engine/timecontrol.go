// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sync/atomic"
	"time"
)

// SearchLimits describes one "go" request: what the caller told the
// engine about the remaining clock and what, if anything, bounds this
// particular search.
type SearchLimits struct {
	WTime, BTime time.Duration
	WInc, BInc   time.Duration
	MovesToGo    int
	MoveTime     time.Duration // if set, search for exactly this long
	Depth        int           // 0 means unlimited
	Nodes        uint64        // 0 means unlimited
	Mate         int           // search for a mate in N moves, 0 means unset
	Infinite     bool
}

// TimeControl tracks the deadline for one search and the atomic stop
// signal that both the UCI "stop" command and the deadline itself can
// raise. stopped is a real atomic.Bool rather than the teacher's
// mutex-guarded flag: a single word CAS is enough here and avoids a
// lock on the hottest path in the search (checked every few thousand
// nodes).
type TimeControl struct {
	deadline time.Time
	start    time.Time
	nodeCap  uint64
	depthCap int
	stopped  atomic.Bool
}

// NewTimeControl computes the allocated budget for limits, played by
// us, starting now.
//
// allocated = MoveTime if set; else max(50ms, t/20 + inc/2) for the
// side to move; else a large but finite ceiling when the search is
// unbounded ("go infinite" still needs "stop" to end it, but internal
// accounting shouldn't overflow on an unset deadline).
func NewTimeControl(us Color, limits SearchLimits, now time.Time) *TimeControl {
	tc := &TimeControl{
		start:    now,
		nodeCap:  limits.Nodes,
		depthCap: limits.Depth,
	}

	var budget time.Duration
	switch {
	case limits.MoveTime > 0:
		budget = limits.MoveTime
	case limits.Infinite:
		budget = time.Hour
	default:
		t, inc := limits.WTime, limits.WInc
		if us == Black {
			t, inc = limits.BTime, limits.BInc
		}
		budget = t/20 + inc/2
		if budget < 50*time.Millisecond {
			budget = 50 * time.Millisecond
		}
	}

	tc.deadline = now.Add(budget)
	return tc
}

// Stop requests the search to abort as soon as it next checks.
func (tc *TimeControl) Stop() { tc.stopped.Store(true) }

// Stopped reports whether the search should abort: either Stop was
// called, or the deadline has passed.
func (tc *TimeControl) Stopped() bool {
	if tc.stopped.Load() {
		return true
	}
	if !tc.deadline.IsZero() && time.Now().After(tc.deadline) {
		tc.stopped.Store(true)
		return true
	}
	return false
}

// Elapsed returns the time spent searching so far.
func (tc *TimeControl) Elapsed() time.Duration { return time.Since(tc.start) }

// DepthAllowed reports whether iterative deepening may start depth d.
func (tc *TimeControl) DepthAllowed(d int) bool {
	if tc.depthCap > 0 && d > tc.depthCap {
		return false
	}
	return d <= 2 || !tc.Stopped()
}

// NodesAllowed reports whether the search may continue after visiting
// nodes total nodes.
func (tc *TimeControl) NodesAllowed(nodes uint64) bool {
	return tc.nodeCap == 0 || nodes <= tc.nodeCap
}

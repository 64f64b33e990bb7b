// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tt.go implements the transposition table: a cache, keyed by Zobrist
// hash, of previously searched positions.
package engine

import "unsafe"

// BoundKind classifies the score stored in a TTEntry relative to the
// window it was produced with.
type BoundKind uint8

const (
	NoBound BoundKind = iota
	Exact             // score is the position's exact value
	LowerBound        // search failed high: true score >= stored score
	UpperBound        // search failed low: true score <= stored score
)

// TTEntry is one slot of the transposition table. Key is stored in
// full (not truncated to a lock byte) so a probe never mistakes an
// unrelated position sharing the index for a hit.
type TTEntry struct {
	Key   uint64
	Move  Move
	Score int32
	Depth int8
	Bound BoundKind
}

// DefaultTTSizeMB is the default transposition table size.
const DefaultTTSizeMB = 64

// TranspositionTable caches search results keyed by position hash.
// A single slot per index is used, replacing on depth: once an entry
// is in place, it is only overwritten by a search that went at least
// as deep, so expensive results survive shallow probes into the same
// index.
type TranspositionTable struct {
	table []TTEntry
	mask  uint64
}

// NewTranspositionTable builds a table sized to fit within sizeMB
// megabytes, rounded down to a power-of-two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	count := uint64(sizeMB) << 20 / entrySize
	for count&(count-1) != 0 {
		count &= count - 1
	}
	if count == 0 {
		count = 1
	}
	return &TranspositionTable{
		table: make([]TTEntry, count),
		mask:  count - 1,
	}
}

// Size returns the number of entries the table holds.
func (tt *TranspositionTable) Size() int { return len(tt.table) }

func (tt *TranspositionTable) index(key uint64) uint64 { return key & tt.mask }

// Probe looks up key and returns the stored entry and whether it was found.
func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	e := tt.table[tt.index(key)]
	if e.Key != key {
		return TTEntry{}, false
	}
	return e, true
}

// Store records an entry for key, replacing the current occupant of
// its slot only if it is empty or was searched no deeper than depth.
func (tt *TranspositionTable) Store(key uint64, move Move, score int32, depth int8, bound BoundKind) {
	idx := tt.index(key)
	cur := &tt.table[idx]
	if cur.Key != 0 && cur.Depth > depth {
		return
	}
	*cur = TTEntry{Key: key, Move: move, Score: score, Depth: depth, Bound: bound}
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.table {
		tt.table[i] = TTEntry{}
	}
}

// BoundFor classifies score relative to the alpha-beta window it was
// computed with, for use with Store.
func BoundFor(score, alpha, beta int32) BoundKind {
	switch {
	case score <= alpha:
		return UpperBound
	case score >= beta:
		return LowerBound
	default:
		return Exact
	}
}

// toTT converts a root-relative score to the ply-relative score that
// is safe to persist: positions have different distances to a mate
// depending on where in the tree they're reached, so a mate score is
// stored as distance-to-mate from the current node.
func toTT(score int32, ply int) int32 {
	if score >= int32(ValueKnownWin) {
		return score + int32(ply)
	}
	if score <= int32(ValueKnownLoss) {
		return score - int32(ply)
	}
	return score
}

// fromTT is the inverse of toTT, reconstituting a root-relative score
// from a hash probe performed ply levels below the root.
func fromTT(score int32, ply int) int32 {
	if score >= int32(ValueKnownWin) {
		return score - int32(ply)
	}
	if score <= int32(ValueKnownLoss) {
		return score + int32(ply)
	}
	return score
}

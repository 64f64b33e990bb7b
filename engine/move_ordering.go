// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering.go scores and sorts moves so the strongest candidates
// are searched first, which is what makes alpha-beta pruning
// effective in practice.
package engine

import "sort"

// mvvlvaBonus values the victim of a capture, one pawn = 10, used to
// rank captures by Most Valuable Victim / Least Valuable Aggressor.
// https://www.chessprogramming.org/MVV-LVA
var mvvlvaBonus = [PieceTypeArraySize]int32{0, 10, 32, 33, 50, 90, 200}

// historyTable scores quiet moves by how often they have caused a
// beta cutoff in the current search, indexed by [piece][to square].
type historyTable struct {
	score [PieceArraySize][64]int32
}

func (h *historyTable) get(pi Piece, to Square) int32 {
	if h == nil {
		return 0
	}
	return h.score[pi][to]
}

func (h *historyTable) bump(pi Piece, to Square, depth int) {
	h.score[pi][to] += int32(depth * depth)
	if h.score[pi][to] > 1<<20 {
		for p := range h.score {
			for sq := range h.score[p] {
				h.score[p][sq] /= 2
			}
		}
	}
}

// killerMoves holds up to two quiet moves per ply that caused a beta
// cutoff without being a capture, tried early on sibling nodes.
type killerMoves struct {
	moves [maxPly][2]Move
}

func (k *killerMoves) add(ply int, m Move) {
	if ply >= maxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

func (k *killerMoves) isKiller(ply int, m Move) bool {
	if ply >= maxPly {
		return false
	}
	return k.moves[ply][0] == m || k.moves[ply][1] == m
}

// orderMoves sorts moves in place, strongest candidate first: the
// transposition table move, then captures by MVV-LVA (adjusted by SEE
// when losing material), then killers, then quiets by history score.
func orderMoves(pos *Position, moves []Move, hash Move, ply int, killers *killerMoves, hist *historyTable) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(pos, m, hash, ply, killers, hist)
	}
	sort.Sort(&moveSorter{moves, scores})
}

func scoreMove(pos *Position, m Move, hash Move, ply int, killers *killerMoves, hist *historyTable) int32 {
	const (
		hashBonus    = 1 << 30
		captureBase  = 1 << 20
		killerBonus  = 1 << 15
	)
	if m == hash {
		return hashBonus
	}
	victim := pos.Get(m.To())
	if m.Flag() == Enpassant {
		victim = ColorFigure(pos.SideToMove.Opposite(), Pawn)
	}
	if victim != NoPiece || m.Flag() == Promotion {
		attacker := pos.Get(m.From()).Figure()
		promo := m.PromotionPiece()
		score := int32(captureBase) + mvvlvaBonus[victim.Figure()]*64 - mvvlvaBonus[attacker]
		if promo != NoPieceType {
			score += mvvlvaBonus[promo] * 8
		}
		if seeSign(pos, m) {
			score -= captureBase * 2
		}
		return score
	}
	if killers != nil && killers.isKiller(ply, m) {
		return killerBonus
	}
	pi := pos.Get(m.From())
	return hist.get(pi, m.To())
}

// moveSorter sorts moves by descending score, pairing each move with
// its score so sort.Sort can swap both slices in lockstep.
type moveSorter struct {
	moves  []Move
	scores []int32
}

func (s *moveSorter) Len() int { return len(s.moves) }
func (s *moveSorter) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s *moveSorter) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

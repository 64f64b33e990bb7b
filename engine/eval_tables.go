// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Score is a pair of middle game / end game values, combined by Evaluate
// according to the game phase. This is the standard tapered-eval
// trick: instead of one evaluation function per phase, every term
// carries both values and the phase interpolates between them.
type Score struct {
	M, E int32
}

func (s Score) add(o Score) Score    { return Score{s.M + o.M, s.E + o.E} }
func (s Score) sub(o Score) Score    { return Score{s.M - o.M, s.E - o.E} }
func (s Score) neg() Score           { return Score{-s.M, -s.E} }
func (s Score) scale(n int32) Score  { return Score{s.M * n, s.E * n} }

// wFigure is the material value of each figure.
var wFigure = [PieceTypeArraySize]Score{
	NoPieceType: {0, 0},
	Pawn:        {100, 120},
	Knight:      {320, 300},
	Bishop:      {330, 320},
	Rook:        {500, 530},
	Queen:       {975, 1000},
	King:        {0, 0},
}

// wMobility is the per-reachable-square bonus for each figure.
var wMobility = [PieceTypeArraySize]Score{
	Knight: {4, 4},
	Bishop: {5, 5},
	Rook:   {2, 4},
	Queen:  {1, 2},
}

// wPawnPST is a piece-square table for pawns, White's perspective,
// A1 = index 0. Encourages central pawn play in the middlegame and
// advancement in the endgame.
var wPawnPST = [64]Score{
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	{5, 5}, {10, 5}, {10, 5}, {-10, 5}, {-10, 5}, {10, 5}, {10, 5}, {5, 5},
	{5, 8}, {-5, 8}, {-10, 8}, {0, 8}, {0, 8}, {-10, 8}, {-5, 8}, {5, 8},
	{0, 15}, {0, 15}, {0, 15}, {25, 15}, {25, 15}, {0, 15}, {0, 15}, {0, 15},
	{5, 25}, {5, 25}, {10, 25}, {30, 25}, {30, 25}, {10, 25}, {5, 25}, {5, 25},
	{10, 50}, {10, 50}, {20, 50}, {30, 50}, {30, 50}, {20, 50}, {10, 50}, {10, 50},
	{50, 80}, {50, 80}, {50, 80}, {50, 80}, {50, 80}, {50, 80}, {50, 80}, {50, 80},
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
}

// wKingPST rewards king safety (castled corner) in the middlegame and
// centralization in the endgame.
var wKingPST = [64]Score{
	{30, -50}, {40, -30}, {10, -10}, {0, 0}, {0, 0}, {10, -10}, {40, -30}, {30, -50},
	{20, -30}, {20, -10}, {0, 10}, {-10, 20}, {-10, 20}, {0, 10}, {20, -10}, {20, -30},
	{-10, -10}, {-20, 15}, {-20, 25}, {-20, 30}, {-20, 30}, {-20, 25}, {-20, 15}, {-10, -10},
	{-20, -10}, {-30, 20}, {-30, 30}, {-40, 40}, {-40, 40}, {-30, 30}, {-30, 20}, {-20, -10},
	{-30, -10}, {-40, 20}, {-40, 30}, {-50, 40}, {-50, 40}, {-40, 30}, {-40, 20}, {-30, -10},
	{-30, -10}, {-40, 15}, {-40, 25}, {-50, 30}, {-50, 30}, {-40, 25}, {-40, 15}, {-30, -10},
	{-30, -30}, {-40, -10}, {-40, 10}, {-50, 20}, {-50, 20}, {-40, 10}, {-40, -10}, {-30, -30},
	{-30, -50}, {-40, -30}, {-40, -10}, {-50, 0}, {-50, 0}, {-40, -10}, {-40, -30}, {-30, -50},
}

// wPassedPawn gives a bonus for passed pawns by rank (0-7, White's
// perspective; mirrored for Black).
var wPassedPawn = [8]Score{
	{0, 0}, {5, 10}, {10, 20}, {15, 35}, {25, 60}, {40, 100}, {60, 150}, {0, 0},
}

// wKnightPST, wBishopPST, wRookPST and wQueenPST are piece-square
// tables, White's perspective, A1 = index 0, after Tomasz Michniewski's
// widely-used "simplified evaluation" tables.
var wKnightPST = [64]Score{
	{-50, -50}, {-40, -40}, {-30, -30}, {-30, -30}, {-30, -30}, {-30, -30}, {-40, -40}, {-50, -50},
	{-40, -40}, {-20, -20}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-20, -20}, {-40, -40},
	{-30, -30}, {0, 0}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {0, 0}, {-30, -30},
	{-30, -30}, {5, 5}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {5, 5}, {-30, -30},
	{-30, -30}, {0, 0}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {0, 0}, {-30, -30},
	{-30, -30}, {5, 5}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {5, 5}, {-30, -30},
	{-40, -40}, {-20, -20}, {0, 0}, {5, 5}, {5, 5}, {0, 0}, {-20, -20}, {-40, -40},
	{-50, -50}, {-40, -40}, {-30, -30}, {-30, -30}, {-30, -30}, {-30, -30}, {-40, -40}, {-50, -50},
}

var wBishopPST = [64]Score{
	{-20, -20}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -20},
	{-10, -10}, {5, 5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {5, 5}, {-10, -10},
	{-10, -10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {-10, -10},
	{-10, -10}, {0, 0}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {0, 0}, {-10, -10},
	{-10, -10}, {5, 5}, {5, 5}, {10, 10}, {10, 10}, {5, 5}, {5, 5}, {-10, -10},
	{-10, -10}, {0, 0}, {5, 5}, {10, 10}, {10, 10}, {5, 5}, {0, 0}, {-10, -10},
	{-10, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
	{-20, -20}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -20},
}

var wRookPST = [64]Score{
	{0, 0}, {0, 0}, {0, 0}, {5, 5}, {5, 5}, {0, 0}, {0, 0}, {0, 0},
	{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
	{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
	{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
	{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
	{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
	{5, 5}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {5, 5},
	{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
}

var wQueenPST = [64]Score{
	{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
	{-10, -10}, {0, 0}, {5, 5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
	{-10, -10}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
	{0, 0}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-5, -5},
	{-5, -5}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-5, -5},
	{-10, -10}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
	{-10, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
	{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
}

var (
	wBishopPair            = Score{30, 50}
	wDoubledPawn           = Score{-10, -20}
	wIsolatedPawn          = Score{-12, -10}
	wBackwardPawn          = Score{-8, -5}
	wRookOnOpenFile        = Score{25, 10}
	wRookOnSemiOpenFile    = Score{12, 8}
	wRookOnSeventh         = Score{20, 30}
	wKnightRimPenalty      = Score{-10, -5}
	wKnightOutpost         = Score{20, 10}
	wQueenEarlyDevelopment = Score{-15, 0}
	wCastledKingFile       = Score{15, 0}
	wKingShelterPawn       = Score{10, 0}
	wKingAttack            = Score{-6, 0}
	wMopUpDistance         = Score{0, 10}
	wTempo                 = Score{10, 10}
)

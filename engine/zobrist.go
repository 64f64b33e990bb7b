// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go contains magic numbers used for Zobrist hashing.
//
// More information on Zobrist hashing can be found in the paper:
// http://research.cs.wisc.edu/techreports/1970/TR88.pdf
package engine

import "math/rand"

var (
	// ZobristPiece holds one random number per (piece, square) pair.
	ZobristPiece [PieceArraySize][SquareArraySize]uint64
	// ZobristEnpassant holds one random number per en-passant target
	// square (only rank 3 and rank 6 squares are ever populated).
	ZobristEnpassant [SquareArraySize]uint64
	// ZobristCastle holds one random number per castling-rights mask.
	ZobristCastle [CastleArraySize]uint64
	// ZobristColor holds one random number per side to move.
	ZobristColor [ColorArraySize]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	// Fixed seed: Zobrist keys only need to be internally consistent
	// within one running process, never reproducible across versions.
	r := rand.New(rand.NewSource(1))

	for col := ColorMinValue; col <= ColorMaxValue; col++ {
		for fig := PieceTypeMinValue; fig <= PieceTypeMaxValue; fig++ {
			for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
				ZobristPiece[ColorFigure(col, fig)][sq] = rand64(r)
			}
		}
	}
	for sq := SquareA3; sq <= SquareH3; sq++ {
		ZobristEnpassant[sq] = rand64(r)
	}
	for sq := SquareA6; sq <= SquareH6; sq++ {
		ZobristEnpassant[sq] = rand64(r)
	}
	for c := Castle(0); int(c) < CastleArraySize; c++ {
		ZobristCastle[c] = rand64(r)
	}
	for col := ColorMinValue; col <= ColorMaxValue; col++ {
		ZobristColor[col] = rand64(r)
	}
}

// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Named squares, in rank-major order (A1=0 ... H8=63), mirroring the
// teacher's convention of naming every square so castling and Zobrist
// code can refer to them directly instead of calling RankFile inline.
const (
	SquareB1 = SquareA1 + 1
	SquareC1 = SquareA1 + 2
	SquareD1 = SquareA1 + 3
	SquareE1 = SquareA1 + 4
	SquareF1 = SquareA1 + 5
	SquareG1 = SquareA1 + 6
	SquareH1 = SquareA1 + 7

	SquareB2 = SquareA2 + 1
	SquareC2 = SquareA2 + 2
	SquareD2 = SquareA2 + 3
	SquareE2 = SquareA2 + 4
	SquareF2 = SquareA2 + 5
	SquareG2 = SquareA2 + 6
	SquareH2 = SquareA2 + 7

	SquareB3 = SquareA3 + 1
	SquareC3 = SquareA3 + 2
	SquareD3 = SquareA3 + 3
	SquareE3 = SquareA3 + 4
	SquareF3 = SquareA3 + 5
	SquareG3 = SquareA3 + 6
	SquareH3 = SquareA3 + 7

	SquareB4 = SquareA4 + 1
	SquareC4 = SquareA4 + 2
	SquareD4 = SquareA4 + 3
	SquareE4 = SquareA4 + 4
	SquareF4 = SquareA4 + 5
	SquareG4 = SquareA4 + 6
	SquareH4 = SquareA4 + 7

	SquareB5 = SquareA5 + 1
	SquareC5 = SquareA5 + 2
	SquareD5 = SquareA5 + 3
	SquareE5 = SquareA5 + 4
	SquareF5 = SquareA5 + 5
	SquareG5 = SquareA5 + 6
	SquareH5 = SquareA5 + 7

	SquareB6 = SquareA6 + 1
	SquareC6 = SquareA6 + 2
	SquareD6 = SquareA6 + 3
	SquareE6 = SquareA6 + 4
	SquareF6 = SquareA6 + 5
	SquareG6 = SquareA6 + 6
	SquareH6 = SquareA6 + 7

	SquareB7 = SquareA7 + 1
	SquareC7 = SquareA7 + 2
	SquareD7 = SquareA7 + 3
	SquareE7 = SquareA7 + 4
	SquareF7 = SquareA7 + 5
	SquareG7 = SquareA7 + 6
	SquareH7 = SquareA7 + 7

	SquareB8 = SquareA8 + 1
	SquareC8 = SquareA8 + 2
	SquareD8 = SquareA8 + 3
	SquareE8 = SquareA8 + 4
	SquareF8 = SquareA8 + 5
	SquareG8 = SquareA8 + 6
	SquareH8 = SquareA8 + 7
)

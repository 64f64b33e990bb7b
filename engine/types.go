// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type PieceType
//go:generate stringer -type Color
//go:generate stringer -type MoveFlag

// Package engine implements board representation, legal move generation,
// static evaluation and alpha-beta search for the halcyon chess engine.
//
// Position (types.go, position.go) uses:
//
//   - Bitboards for squareset representation.
//   - Ray-walking attack generation for sliding pieces, jump tables for
//     the rest, precomputed once at init.
//
// Search (search.go) implements iterative deepening negamax with
// alpha-beta pruning, a transposition table, null-move pruning, late
// move reductions, killer/history move ordering and quiescence search
// with static exchange evaluation, wrapped for Lazy SMP.
package engine

import "fmt"

var errInvalidSquare = fmt.Errorf("invalid square")

// Square identifies one of the 64 board cells. Squares are numbered
// 0..63 with A1=0, B1=1, ..., H1=7, A2=8, ..., H8=63 (rank*8+file).
type Square uint8

const (
	SquareA1 Square = 8 * iota
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
)

const (
	SquareMinValue = Square(0)
	SquareMaxValue = Square(63)
	SquareArraySize = int(64)
	NoSquare        = Square(255)
)

// RankFile returns the square with rank r (0-7) and file f (0-7).
func RankFile(r, f int) Square {
	return Square(r*8 + f)
}

// SquareFromString parses a square in algebraic notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, errInvalidSquare
	}
	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return SquareA1, errInvalidSquare
	}
	return RankFile(r, f), nil
}

// Bitboard returns the singleton squareset containing sq.
func (sq Square) Bitboard() Bitboard { return Bitboard(1) << uint(sq) }

// Rank returns sq's rank, 0 (rank 1) to 7 (rank 8).
func (sq Square) Rank() int { return int(sq / 8) }

// File returns sq's file, 0 (file a) to 7 (file h).
func (sq Square) File() int { return int(sq % 8) }

// Relative returns the square dr ranks and df files from sq.
// The result is undefined if it falls off the board.
func (sq Square) Relative(dr, df int) Square { return Square(int(sq) + dr*8 + df) }

// POV mirrors sq vertically if us is Black, so pawn-structure code can
// always reason in terms of "own" ranks regardless of color.
func (sq Square) POV(us Color) Square {
	if us == Black {
		return sq ^ 56
	}
	return sq
}

func (sq Square) String() string {
	return string([]byte{byte(sq.File() + 'a'), byte(sq.Rank() + '1')})
}

// Color is one side of the game.
type Color uint8

const (
	White Color = iota
	Black

	ColorArraySize = int(2)
	ColorMinValue  = White
	ColorMaxValue  = Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// KingHomeRank returns the back rank (0-7) for c's starting king square.
func (c Color) KingHomeRank() int {
	if c == Black {
		return 7
	}
	return 0
}

// PieceType identifies a figure without a color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PieceTypeArraySize = int(7)
	PieceTypeMinValue  = Pawn
	PieceTypeMaxValue  = King
)

var pieceTypeToSymbol = map[PieceType]string{
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

var symbolToPieceType = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// Piece is a figure owned by a color, packed per spec as (color<<3)|type
// so the type is recovered with a 3-bit mask.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight = Piece(White)<<3 | Piece(Knight)
	WhiteBishop = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  = Piece(White)<<3 | Piece(Queen)
	WhiteKing   = Piece(White)<<3 | Piece(King)
	BlackPawn   = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight = Piece(Black)<<3 | Piece(Knight)
	BlackBishop = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  = Piece(Black)<<3 | Piece(Queen)
	BlackKing   = Piece(Black)<<3 | Piece(King)

	// PieceArraySize covers every value ColorFigure can produce
	// (Black<<3|King is the largest, 14), rounded up to a power of two.
	PieceArraySize = int(16)
)

// ColorFigure builds the piece for col playing fig.
func ColorFigure(col Color, fig PieceType) Piece {
	return Piece(col)<<3 | Piece(fig)
}

// Color returns pi's owning color. Undefined for NoPiece.
func (pi Piece) Color() Color { return Color(pi >> 3) }

// Figure returns pi's piece type, or NoPieceType for NoPiece.
func (pi Piece) Figure() PieceType { return PieceType(pi & 7) }

var pieceToSymbol = [...]byte{
	'.',
	'P', 'N', 'B', 'R', 'Q', 'K', '.',
	'.', 'p', 'n', 'b', 'r', 'q', 'k',
}

func (pi Piece) symbolIndex() int {
	return int(pi.Color())*8 + int(pi.Figure())
}

func (pi Piece) String() string {
	if pi == NoPiece {
		return "."
	}
	idx := pi.symbolIndex()
	if idx < 0 || idx >= len(pieceToSymbol) {
		return "."
	}
	return string(pieceToSymbol[idx])
}

// Castle is a bitmask of remaining castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle Castle = WhiteOO | WhiteOOO | BlackOO | BlackOOO

	CastleArraySize = int(AnyCastle + 1)
)

var castleToSymbol = [...]struct {
	mask Castle
	ch   byte
}{
	{WhiteOO, 'K'}, {WhiteOOO, 'Q'}, {BlackOO, 'k'}, {BlackOOO, 'q'},
}

func (c Castle) String() string {
	if c == 0 {
		return "-"
	}
	var r []byte
	for _, e := range castleToSymbol {
		if c&e.mask != 0 {
			r = append(r, e.ch)
		}
	}
	return string(r)
}

// Value is a search score in centipawn-like units.
type Value int32

const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueMate      Value = 32000
	ValueInfinite  Value = 32001
	ValueKnownWin  Value = ValueMate - 1000
	ValueKnownLoss Value = -ValueKnownWin
)

func max32(a, b int32) int32 {
	if a >= b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a <= b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

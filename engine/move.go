// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// MoveFlag distinguishes how a move updates the board beyond a plain
// piece relocation.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	Promotion
	Enpassant
	Castling
)

// Move is a packed 16-bit record: bits 0-5 are the destination square,
// bits 6-11 the origin square, bits 12-13 the promotion figure offset
// (0=Knight, 1=Bishop, 2=Rook, 3=Queen), bits 14-15 the MoveFlag.
//
// MoveNone (all zero bits) and MoveNull (From==To==SquareB1) are
// reserved sentinels: no legal move shares its origin and destination
// square, so both are unambiguous.
type Move uint16

const (
	MoveNone Move = 0
	MoveNull Move = Move(SquareB1) | Move(SquareB1)<<6
)

const (
	moveToMask    = 0x3f
	moveFromShift = 6
	moveFromMask  = 0x3f << moveFromShift
	movePromoShift = 12
	movePromoMask  = 0x3 << movePromoShift
	moveFlagShift  = 14
)

// NewMove packs a move. promo is only consulted when flag is Promotion.
func NewMove(from, to Square, flag MoveFlag, promo PieceType) Move {
	var promoBits Move
	if flag == Promotion {
		promoBits = Move(promo-Knight) << movePromoShift
	}
	return Move(to) | Move(from)<<moveFromShift | promoBits | Move(flag)<<moveFlagShift
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & moveToMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & moveFromMask) >> moveFromShift) }

// Flag returns the move's MoveFlag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> moveFlagShift) & 0x3) }

// PromotionPiece returns the figure a pawn promotes to, or NoPieceType
// if m is not a promotion.
func (m Move) PromotionPiece() PieceType {
	if m.Flag() != Promotion {
		return NoPieceType
	}
	return Knight + PieceType((m&movePromoMask)>>movePromoShift)
}

// UCI renders m in UCI move notation (origin+destination, optional
// promotion letter).
//
// The protocol specification at http://wbec-ridderkerk.nl/html/UCIProtocol.html
// incorrectly calls this long algebraic notation (LAN); it is simpler.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.PromotionPiece(); p != NoPieceType {
		sym := pieceTypeToSymbol[p]
		s += string(sym[0] | 0x20)
	}
	return s
}

func (m Move) String() string { return m.UCI() }

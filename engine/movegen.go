// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "fmt"

// MoveKind selects a subset of moves to generate, as a bitmask so
// callers combine them (e.g. Captures|Promotions for quiescence).
type MoveKind int

const (
	Quiet MoveKind = 1 << iota
	Captures
	Promotions

	AllMoves = Quiet | Captures | Promotions
)

// GenerateMoves appends every pseudo-legal move of kind available to
// the side to move to moves. Pseudo-legal means the move may leave
// the mover's own king in check; callers filter with IsLegal or use
// LegalMoves, which already does.
//
// The generation order (king, rooks, queens, pawns, knights, bishops,
// castling) is the one the teacher's engine settled on after testing
// move orders empirically; it affects nothing semantically but gives
// the search's move orderer a slightly better starting order before
// scoring.
func (pos *Position) GenerateMoves(kind MoveKind, moves *[]Move) {
	pos.genKingMoves(kind, moves)
	pos.genSliderMoves(Rook, kind, moves)
	pos.genSliderMoves(Queen, kind, moves)
	if kind&Captures != 0 {
		pos.genPawnCaptures(moves)
	}
	pos.genPawnAdvances(kind, moves)
	pos.genPawnPromotions(kind, moves)
	pos.genKnightMoves(kind, moves)
	pos.genSliderMoves(Bishop, kind, moves)
	if kind&Quiet != 0 {
		pos.genCastles(moves)
	}
}

// LegalMoves appends every fully legal move to moves.
func (pos *Position) LegalMoves(moves *[]Move) {
	var pseudo []Move
	pos.GenerateMoves(AllMoves, &pseudo)
	for _, m := range pseudo {
		if pos.IsLegal(m) {
			*moves = append(*moves, m)
		}
	}
}

// IsLegal reports whether playing m leaves the mover's own king safe.
// m must be pseudo-legal.
func (pos *Position) IsLegal(m Move) bool {
	us := pos.SideToMove
	pos.DoMove(m)
	legal := !pos.IsAttacked(pos.KingSquare(us), us.Opposite())
	pos.UndoMove()
	return legal
}

// HasLegalMoves reports whether the side to move has at least one
// legal move, without allocating a slice of all of them.
func (pos *Position) HasLegalMoves() bool {
	var pseudo []Move
	pos.GenerateMoves(AllMoves, &pseudo)
	for _, m := range pseudo {
		if pos.IsLegal(m) {
			return true
		}
	}
	return false
}

func (pos *Position) mask(kind MoveKind) Bitboard {
	var mask Bitboard
	if kind&Captures != 0 {
		mask |= pos.ByColor[pos.SideToMove.Opposite()]
	}
	if kind&Quiet != 0 {
		mask |= ^pos.Occupied()
	}
	return mask
}

func appendAttacks(from Square, att Bitboard, moves *[]Move) {
	for att != 0 {
		to := att.Pop()
		*moves = append(*moves, NewMove(from, to, Normal, NoPieceType))
	}
}

func (pos *Position) genKnightMoves(kind MoveKind, moves *[]Move) {
	mask := pos.mask(kind)
	for bb := pos.ByPiece(pos.SideToMove, Knight); bb != 0; {
		from := bb.Pop()
		appendAttacks(from, BbKnightAttack[from]&mask, moves)
	}
}

func (pos *Position) genKingMoves(kind MoveKind, moves *[]Move) {
	mask := pos.mask(kind)
	from := pos.KingSquare(pos.SideToMove)
	appendAttacks(from, BbKingAttack[from]&mask, moves)
}

func (pos *Position) genSliderMoves(fig PieceType, kind MoveKind, moves *[]Move) {
	mask := pos.mask(kind)
	occ := pos.Occupied()
	for bb := pos.ByPiece(pos.SideToMove, fig); bb != 0; {
		from := bb.Pop()
		var att Bitboard
		switch fig {
		case Bishop:
			att = BishopAttack(from, occ)
		case Rook:
			att = RookAttack(from, occ)
		case Queen:
			att = QueenAttack(from, occ)
		}
		appendAttacks(from, att&mask, moves)
	}
}

func (pos *Position) genCastles(moves *[]Move) {
	us := pos.SideToMove
	them := us.Opposite()
	rank := us.KingHomeRank()
	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		oo, ooo = BlackOO, BlackOOO
	}
	rights := pos.CastlingRights()

	if rights&oo != 0 {
		f, g := RankFile(rank, 5), RankFile(rank, 6)
		e := RankFile(rank, 4)
		if pos.IsEmpty(f) && pos.IsEmpty(g) &&
			!pos.IsAttacked(e, them) && !pos.IsAttacked(f, them) && !pos.IsAttacked(g, them) {
			*moves = append(*moves, NewMove(e, g, Castling, NoPieceType))
		}
	}
	if rights&ooo != 0 {
		b, c, d := RankFile(rank, 1), RankFile(rank, 2), RankFile(rank, 3)
		e := RankFile(rank, 4)
		if pos.IsEmpty(b) && pos.IsEmpty(c) && pos.IsEmpty(d) &&
			!pos.IsAttacked(e, them) && !pos.IsAttacked(d, them) && !pos.IsAttacked(c, them) {
			*moves = append(*moves, NewMove(e, c, Castling, NoPieceType))
		}
	}
}

func (pos *Position) genPawnAdvances(kind MoveKind, moves *[]Move) {
	if kind&Quiet == 0 {
		return
	}
	us := pos.SideToMove
	occ := pos.Occupied()
	ours := pos.ByPiece(us, Pawn)

	var single Bitboard
	var forward int
	if us == White {
		ours &^= BbRank7
		single = ours.north() &^ occ
		forward = 8
	} else {
		ours &^= BbRank2
		single = ours.south() &^ occ
		forward = -8
	}

	for bb := single; bb != 0; {
		to := bb.Pop()
		from := Square(int(to) - forward)
		*moves = append(*moves, NewMove(from, to, Normal, NoPieceType))
	}

	var double Bitboard
	if us == White {
		double = (single & BbRank3).north() &^ occ
		forward = 16
	} else {
		double = (single & BbRank6).south() &^ occ
		forward = -16
	}
	for bb := double; bb != 0; {
		to := bb.Pop()
		from := Square(int(to) - forward)
		*moves = append(*moves, NewMove(from, to, Normal, NoPieceType))
	}
}

var (
	BbRank3 = RankBb(2)
	BbRank6 = RankBb(5)
)

func (pos *Position) genPawnCaptures(moves *[]Move) {
	us := pos.SideToMove
	them := us.Opposite()
	ours := pos.ByPiece(us, Pawn)
	if us == White {
		ours &^= BbRank7
	} else {
		ours &^= BbRank2
	}
	theirs := pos.ByColor[them]
	ep := pos.EPSquare()

	for bb := ours; bb != 0; {
		from := bb.Pop()
		att := BbPawnAttack[us][from] & theirs
		for a := att; a != 0; {
			to := a.Pop()
			*moves = append(*moves, NewMove(from, to, Normal, NoPieceType))
		}
		if ep != NoSquare && BbPawnAttack[us][from].Has(ep) {
			*moves = append(*moves, NewMove(from, ep, Enpassant, NoPieceType))
		}
	}
}

func (pos *Position) genPawnPromotions(kind MoveKind, moves *[]Move) {
	if kind&(Captures|Promotions) == 0 {
		return
	}
	us := pos.SideToMove
	them := us.Opposite()
	ours := pos.ByPiece(us, Pawn)
	occ := pos.Occupied()
	theirs := pos.ByColor[them]

	var rank Bitboard
	var forward int
	if us == White {
		rank = BbRank7
		forward = 8
	} else {
		rank = BbRank2
		forward = -8
	}
	ours &= rank

	for bb := ours; bb != 0; {
		from := bb.Pop()
		to := Square(int(from) + forward)
		if !occ.Has(to) {
			pos.appendPromotions(from, to, moves)
		}
		for a := BbPawnAttack[us][from] & theirs; a != 0; {
			capTo := a.Pop()
			pos.appendPromotions(from, capTo, moves)
		}
	}
}

func (pos *Position) appendPromotions(from, to Square, moves *[]Move) {
	for _, p := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		*moves = append(*moves, NewMove(from, to, Promotion, p))
	}
}

// MoveFromUCI resolves a UCI long-algebraic token (e.g. "e2e4",
// "e7e8q") against the side to move's legal moves. UCI itself has no
// move encoding of its own; the token only disambiguates origin,
// destination and promotion figure, so the matching legal move
// carries the flag (capture, en passant, castling) that the token
// doesn't spell out.
func (pos *Position) MoveFromUCI(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return MoveNone, fmt.Errorf("invalid move %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return MoveNone, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return MoveNone, err
	}
	var promo PieceType
	if len(s) == 5 {
		fig, ok := symbolToPieceType[s[4]]
		if !ok {
			return MoveNone, fmt.Errorf("invalid promotion %q", s[4])
		}
		promo = fig
	}

	var moves []Move
	pos.LegalMoves(&moves)
	for _, m := range moves {
		if m.From() == from && m.To() == to {
			if m.Flag() != Promotion || m.PromotionPiece() == promo {
				return m, nil
			}
		}
	}
	return MoveNone, fmt.Errorf("no legal move %q in this position", s)
}

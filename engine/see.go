// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// see.go implements static exchange evaluation.
package engine

// seeValue gives each figure a fixed value for the swap algorithm,
// deliberately coarser than the tapered evaluator's own weights —
// SEE only needs to order captures, not to score positions.
var seeValue = [PieceTypeArraySize]int32{0, 100, 325, 325, 500, 975, 20000}

// see runs the static exchange evaluation swap algorithm for the
// capture (or promotion) m on sq, assuming m has not been played yet.
// It returns the net material gain for the side to move if the
// exchange sequence on sq is carried out to its conclusion by both
// sides playing their least valuable attacker first.
//
// https://www.chessprogramming.org/Static_Exchange_Evaluation
// https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm
func see(pos *Position, m Move) int32 {
	sq := m.To()
	us := pos.SideToMove

	var target PieceType
	if m.Flag() == Enpassant {
		target = Pawn
	} else {
		target = pos.Get(sq).Figure()
	}

	attackerFig := pos.Get(m.From()).Figure()
	if m.Flag() == Promotion {
		attackerFig = m.PromotionPiece()
	}

	occ := pos.Occupied()
	occ &^= m.From().Bitboard()
	occ |= m.To().Bitboard()
	if m.Flag() == Enpassant {
		occ &^= m.To().Relative(-1, 0).Bitboard()
		if us == Black {
			occ &^= m.To().Relative(1, 0).Bitboard()
		}
	}

	byColor := [ColorArraySize]Bitboard{pos.ByColor[White], pos.ByColor[Black]}
	byType := pos.ByPieceType
	byColor[us] &^= m.From().Bitboard()
	byColor[us] |= m.To().Bitboard()
	byType[attackerFig] &^= m.From().Bitboard()
	byType[attackerFig] |= m.To().Bitboard()

	side := us.Opposite()
	gain := make([]int32, 1, 16)
	gain[0] = seeValue[target]
	target = attackerFig

	for {
		ours := byColor[side] & occ
		var attSq Square = NoSquare
		var fig PieceType

		for f := Pawn; f <= King; f++ {
			var candidates Bitboard
			switch f {
			case Pawn:
				candidates = BbPawnAttack[side.Opposite()][sq]
			case Knight:
				candidates = BbKnightAttack[sq]
			case Bishop:
				candidates = BishopAttack(sq, occ)
			case Rook:
				candidates = RookAttack(sq, occ)
			case Queen:
				candidates = QueenAttack(sq, occ)
			case King:
				candidates = BbKingAttack[sq]
			}
			if att := candidates & ours & byType[f]; att != 0 {
				attSq = att.First()
				fig = f
				break
			}
		}

		if attSq == NoSquare {
			break
		}

		gain = append(gain, seeValue[target]-gain[len(gain)-1])
		target = fig

		occ &^= attSq.Bitboard()
		byColor[side] &^= attSq.Bitboard()
		byType[fig] &^= attSq.Bitboard()
		side = side.Opposite()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

// seeSign reports whether the capture m loses material for the side
// to move according to see, without computing the full swap sequence
// when the answer is already obvious (capturing with a piece no more
// valuable than the victim is never losing).
func seeSign(pos *Position, m Move) bool {
	attacker := pos.Get(m.From()).Figure()
	victim := pos.Get(m.To()).Figure()
	if attacker <= victim {
		return false
	}
	return see(pos, m) < 0
}

package notation

import (
	"fmt"
	"strings"

	"github.com/halcyon-engine/halcyon/engine"
)

// sanToMove resolves a Standard Algebraic Notation token (e.g. "Nf3",
// "exd5", "O-O", "e8=Q") against pos's legal moves. SAN omits the
// origin square whenever it's unambiguous, so disambiguation falls
// back to the file and/or rank hint the notation does carry.
func sanToMove(pos *engine.Position, san string) (engine.Move, error) {
	s := strings.TrimRight(san, "+#!?")
	s = strings.ReplaceAll(s, "-", "")

	var moves []engine.Move
	pos.LegalMoves(&moves)

	switch s {
	case "OO", "OOO", "00", "000":
		return sanCastle(moves, s == "OO" || s == "00")
	}

	promo := engine.NoPieceType
	if eq := strings.IndexByte(s, '='); eq >= 0 {
		if eq+1 >= len(s) {
			return engine.MoveNone, fmt.Errorf("invalid SAN move %q", san)
		}
		fig, ok := pieceTypeFromSANLetter(s[eq+1])
		if !ok {
			return engine.MoveNone, fmt.Errorf("invalid promotion in %q", san)
		}
		promo = fig
		s = s[:eq]
	}

	fig := engine.Pawn
	rest := s
	if len(rest) > 0 {
		if f, ok := pieceTypeFromSANLetter(rest[0]); ok {
			fig = f
			rest = rest[1:]
		}
	}
	rest = strings.ReplaceAll(rest, "x", "")
	if len(rest) < 2 {
		return engine.MoveNone, fmt.Errorf("invalid SAN move %q", san)
	}

	to, err := engine.SquareFromString(rest[len(rest)-2:])
	if err != nil {
		return engine.MoveNone, fmt.Errorf("invalid SAN move %q: %v", san, err)
	}
	disambig := rest[:len(rest)-2]
	disambFile, disambRank := -1, -1
	for _, ch := range disambig {
		switch {
		case ch >= 'a' && ch <= 'h':
			disambFile = int(ch - 'a')
		case ch >= '1' && ch <= '8':
			disambRank = int(ch - '1')
		}
	}

	var found engine.Move
	matches := 0
	for _, m := range moves {
		if m.To() != to {
			continue
		}
		from := m.From()
		if pos.Get(from).Figure() != fig {
			continue
		}
		if fig == engine.Pawn && m.Flag() == engine.Promotion && m.PromotionPiece() != promo {
			continue
		}
		if disambFile >= 0 && from.File() != disambFile {
			continue
		}
		if disambRank >= 0 && from.Rank() != disambRank {
			continue
		}
		found, matches = m, matches+1
	}
	switch matches {
	case 0:
		return engine.MoveNone, fmt.Errorf("no legal move matches %q", san)
	case 1:
		return found, nil
	default:
		return engine.MoveNone, fmt.Errorf("ambiguous SAN move %q", san)
	}
}

func sanCastle(moves []engine.Move, kingside bool) (engine.Move, error) {
	for _, m := range moves {
		if m.Flag() != engine.Castling {
			continue
		}
		if (m.To().File() == 6) == kingside {
			return m, nil
		}
	}
	return engine.MoveNone, fmt.Errorf("no legal castling move")
}

func pieceTypeFromSANLetter(ch byte) (engine.PieceType, bool) {
	switch ch {
	case 'N':
		return engine.Knight, true
	case 'B':
		return engine.Bishop, true
	case 'R':
		return engine.Rook, true
	case 'Q':
		return engine.Queen, true
	case 'K':
		return engine.King, true
	}
	return engine.NoPieceType, false
}

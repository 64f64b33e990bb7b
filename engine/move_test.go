package engine

import "testing"

func TestMoveRoundTrip(t *testing.T) {
	data := []struct {
		from, to Square
		flag     MoveFlag
		promo    PieceType
	}{
		{SquareE2, SquareE4, Normal, NoPieceType},
		{SquareE1, SquareG1, Castling, NoPieceType},
		{SquareE5, SquareD6, Enpassant, NoPieceType},
		{SquareA7, SquareA8, Promotion, Queen},
		{SquareB7, SquareC8, Promotion, Knight},
	}

	for _, d := range data {
		m := NewMove(d.from, d.to, d.flag, d.promo)
		if got := m.From(); got != d.from {
			t.Errorf("NewMove(%v,%v,%v,%v): From() = %v, want %v", d.from, d.to, d.flag, d.promo, got, d.from)
		}
		if got := m.To(); got != d.to {
			t.Errorf("NewMove(%v,%v,%v,%v): To() = %v, want %v", d.from, d.to, d.flag, d.promo, got, d.to)
		}
		if got := m.Flag(); got != d.flag {
			t.Errorf("NewMove(%v,%v,%v,%v): Flag() = %v, want %v", d.from, d.to, d.flag, d.promo, got, d.flag)
		}
		if d.flag == Promotion {
			if got := m.PromotionPiece(); got != d.promo {
				t.Errorf("NewMove(%v,%v,%v,%v): PromotionPiece() = %v, want %v", d.from, d.to, d.flag, d.promo, got, d.promo)
			}
		}
	}
}

func TestMoveUCI(t *testing.T) {
	data := []struct {
		m    Move
		want string
	}{
		{NewMove(SquareE2, SquareE4, Normal, NoPieceType), "e2e4"},
		{NewMove(SquareE7, SquareE8, Promotion, Queen), "e7e8q"},
		{NewMove(SquareE7, SquareD8, Promotion, Knight), "e7d8n"},
	}

	for _, d := range data {
		if got := d.m.UCI(); got != d.want {
			t.Errorf("UCI() = %q, want %q", got, d.want)
		}
	}
}

func TestMoveNoneAndNull(t *testing.T) {
	if MoveNone == MoveNull {
		t.Fatal("MoveNone and MoveNull must be distinct sentinels")
	}
}

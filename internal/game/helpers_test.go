package game

import (
	"testing"

	"spellchess/internal/coords"
)

// mustSquare parses an algebraic coordinate, failing the test on error.
func mustSquare(t *testing.T, coord string) coords.Square {
	t.Helper()
	sq, ok := coords.ParseAlgebraic(coord)
	if !ok {
		t.Fatalf("invalid coordinate %q", coord)
	}
	return sq
}

// mustMove applies a plain (non-promotion) move and fails the test on error
// or on an unexpected pending promotion.
func mustMove(t *testing.T, s *GameState, from, to string) *GameState {
	t.Helper()
	next, awaiting, err := ApplyMove(s, mustSquare(t, from), mustSquare(t, to), "", 0, false)
	if err != nil {
		t.Fatalf("ApplyMove(%s-%s): %v", from, to, err)
	}
	if awaiting {
		t.Fatalf("ApplyMove(%s-%s): unexpected pending promotion", from, to)
	}
	return next
}

// mustMoveWithSpell applies a move preceded by a spell's notation, as the
// replay driver would after a successful ApplySpell.
func mustMoveWithSpell(t *testing.T, s *GameState, from, to, spellNotation string) *GameState {
	t.Helper()
	next, awaiting, err := ApplyMove(s, mustSquare(t, from), mustSquare(t, to), spellNotation, 0, false)
	if err != nil {
		t.Fatalf("ApplyMove(%s-%s) with spell %q: %v", from, to, spellNotation, err)
	}
	if awaiting {
		t.Fatalf("ApplyMove(%s-%s): unexpected pending promotion", from, to)
	}
	return next
}

func mustCast(t *testing.T, s *GameState, kind SpellKind, sq string) (*GameState, string) {
	t.Helper()
	next, notation, err := ApplySpell(s, kind, mustSquare(t, sq))
	if err != nil {
		t.Fatalf("ApplySpell(%v, %s): %v", kind, sq, err)
	}
	return next, notation
}

func playMoves(t *testing.T, s *GameState, moves ...[2]string) *GameState {
	t.Helper()
	for _, m := range moves {
		s = mustMove(t, s, m[0], m[1])
	}
	return s
}

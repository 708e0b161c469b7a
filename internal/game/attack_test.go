package game

import (
	"testing"

	"spellchess/internal/coords"
	"spellchess/internal/testutil"
)

// TestFreezeBlocksAttackNotJustMovement: spec.md §4.2 requires a frozen
// piece to stop contributing attacks, not merely stop moving. A frozen
// bishop giving check must no longer give check.
func TestFreezeBlocksAttackNotJustMovement(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.Black, coords.King, mustSquare(t, "h4"))
	s.Board.place(newPieceID(2), coords.White, coords.Bishop, mustSquare(t, "e1"))
	s.Board.place(newPieceID(3), coords.White, coords.King, mustSquare(t, "a1"))
	s.Castling = coords.CastlingNone

	testutil.AssertTrue(t, isInCheck(s, coords.Black), "the bishop on the e1-h4 diagonal should check the king")

	frozen, notation := mustCast(t, s, SpellFreeze, "e1")
	testutil.AssertEqual(t, notation, "freeze@e1")
	testutil.AssertFalse(t, isInCheck(frozen, coords.Black), "a frozen bishop must stop contributing its check")
}

// TestFrozenKingIsExempt: a king standing in a frozen zone is never itself
// immobilized or excluded from giving check (spec.md §4.2 edge case).
func TestFrozenKingIsExempt(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.White, coords.King, mustSquare(t, "e1"))
	s.Board.place(newPieceID(2), coords.Black, coords.King, mustSquare(t, "e8"))
	s.Castling = coords.CastlingNone

	frozen, _ := mustCast(t, s, SpellFreeze, "e1")
	testutil.AssertFalse(t, isFrozen(frozen, mustSquare(t, "e1")), "a king must never be considered frozen")
	testutil.AssertTrue(t, len(ValidMovesFor(frozen, mustSquare(t, "e1"))) > 0, "a frozen king must still be able to move")
}

// TestPathClearTreatsJumpableAsTransparent exercises spec.md §4.1's core
// Jump effect for sliders: a jumpable blocker no longer blocks the path.
func TestPathClearTreatsJumpableAsTransparent(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.White, coords.Rook, mustSquare(t, "a1"))
	s.Board.place(newPieceID(2), coords.White, coords.Knight, mustSquare(t, "a4"))
	s.Board.place(newPieceID(3), coords.White, coords.King, mustSquare(t, "h1"))
	s.Board.place(newPieceID(4), coords.Black, coords.King, mustSquare(t, "h8"))
	s.Castling = coords.CastlingNone

	testutil.AssertFalse(t, pathClear(&s.Board, mustSquare(t, "a1"), mustSquare(t, "a8")), "the knight on a4 should block the rook's path")

	jumped, _ := mustCast(t, s, SpellJump, "a4")
	testutil.AssertTrue(t, pathClear(&jumped.Board, mustSquare(t, "a1"), mustSquare(t, "a8")), "a jumpable knight should no longer block the rook's path")
}

// TestGetAttackersExcludesFrozenPieces checks that a frozen attacker is
// dropped from the attacker list outright, not merely one of several.
func TestGetAttackersExcludesFrozenPieces(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.Black, coords.King, mustSquare(t, "e8"))
	s.Board.place(newPieceID(2), coords.White, coords.Rook, mustSquare(t, "e1"))
	s.Board.place(newPieceID(3), coords.White, coords.King, mustSquare(t, "a1"))
	s.Castling = coords.CastlingNone

	attackers := getAttackers(&s.Board, s.ActiveSpells, mustSquare(t, "e8"), coords.White)
	testutil.AssertEqual(t, len(attackers), 1, "the rook should check the king before any freeze is cast")

	frozen, _ := mustCast(t, s, SpellFreeze, "e1")
	attackers = getAttackers(&frozen.Board, frozen.ActiveSpells, mustSquare(t, "e8"), coords.White)
	testutil.AssertEqual(t, len(attackers), 0, "a frozen rook must not be reported as an attacker")
}

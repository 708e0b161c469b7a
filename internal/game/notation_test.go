package game

import (
	"testing"

	"spellchess/internal/coords"
	"spellchess/internal/testutil"
)

// TestDisambiguateByFile: two white rooks on the same rank, both able to
// reach the same destination file, must be distinguished by file letter.
func TestDisambiguateByFile(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.White, coords.King, mustSquare(t, "e1"))
	s.Board.place(newPieceID(2), coords.White, coords.Rook, mustSquare(t, "a4"))
	s.Board.place(newPieceID(3), coords.White, coords.Rook, mustSquare(t, "h4"))
	s.Board.place(newPieceID(4), coords.Black, coords.King, mustSquare(t, "e8"))
	s.Castling = coords.CastlingNone

	cand, ok := findCandidate(s, mustSquare(t, "a4"), mustSquare(t, "d4"))
	testutil.AssertTrue(t, ok, "rook a4 should reach d4")
	notation := humanNotation(s, cand, 0, false)
	testutil.AssertEqual(t, notation, "Rad4")
}

// TestDisambiguateByRank: two white rooks sharing a file must be
// distinguished by rank when the destination file alone is ambiguous.
func TestDisambiguateByRank(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.White, coords.King, mustSquare(t, "e1"))
	s.Board.place(newPieceID(2), coords.White, coords.Rook, mustSquare(t, "d1"))
	s.Board.place(newPieceID(3), coords.White, coords.Rook, mustSquare(t, "d8"))
	s.Board.place(newPieceID(4), coords.Black, coords.King, mustSquare(t, "h8"))
	s.Castling = coords.CastlingNone

	cand, ok := findCandidate(s, mustSquare(t, "d1"), mustSquare(t, "d4"))
	testutil.AssertTrue(t, ok, "rook d1 should reach d4")
	notation := humanNotation(s, cand, 0, false)
	testutil.AssertEqual(t, notation, "R1d4")
}

// TestPawnCaptureNotation checks the file-prefixed "exd5"-style capture form.
func TestPawnCaptureNotation(t *testing.T) {
	s := InitialState()
	s = playMoves(t, s, [2]string{"e2", "e4"}, [2]string{"d7", "d5"})
	cand, ok := findCandidate(s, mustSquare(t, "e4"), mustSquare(t, "d5"))
	testutil.AssertTrue(t, ok, "the e-pawn should be able to capture on d5")
	notation := humanNotation(s, cand, 0, false)
	testutil.AssertEqual(t, notation, "exd5")
}

// TestPromotionNotationSuffix checks the "=Q"-style promotion suffix.
func TestPromotionNotationSuffix(t *testing.T) {
	s := InitialState()
	s.Board = newBoard()
	s.Board.place(newPieceID(1), coords.White, coords.King, mustSquare(t, "a1"))
	s.Board.place(newPieceID(2), coords.White, coords.Pawn, mustSquare(t, "b7"))
	s.Board.place(newPieceID(3), coords.Black, coords.King, mustSquare(t, "h8"))
	s.Castling = coords.CastlingNone

	cand, ok := findCandidate(s, mustSquare(t, "b7"), mustSquare(t, "b8"))
	testutil.AssertTrue(t, ok, "the pawn should reach the last rank")
	notation := humanNotation(s, cand, coords.Queen, true)
	testutil.AssertEqual(t, notation, "b8=Q")
}

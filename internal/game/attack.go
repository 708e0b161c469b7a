package game

import "spellchess/internal/coords"

// pathClear reports whether every square strictly between from and to is
// empty, treating jumpable pieces as transparent (spec.md §4.2's Jump
// effect: "may be passed through by sliding pieces and by a pawn's
// double-step, as if the square were empty"). from and to must be
// colinear; callers only call this for slider attack geometry (pawn
// double pushes check their middle square directly).
func pathClear(b *Board, from, to coords.Square) bool {
	for _, sq := range coords.Line(from, to) {
		pc := b.pieceAt[sq]
		if pc == nil {
			continue
		}
		if pc.IsJumpable {
			continue
		}
		return false
	}
	return true
}

// isFrozen reports whether the piece at sq is inhibited by an active Freeze
// effect. Kings are exempt (spec.md §4.2 edge case: "a king... is never
// itself frozen, even if it occupies a frozen zone").
func isFrozen(s *GameState, sq coords.Square) bool {
	return isFrozenPiece(s.ActiveSpells, s.Board.pieceAt[sq])
}

// isFrozenPiece is isFrozen's board-agnostic core, usable against a cloned
// scratch board (king-safety simulation) where only the piece and the
// active-spell list — unaffected by the simulated move — are at hand.
func isFrozenPiece(spells []ActiveSpell, pc *Piece) bool {
	if pc == nil || pc.Type == coords.King {
		return false
	}
	for _, a := range spells {
		if a.Kind != SpellFreeze {
			continue
		}
		for _, id := range a.OccupantIDs {
			if id == pc.ID {
				return true
			}
		}
	}
	return false
}

// isAttacked reports whether sq is attacked by any non-frozen piece of the
// given color (spec.md §4.2: "a piece contributes attacks iff it is not
// currently frozen"; kings are exempt from freeze, so a frozen king still
// gives check — isFrozenPiece already carries that exemption).
func isAttacked(b *Board, spells []ActiveSpell, sq coords.Square, by coords.Color) bool {
	for from, pc := range b.pieceAt {
		if pc == nil || pc.Color != by || isFrozenPiece(spells, pc) {
			continue
		}
		if attacksSquare(b, coords.Square(from), pc, sq) {
			return true
		}
	}
	return false
}

// attacksSquare reports whether pc, sitting at its current square, attacks
// target. This mirrors the move-generation geometry but ignores whose turn
// it is and ignores promotion, since attack scans care only about square
// coverage, not move legality.
func attacksSquare(b *Board, from coords.Square, pc *Piece, target coords.Square) bool {
	switch pc.Type {
	case coords.Pawn:
		return pawnAttacks(from, pc.Color, target)
	case coords.Knight:
		return knightAttacks(from, target)
	case coords.King:
		return kingAttacks(from, target)
	case coords.Bishop:
		return diagonalAttacks(b, from, target)
	case coords.Rook:
		return orthogonalAttacks(b, from, target)
	case coords.Queen:
		return diagonalAttacks(b, from, target) || orthogonalAttacks(b, from, target)
	}
	return false
}

func pawnAttacks(from coords.Square, color coords.Color, target coords.Square) bool {
	dr := 1
	if color == coords.Black {
		dr = -1
	}
	fr, ff := from.Rank(), from.File()
	tr, tf := target.Rank(), target.File()
	return tr == fr+dr && (tf == ff+1 || tf == ff-1)
}

func knightAttacks(from, target coords.Square) bool {
	dr := absInt(from.Rank() - target.Rank())
	df := absInt(from.File() - target.File())
	return (dr == 1 && df == 2) || (dr == 2 && df == 1)
}

func kingAttacks(from, target coords.Square) bool {
	if from == target {
		return false
	}
	dr := absInt(from.Rank() - target.Rank())
	df := absInt(from.File() - target.File())
	return dr <= 1 && df <= 1
}

func diagonalAttacks(b *Board, from, target coords.Square) bool {
	if from == target {
		return false
	}
	dr := absInt(from.Rank() - target.Rank())
	df := absInt(from.File() - target.File())
	if dr != df || dr == 0 {
		return false
	}
	return pathClear(b, from, target)
}

func orthogonalAttacks(b *Board, from, target coords.Square) bool {
	if from == target {
		return false
	}
	sameRank := from.Rank() == target.Rank()
	sameFile := from.File() == target.File()
	if !sameRank && !sameFile {
		return false
	}
	return pathClear(b, from, target)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isInCheck reports whether color's king is currently attacked.
func isInCheck(s *GameState, color coords.Color) bool {
	kingSq, ok := s.Board.findKing(color)
	if !ok {
		return false
	}
	return isAttacked(&s.Board, s.ActiveSpells, kingSq, color.Opposite())
}

// getAttackers returns the squares of every non-frozen opposing piece
// attacking sq.
func getAttackers(b *Board, spells []ActiveSpell, sq coords.Square, by coords.Color) []coords.Square {
	var out []coords.Square
	for from, pc := range b.pieceAt {
		if pc == nil || pc.Color != by || isFrozenPiece(spells, pc) {
			continue
		}
		if attacksSquare(b, coords.Square(from), pc, sq) {
			out = append(out, coords.Square(from))
		}
	}
	return out
}

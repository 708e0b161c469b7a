package game

import "spellchess/internal/coords"

// CanCast reports whether kind is available to the side to move, per the
// charges-and-cooldown rule in spec.md §3.
func CanCast(s *GameState, kind SpellKind) bool {
	return s.spellState(s.CurrentPlayer).available(kind, s.GameTurnNumber)
}

// ApplySpell implements spec.md §4.4's apply_spell: it validates
// availability and the spell's own targeting rule, then returns a new
// state with the charge spent, the cooldown marker set, and the effect
// recorded in ActiveSpells, plus the notation the caller should hold as
// spell_notation for the forthcoming apply_move/apply_promotion call.
func ApplySpell(s *GameState, kind SpellKind, sq coords.Square) (*GameState, string, error) {
	if s.IsGameOver {
		return nil, "", newErr(KindGameOver, "game is already over")
	}
	if !CanCast(s, kind) {
		return nil, "", newErr(KindSpellUnavailable, "%s is unavailable: no charges or still on cooldown", kind)
	}
	if kind == SpellJump && s.Board.pieceAt[sq] == nil {
		return nil, "", newErr(KindSpellTargetInvalid, "jump cast on empty square %s", sq)
	}

	out := s.clone()
	switch kind {
	case SpellJump:
		pc := out.Board.pieceAt[sq]
		pc.IsJumpable = true
		out.setSpellUsed(kind, sq)
		out.ActiveSpells = append(out.ActiveSpells, ActiveSpell{
			Kind:          SpellJump,
			ExpiresAtPly:  out.PlyCount + 2,
			TargetPieceID: pc.ID,
		})
	case SpellFreeze:
		occupants := occupantsInZone(&out.Board, sq)
		out.setSpellUsed(kind, sq)
		out.ActiveSpells = append(out.ActiveSpells, ActiveSpell{
			Kind:         SpellFreeze,
			ExpiresAtPly: out.PlyCount + 2,
			Center:       sq,
			OccupantIDs:  occupants,
		})
	}
	return out, spellNotation(kind, sq), nil
}

func (s *GameState) setSpellUsed(kind SpellKind, _ coords.Square) {
	st := &s.Spells[s.CurrentPlayer.Index()]
	if kind == SpellFreeze {
		st.FreezeLeft--
		st.FreezeLastUsedTurn = s.GameTurnNumber
		return
	}
	st.JumpLeft--
	st.JumpLastUsedTurn = s.GameTurnNumber
}

func spellNotation(kind SpellKind, sq coords.Square) string {
	name := "jump"
	if kind == SpellFreeze {
		name = "freeze"
	}
	return name + "@" + sq.Algebraic()
}

// occupantsInZone returns the ids of every piece standing in the up-to-3x3
// zone centered on sq, clipped to the board (spec.md §4.4).
func occupantsInZone(b *Board, center coords.Square) []PieceID {
	cr, cf := center.Rank(), center.File()
	var out []PieceID
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			sq, ok := coords.SquareFromCoords(cr+dr, cf+df)
			if !ok {
				continue
			}
			if pc := b.pieceAt[sq]; pc != nil {
				out = append(out, pc.ID)
			}
		}
	}
	return out
}

// updateActiveSpells drops every ActiveSpell whose expiry has passed and
// clears IsJumpable on pieces whose jump effect just expired (spec.md §4.4).
func updateActiveSpells(s *GameState) {
	var kept []ActiveSpell
	for _, a := range s.ActiveSpells {
		if a.expired(s.PlyCount) {
			if a.Kind == SpellJump {
				if pc := s.Board.pieceByID(a.TargetPieceID); pc != nil {
					pc.IsJumpable = false
				}
			}
			continue
		}
		kept = append(kept, a)
	}
	s.ActiveSpells = kept
}

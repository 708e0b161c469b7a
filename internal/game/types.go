package game

import "spellchess/internal/coords"

// SpellKind distinguishes Spell Chess's two castable spells.
type SpellKind uint8

const (
	SpellJump SpellKind = iota
	SpellFreeze
)

func (k SpellKind) String() string {
	if k == SpellFreeze {
		return "freeze"
	}
	return "jump"
}

// compactCode is the single-letter compact-token prefix for this spell.
func (k SpellKind) compactCode() byte {
	if k == SpellFreeze {
		return 'f'
	}
	return 'j'
}

// SpellState tracks one player's remaining charges and cooldown markers for
// both spells, per spec.md §3.
type SpellState struct {
	JumpLeft           int
	FreezeLeft         int
	JumpLastUsedTurn   int
	FreezeLastUsedTurn int
}

func newSpellState() SpellState {
	return SpellState{JumpLeft: 2, FreezeLeft: 5}
}

func (s SpellState) charges(kind SpellKind) int {
	if kind == SpellFreeze {
		return s.FreezeLeft
	}
	return s.JumpLeft
}

func (s SpellState) lastUsedTurn(kind SpellKind) int {
	if kind == SpellFreeze {
		return s.FreezeLastUsedTurn
	}
	return s.JumpLastUsedTurn
}

// available reports whether kind can be cast on currentTurn: charges remain
// and either it has never been used, or at least 3 full turns have elapsed
// since it was last used (spec.md §3).
func (s SpellState) available(kind SpellKind, currentTurn int) bool {
	if s.charges(kind) <= 0 {
		return false
	}
	last := s.lastUsedTurn(kind)
	return last == 0 || currentTurn >= last+3
}

// ActiveSpell is a live Jump or Freeze effect, expiring after the caster's
// ply and the opponent's following ply (spec.md §3).
type ActiveSpell struct {
	Kind         SpellKind
	ExpiresAtPly int

	// Jump
	TargetPieceID PieceID

	// Freeze
	Center      coords.Square
	OccupantIDs []PieceID
}

func (a ActiveSpell) expired(plyCount int) bool { return plyCount >= a.ExpiresAtPly }

// AwaitingPromotion records a pawn that reached its last rank without a
// promotion choice; the caller must follow up with ApplyPromotion.
type AwaitingPromotion struct {
	Square               coords.Square
	Color                coords.Color
	From                 coords.Square
	OriginalMoveNotation string
	MovingPieceID        PieceID
}

// MoveLogEntry records one finalized half-move.
type MoveLogEntry struct {
	Turn             int
	Player           coords.Color
	Notation         string
	Actions          []string
	PlySnapshotIndex int
}

package game

import (
	"fmt"

	"github.com/google/uuid"
	"spellchess/internal/coords"
)

// pieceIDNamespace anchors the deterministic UUID derivation below. It is an
// arbitrary fixed value; any other constant namespace works identically —
// what matters is that it never changes, so the same sequence number always
// yields the same PieceID across independent replays of the same log.
var pieceIDNamespace = uuid.Must(uuid.Parse("d28f5a0e-2b0d-4f8a-9b3a-2f0f2c9b9a31"))

// PieceID is a piece's stable identity, persisting across moves so that
// spells can target "this specific piece" rather than "whatever occupies
// this square". It is a uuid.UUID derived deterministically from a
// per-game monotonic sequence number (via SHA-1, see uuid.NewSHA1) rather
// than a random UUID: spec.md's determinism invariant requires two replays
// of the same action log to produce bit-identical states, including piece
// ids "regenerated deterministically" (spec.md §3 invariants).
type PieceID uuid.UUID

func (id PieceID) String() string { return uuid.UUID(id).String() }

// newPieceID derives a PieceID from the engine-local sequence counter.
func newPieceID(seq int) PieceID {
	return PieceID(uuid.NewSHA1(pieceIDNamespace, []byte(fmt.Sprintf("piece/%d", seq))))
}

// Piece is a single chess piece on the board.
type Piece struct {
	ID         PieceID
	Color      coords.Color
	Type       coords.PieceType
	Square     coords.Square
	HasMoved   bool
	IsJumpable bool
}

func clonePiece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

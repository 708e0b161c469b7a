package game

import (
	"strings"

	"spellchess/internal/coords"
)

// humanNotation builds the SAN-like notation for cand from the pre-move
// position, before any mutation happens (spec.md §4.5 step 2). The
// check/mate suffix and any spell prefix are appended later by finalize.
func humanNotation(s *GameState, cand moveCandidate, promo coords.PieceType, hasPromo bool) string {
	if cand.IsCastle {
		if cand.CastleSide == coords.CastleKingside {
			return "O-O"
		}
		return "O-O-O"
	}

	mover := s.Board.pieceAt[cand.From]
	captured := s.Board.pieceAt[cand.To] != nil || cand.IsEnPassant

	var b strings.Builder
	if mover.Type == coords.Pawn {
		if captured {
			b.WriteByte(byte('a' + cand.From.File()))
			b.WriteByte('x')
		}
		b.WriteString(cand.To.Algebraic())
		if hasPromo {
			b.WriteByte('=')
			b.WriteString(promo.String())
		}
		if cand.IsEnPassant {
			b.WriteString(" e.p.")
		}
		return b.String()
	}

	b.WriteString(mover.Type.String())
	b.WriteString(disambiguate(s, mover, cand.From, cand.To))
	if captured {
		b.WriteByte('x')
	}
	b.WriteString(cand.To.Algebraic())
	return b.String()
}

// disambiguate implements spec.md §4.3's SAN-style tie-break: by file if
// files differ among other same-type pieces that can also reach to; else
// by rank; else by both.
func disambiguate(s *GameState, mover *Piece, from, to coords.Square) string {
	var others []coords.Square
	for sq := coords.Square(0); sq < 64; sq++ {
		if sq == from {
			continue
		}
		pc := s.Board.pieceAt[sq]
		if pc == nil || pc.Color != mover.Color || pc.Type != mover.Type {
			continue
		}
		if _, ok := findCandidate(s, sq, to); ok && moveIsKingSafe(s, moveCandidate{From: sq, To: to}) {
			others = append(others, sq)
		}
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range others {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(byte('a' + from.File()))
	case !sameRank:
		return string(byte('1' + from.Rank()))
	default:
		return from.Algebraic()
	}
}

package game

import (
	"strconv"
	"strings"

	"spellchess/internal/coords"
)

// positionSignature builds the canonical string used for threefold
// repetition detection (spec.md §4.5): board layout (with jumpable markers),
// side to move, castling rights, en passant target, and all four cooldown
// markers. Piece ids and remaining charges are deliberately omitted so that
// positions with identical future playability fold together modulo
// cooldowns.
func positionSignature(s *GameState) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank != 7 {
			b.WriteByte('/')
		}
		for file := 0; file < 8; file++ {
			sq, _ := coords.SquareFromCoords(rank, file)
			pc := s.Board.pieceAt[sq]
			if pc == nil {
				b.WriteByte(' ')
				continue
			}
			ch := pc.Type.String()
			if pc.Color == coords.Black {
				ch = strings.ToLower(ch)
			}
			b.WriteString(ch)
			if pc.IsJumpable {
				b.WriteByte('*')
			}
		}
	}
	b.WriteByte('|')
	b.WriteString(s.CurrentPlayer.String())
	b.WriteByte('|')
	b.WriteString(s.Castling.String())
	b.WriteByte('|')
	b.WriteString(s.EnPassant.String())
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(s.Spells[coords.White.Index()].JumpLastUsedTurn))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Spells[coords.White.Index()].FreezeLastUsedTurn))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Spells[coords.Black.Index()].JumpLastUsedTurn))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(s.Spells[coords.Black.Index()].FreezeLastUsedTurn))
	return b.String()
}

// recordRepetition increments the counter for s's current position and
// reports whether it has now been reached a third time (spec.md §4.5 step
// 8).
func recordRepetition(s *GameState) bool {
	sig := positionSignature(s)
	s.RepetitionCounter[sig]++
	return s.RepetitionCounter[sig] >= 3
}

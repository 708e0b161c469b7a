package game

import (
	"strings"

	"spellchess/internal/coords"
)

// ApplyMove implements spec.md §4.5's apply_move. spellNotation, if
// non-empty, is the notation returned by a preceding ApplySpell call in the
// same half-move; promotion is consulted only if the move lands a pawn on
// its last rank.
func ApplyMove(s *GameState, from, to coords.Square, spellNotation string, promotion coords.PieceType, hasPromotion bool) (*GameState, bool, error) {
	if s.IsGameOver {
		return nil, false, newErr(KindGameOver, "game is already over")
	}
	if s.AwaitingPromotion != nil {
		return nil, false, newErr(KindPromotionRequired, "a pending promotion must be resolved first")
	}
	cand, ok := findCandidate(s, from, to)
	if !ok || !moveIsKingSafe(s, cand) {
		return nil, false, newErr(KindIllegalMove, "%s-%s is not a legal move", from, to)
	}

	notation := humanNotation(s, cand, promotion, hasPromotion)
	out := s.clone()
	movedID := out.Board.pieceAt[cand.From].ID
	executeCandidate(&out.Board, cand)

	updateCastlingRights(out, cand, movedID)

	mover := out.Board.pieceByID(movedID)
	lastRank := 7
	if mover.Color == coords.Black {
		lastRank = 0
	}
	if mover.Type == coords.Pawn && mover.Square.Rank() == lastRank {
		if !hasPromotion {
			out.AwaitingPromotion = &AwaitingPromotion{
				Square:               mover.Square,
				Color:                mover.Color,
				From:                 from,
				OriginalMoveNotation: notation,
				MovingPieceID:        movedID,
			}
			return out, true, nil
		}
		out.Board.setType(mover.Square, promotion)
	}

	finalize(out, notation, movedID, from, to, cand, spellNotation)
	return out, false, nil
}

// ApplyPromotion implements spec.md §4.5's apply_promotion: it completes a
// pending promotion and finalizes the half-move.
func ApplyPromotion(s *GameState, promotion coords.PieceType, spellNotation string) (*GameState, error) {
	if s.IsGameOver {
		return nil, newErr(KindGameOver, "game is already over")
	}
	if s.AwaitingPromotion == nil {
		return nil, newErr(KindPromotionUnexpected, "no promotion is pending")
	}
	out := s.clone()
	pending := out.AwaitingPromotion
	out.AwaitingPromotion = nil
	out.Board.setType(pending.Square, promotion)
	notation := pending.OriginalMoveNotation + "=" + promotion.String()
	cand := moveCandidate{From: pending.From, To: pending.Square}
	finalize(out, notation, pending.MovingPieceID, pending.From, pending.Square, cand, spellNotation)
	return out, nil
}

// ApplyResign implements spec.md §4.5's apply_resign.
func ApplyResign(s *GameState) (*GameState, error) {
	if s.IsGameOver {
		return nil, newErr(KindGameOver, "game is already over")
	}
	out := s.clone()
	winner := out.CurrentPlayer.Opposite()
	out.IsGameOver = true
	out.GameEndMessage = out.CurrentPlayer.String() + " resigned. " + winner.String() + " wins."
	out.MoveLog = append(out.MoveLog, MoveLogEntry{
		Turn:             out.GameTurnNumber,
		Player:           out.CurrentPlayer,
		Notation:         "R",
		Actions:          []string{"R"},
		PlySnapshotIndex: len(out.History),
	})
	out.History = append(out.History, out.snapshot())
	return out, nil
}

func executeCandidate(b *Board, cand moveCandidate) {
	if cand.IsEnPassant {
		b.remove(cand.CapturedPawnAt)
	} else {
		b.remove(cand.To)
	}
	b.relocate(cand.From, cand.To)
	if cand.IsCastle {
		rank := cand.From.Rank()
		rookFrom, rookTo := 7, 5
		if cand.CastleSide == coords.CastleQueenside {
			rookFrom, rookTo = 0, 3
		}
		fromSq, _ := coords.SquareFromCoords(rank, rookFrom)
		toSq, _ := coords.SquareFromCoords(rank, rookTo)
		b.relocate(fromSq, toSq)
	}
}

// updateCastlingRights implements spec.md §4.5 step 4.
func updateCastlingRights(s *GameState, cand moveCandidate, movedID PieceID) {
	mover := s.Board.pieceByID(movedID)
	if mover == nil {
		return
	}
	if mover.Type == coords.King {
		s.Castling = s.Castling.WithoutColor(mover.Color)
		return
	}
	if mover.Type == coords.Rook {
		clearRookCastlingRight(s, mover.Color, cand.From)
	}
}

func clearRookCastlingRight(s *GameState, color coords.Color, from coords.Square) {
	homeRank := 0
	if color == coords.Black {
		homeRank = 7
	}
	if from.Rank() != homeRank {
		return
	}
	switch from.File() {
	case 0:
		s.Castling = s.Castling.Without(coords.CastlingRight(color, coords.CastleQueenside))
	case 7:
		s.Castling = s.Castling.Without(coords.CastlingRight(color, coords.CastleKingside))
	}
}

// finalize implements spec.md §4.5's _finalize.
func finalize(s *GameState, notation string, movedID PieceID, from, to coords.Square, cand moveCandidate, spellNotation string) {
	compact := compactActions(spellNotation, from, to, notation, s.CurrentPlayer)

	s.PlyCount++
	updateActiveSpells(s)

	opponent := s.CurrentPlayer.Opposite()
	suffix := ""
	switch {
	case !hasKing(s, opponent):
		s.IsGameOver = true
		s.GameEndMessage = s.CurrentPlayer.String() + " wins by checkmate!"
		suffix = "#"
	// Checkmate counts standard moves only: HasLegalMoves' spell escape
	// does not keep the game going here.
	case isInCheck(s, opponent) && !anyStandardLegalMove(s, opponent):
		s.IsGameOver = true
		s.GameEndMessage = s.CurrentPlayer.String() + " wins by checkmate!"
		suffix = "#"
	case !isInCheck(s, opponent) && !HasLegalMoves(withCurrentPlayer(s, opponent), opponent):
		s.IsGameOver = true
		s.GameEndMessage = "Draw by stalemate."
	case isInCheck(s, opponent):
		suffix = "+"
	}

	refreshEnPassant(s, cand)

	fullNotation := notation + suffix
	if spellNotation != "" {
		fullNotation = spellNotation + " " + fullNotation
	}
	s.MoveLog = append(s.MoveLog, MoveLogEntry{
		Turn:             s.GameTurnNumber,
		Player:           s.CurrentPlayer,
		Notation:         fullNotation,
		Actions:          compact,
		PlySnapshotIndex: len(s.History),
	})

	if !s.IsGameOver {
		if s.CurrentPlayer == coords.Black {
			s.GameTurnNumber++
		}
		s.CurrentPlayer = opponent
	}

	s.History = append(s.History, s.snapshot())

	if recordRepetition(s) {
		s.IsGameOver = true
		s.GameEndMessage = "Draw by threefold repetition."
	}
}

func hasKing(s *GameState, color coords.Color) bool {
	_, ok := s.Board.findKing(color)
	return ok
}

// withCurrentPlayer returns a shallow view of s with CurrentPlayer forced to
// color, used so HasLegalMoves' internal scans see the right side to move
// without mutating s itself.
func withCurrentPlayer(s *GameState, color coords.Color) *GameState {
	if s.CurrentPlayer == color {
		return s
	}
	shallow := *s
	shallow.CurrentPlayer = color
	return &shallow
}

func refreshEnPassant(s *GameState, cand moveCandidate) {
	if cand.IsDoublePush {
		s.EnPassant = coords.NewEnPassantTarget(cand.PassedOverSq)
		return
	}
	s.EnPassant = coords.NoEnPassantTarget()
}

// compactActions builds the compact-log tokens for one half-move (spec.md
// §6's grammar). The promo letter is canonicalized to the mover's case —
// lowercase for Black — matching the lowercase convention already used for
// Black pieces in positionSignature.
func compactActions(spellNotation string, from, to coords.Square, notation string, mover coords.Color) []string {
	var out []string
	if spellNotation != "" {
		code := byte('j')
		if spellNotation[0] == 'f' {
			code = 'f'
		}
		sq := spellNotation[strings.IndexByte(spellNotation, '@')+1:]
		out = append(out, string(code)+"@"+sq)
	}
	move := from.Algebraic() + "-" + to.Algebraic()
	if idx := strings.IndexByte(notation, '='); idx >= 0 {
		promo := notation[idx:]
		if mover == coords.Black {
			promo = strings.ToLower(promo)
		}
		move += promo
	}
	out = append(out, move)
	return out
}

package game

import "spellchess/internal/coords"

// moveCandidate is a pseudo-legal (geometry-checked, king-safety not yet
// checked) move, carrying enough metadata for the turn executor to apply
// every special case (castling, en passant, double push) uniformly.
type moveCandidate struct {
	From, To coords.Square

	IsCastle   bool
	CastleSide coords.CastlingSide

	IsEnPassant    bool
	CapturedPawnAt coords.Square

	IsDoublePush  bool
	PassedOverSq  coords.Square
}

// pseudoLegalMoves returns every geometrically legal destination for the
// piece at from, without yet checking whether the mover's own king would
// be left in check (spec.md §4.3 steps 1-4).
func pseudoLegalMoves(s *GameState, from coords.Square) []moveCandidate {
	pc := s.Board.pieceAt[from]
	if pc == nil || pc.Color != s.CurrentPlayer || isFrozen(s, from) {
		return nil
	}
	switch pc.Type {
	case coords.Pawn:
		return pawnCandidates(s, from, pc)
	case coords.Knight:
		return knightCandidates(s, from, pc)
	case coords.Bishop:
		return sliderCandidates(s, from, pc, diagonalDirs)
	case coords.Rook:
		return sliderCandidates(s, from, pc, orthogonalDirs)
	case coords.Queen:
		return sliderCandidates(s, from, pc, allDirs)
	case coords.King:
		return kingCandidates(s, from, pc)
	}
	return nil
}

func destOK(b *Board, to coords.Square, mover coords.Color) bool {
	occ := b.pieceAt[to]
	return occ == nil || occ.Color != mover
}

func pawnCandidates(s *GameState, from coords.Square, pc *Piece) []moveCandidate {
	b := &s.Board
	var out []moveCandidate
	dr := 1
	homeRank := 1
	lastRank := 7
	if pc.Color == coords.Black {
		dr = -1
		homeRank = 6
		lastRank = 0
	}
	fr, ff := from.Rank(), from.File()

	// single push
	oneSq, oneOK := coords.SquareFromCoords(fr+dr, ff)
	if oneOK && b.pieceAt[oneSq] == nil {
		out = append(out, moveCandidate{From: from, To: oneSq})
	}

	// double push from home rank: the middle square only needs to be
	// passable (empty or jumpable), independent of whether it's actually
	// empty enough for a single push to land on.
	if oneOK && fr == homeRank {
		middlePc := b.pieceAt[oneSq]
		middlePassable := middlePc == nil || middlePc.IsJumpable
		if twoSq, ok := coords.SquareFromCoords(fr+2*dr, ff); ok && middlePassable && b.pieceAt[twoSq] == nil {
			out = append(out, moveCandidate{From: from, To: twoSq, IsDoublePush: true, PassedOverSq: oneSq})
		}
	}
	_ = lastRank // last-rank promotion handled by the turn executor, not here

	// diagonal captures
	for _, df := range [2]int{-1, 1} {
		sq, ok := coords.SquareFromCoords(fr+dr, ff+df)
		if !ok {
			continue
		}
		if occ := b.pieceAt[sq]; occ != nil && occ.Color != pc.Color {
			out = append(out, moveCandidate{From: from, To: sq})
			continue
		}
		if ep, valid := s.EnPassant.Square(); valid && ep == sq {
			capSq, ok := coords.SquareFromCoords(fr, ff+df)
			if ok {
				out = append(out, moveCandidate{From: from, To: sq, IsEnPassant: true, CapturedPawnAt: capSq})
			}
		}
	}
	return out
}

func knightCandidates(s *GameState, from coords.Square, pc *Piece) []moveCandidate {
	b := &s.Board
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	fr, ff := from.Rank(), from.File()
	var out []moveCandidate
	for _, d := range deltas {
		sq, ok := coords.SquareFromCoords(fr+d[0], ff+d[1])
		if !ok || !destOK(b, sq, pc.Color) {
			continue
		}
		out = append(out, moveCandidate{From: from, To: sq})
	}
	return out
}

var diagonalDirs = []coords.Direction{coords.DirNE, coords.DirSE, coords.DirSW, coords.DirNW}
var orthogonalDirs = []coords.Direction{coords.DirN, coords.DirE, coords.DirS, coords.DirW}
var allDirs = []coords.Direction{coords.DirN, coords.DirNE, coords.DirE, coords.DirSE, coords.DirS, coords.DirSW, coords.DirW, coords.DirNW}

var dirDelta = map[coords.Direction][2]int{
	coords.DirN:  {1, 0},
	coords.DirNE: {1, 1},
	coords.DirE:  {0, 1},
	coords.DirSE: {-1, 1},
	coords.DirS:  {-1, 0},
	coords.DirSW: {-1, -1},
	coords.DirW:  {0, -1},
	coords.DirNW: {1, -1},
}

func sliderCandidates(s *GameState, from coords.Square, pc *Piece, dirs []coords.Direction) []moveCandidate {
	b := &s.Board
	fr, ff := from.Rank(), from.File()
	var out []moveCandidate
	for _, dir := range dirs {
		delta := dirDelta[dir]
		r, f := fr+delta[0], ff+delta[1]
		for {
			sq, ok := coords.SquareFromCoords(r, f)
			if !ok {
				break
			}
			occ := b.pieceAt[sq]
			if occ == nil {
				out = append(out, moveCandidate{From: from, To: sq})
				r += delta[0]
				f += delta[1]
				continue
			}
			if occ.IsJumpable {
				// transparent: continue scanning past it, but it can still
				// be landed on/captured if it's an opponent piece, and the
				// slider may not continue further than landing on it if
				// capture — jumpable only affects path-clearance, not
				// whether the occupied square itself is a legal landing.
				if occ.Color != pc.Color {
					out = append(out, moveCandidate{From: from, To: sq})
				}
				r += delta[0]
				f += delta[1]
				continue
			}
			if occ.Color != pc.Color {
				out = append(out, moveCandidate{From: from, To: sq})
			}
			break
		}
	}
	return out
}

func kingCandidates(s *GameState, from coords.Square, pc *Piece) []moveCandidate {
	b := &s.Board
	fr, ff := from.Rank(), from.File()
	var out []moveCandidate
	for _, dir := range allDirs {
		delta := dirDelta[dir]
		sq, ok := coords.SquareFromCoords(fr+delta[0], ff+delta[1])
		if !ok || !destOK(b, sq, pc.Color) {
			continue
		}
		out = append(out, moveCandidate{From: from, To: sq})
	}
	out = append(out, castlingCandidates(s, from, pc)...)
	return out
}

// castlingCandidates implements spec.md §4.3 step 4.
func castlingCandidates(s *GameState, from coords.Square, pc *Piece) []moveCandidate {
	if pc.HasMoved {
		return nil
	}
	b := &s.Board
	rank := from.Rank()
	var out []moveCandidate
	for _, side := range [2]coords.CastlingSide{coords.CastleKingside, coords.CastleQueenside} {
		if !s.Castling.HasSide(pc.Color, side) {
			continue
		}
		rookFile := 7
		kingToFile := 6
		transitFiles := []int{5, 6}
		if side == coords.CastleQueenside {
			rookFile = 0
			kingToFile = 2
			transitFiles = []int{2, 3}
		}
		rookSq, _ := coords.SquareFromCoords(rank, rookFile)
		rook := b.pieceAt[rookSq]
		if rook == nil || rook.Type != coords.Rook || rook.Color != pc.Color || rook.HasMoved {
			continue
		}
		bFileEmpty := true
		if side == coords.CastleQueenside {
			bSq, _ := coords.SquareFromCoords(rank, 1)
			bFileEmpty = b.pieceAt[bSq] == nil
		}
		if !bFileEmpty {
			continue
		}
		clear := true
		for f := min(int(from.File()), rookFile) + 1; f < max(int(from.File()), rookFile); f++ {
			sq, _ := coords.SquareFromCoords(rank, f)
			if b.pieceAt[sq] != nil {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if isInCheck(s, pc.Color) {
			continue
		}
		attacked := false
		for _, f := range transitFiles {
			sq, _ := coords.SquareFromCoords(rank, f)
			if isAttacked(b, s.ActiveSpells, sq, pc.Color.Opposite()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		toSq, _ := coords.SquareFromCoords(rank, kingToFile)
		out = append(out, moveCandidate{From: from, To: toSq, IsCastle: true, CastleSide: side})
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// findCandidate returns the pseudo-legal candidate from->to, if any.
func findCandidate(s *GameState, from, to coords.Square) (moveCandidate, bool) {
	for _, c := range pseudoLegalMoves(s, from) {
		if c.To == to {
			return c, true
		}
	}
	return moveCandidate{}, false
}

// simulateCandidate applies cand to a cloned board, returning the resulting
// board without touching s. Used for king-safety checks (spec.md §4.3 step
// 5); ApplyMove mutates its own clone through executeCandidate.
func simulateCandidate(b Board, cand moveCandidate) Board {
	out := b.clone()
	if cand.IsEnPassant {
		out.remove(cand.CapturedPawnAt)
	} else {
		out.remove(cand.To)
	}
	out.relocate(cand.From, cand.To)
	if cand.IsCastle {
		rank := cand.From.Rank()
		rookFrom := 7
		rookTo := 5
		if cand.CastleSide == coords.CastleQueenside {
			rookFrom = 0
			rookTo = 3
		}
		fromSq, _ := coords.SquareFromCoords(rank, rookFrom)
		toSq, _ := coords.SquareFromCoords(rank, rookTo)
		out.relocate(fromSq, toSq)
	}
	return out
}

// IsValidMove reports whether moving from to to is legal for the player to
// move in s (spec.md §4.3).
func IsValidMove(s *GameState, from, to coords.Square) bool {
	if from == to || s.IsGameOver || s.AwaitingPromotion != nil {
		return false
	}
	cand, ok := findCandidate(s, from, to)
	if !ok {
		return false
	}
	return moveIsKingSafe(s, cand)
}

// moveIsKingSafe implements spec.md §4.3 step 5, including the king-capture
// exception.
func moveIsKingSafe(s *GameState, cand moveCandidate) bool {
	mover := s.Board.pieceAt[cand.From]
	if mover == nil {
		return false
	}
	target := s.Board.pieceAt[cand.To]
	if target != nil && target.Type == coords.King {
		return true
	}
	scratch := simulateCandidate(s.Board, cand)
	kingSq, ok := scratch.findKing(mover.Color)
	if !ok {
		return true
	}
	return !isAttacked(&scratch, s.ActiveSpells, kingSq, mover.Color.Opposite())
}

// ValidMovesFor enumerates every legal destination square for the piece at
// from (spec.md §4.3's valid_moves_for).
func ValidMovesFor(s *GameState, from coords.Square) []coords.Square {
	var out []coords.Square
	for _, cand := range pseudoLegalMoves(s, from) {
		if moveIsKingSafe(s, cand) {
			out = append(out, cand.To)
		}
	}
	return out
}

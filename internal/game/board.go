package game

import "spellchess/internal/coords"

// Board is the 8x8 grid plus per-color/per-type bitboard indices (findKing
// reads them to locate a king; attack scans walk pieceAt). pieceAt is the
// source of truth; the bitboards are kept in lockstep by
// place/remove/relocate/setType.
type Board struct {
	pieceAt   [64]*Piece
	pieces    [2][6]Bitboard
	occupancy [2]Bitboard
	allOcc    Bitboard
}

func newBoard() Board { return Board{} }

// initialBoard returns the standard chess starting layout (spec.md §6).
func initialBoard(idSeq *int) Board {
	b := newBoard()
	order := []coords.PieceType{coords.Rook, coords.Knight, coords.Bishop, coords.Queen, coords.King, coords.Bishop, coords.Knight, coords.Rook}

	place := func(color coords.Color, backRank, pawnRank int) {
		for file, pt := range order {
			sq, _ := coords.SquareFromCoords(backRank, file)
			b.place(nextPieceID(idSeq), color, pt, sq)
		}
		for file := 0; file < 8; file++ {
			sq, _ := coords.SquareFromCoords(pawnRank, file)
			b.place(nextPieceID(idSeq), color, coords.Pawn, sq)
		}
	}
	place(coords.White, 0, 1)
	place(coords.Black, 7, 6)
	return b
}

func nextPieceID(seq *int) PieceID {
	*seq++
	return newPieceID(*seq)
}

func (b *Board) place(id PieceID, color coords.Color, pt coords.PieceType, sq coords.Square) {
	pc := &Piece{ID: id, Color: color, Type: pt, Square: sq}
	b.pieceAt[sq] = pc
	b.pieces[color][pt] = b.pieces[color][pt].Add(sq)
	b.occupancy[color] = b.occupancy[color].Add(sq)
	b.allOcc = b.allOcc.Add(sq)
}

func (b *Board) remove(sq coords.Square) {
	pc := b.pieceAt[sq]
	if pc == nil {
		return
	}
	b.pieces[pc.Color][pc.Type] = b.pieces[pc.Color][pc.Type].Remove(sq)
	b.occupancy[pc.Color] = b.occupancy[pc.Color].Remove(sq)
	b.allOcc = b.allOcc.Remove(sq)
	b.pieceAt[sq] = nil
}

// relocate moves the piece at from to to, updating every index. The
// destination must be empty (callers remove captures first).
func (b *Board) relocate(from, to coords.Square) {
	pc := b.pieceAt[from]
	if pc == nil {
		return
	}
	b.pieceAt[from] = nil
	pc.Square = to
	pc.HasMoved = true
	b.pieceAt[to] = pc
	b.pieces[pc.Color][pc.Type] = b.pieces[pc.Color][pc.Type].Remove(from).Add(to)
	b.occupancy[pc.Color] = b.occupancy[pc.Color].Remove(from).Add(to)
	b.allOcc = b.allOcc.Remove(from).Add(to)
}

// setType changes a piece's type in place (used by promotion), keeping the
// bitboard indices consistent.
func (b *Board) setType(sq coords.Square, pt coords.PieceType) {
	pc := b.pieceAt[sq]
	if pc == nil || pc.Type == pt {
		return
	}
	b.pieces[pc.Color][pc.Type] = b.pieces[pc.Color][pc.Type].Remove(sq)
	pc.Type = pt
	b.pieces[pc.Color][pc.Type] = b.pieces[pc.Color][pc.Type].Add(sq)
}

func (b *Board) findKing(color coords.Color) (coords.Square, bool) {
	bb := b.pieces[color][coords.King]
	if bb.Empty() {
		return 0, false
	}
	sq, _ := bb.PopLSB()
	return sq, true
}

func (b *Board) pieceByID(id PieceID) *Piece {
	for _, pc := range b.pieceAt {
		if pc != nil && pc.ID == id {
			return pc
		}
	}
	return nil
}

// clone returns a deep copy of the board. ActiveSpell and AwaitingPromotion
// reference pieces by PieceID rather than pointer, so no pointer remapping
// is needed here.
func (b *Board) clone() Board {
	out := *b
	for i, pc := range b.pieceAt {
		if pc != nil {
			out.pieceAt[i] = clonePiece(pc)
		}
	}
	return out
}

package game

import "spellchess/internal/coords"

// GameState is the full aggregate described in spec.md §3. Every public
// operation takes a *GameState and returns a new one (or an error),
// performing no I/O and mutating nothing reachable from its argument
// (spec.md §5) — callers get copy-on-write semantics "for free" because
// every mutator starts by cloning.
type GameState struct {
	Board             Board
	CurrentPlayer     coords.Color
	GameTurnNumber    int
	PlyCount          int
	Spells            [2]SpellState
	ActiveSpells      []ActiveSpell
	MoveLog           []MoveLogEntry
	EnPassant         coords.EnPassantTarget
	Castling          coords.CastlingRights
	IsGameOver        bool
	GameEndMessage    string
	AwaitingPromotion *AwaitingPromotion
	History           []GameSnapshot
	RepetitionCounter map[string]int

	idSeq int // monotonic piece-id sequence; only InitialState consumes it
}

// GameSnapshot is a deep copy of everything in GameState except History and
// RepetitionCounter (spec.md §3).
type GameSnapshot struct {
	Board             Board
	CurrentPlayer     coords.Color
	GameTurnNumber    int
	PlyCount          int
	Spells            [2]SpellState
	ActiveSpells      []ActiveSpell
	MoveLog           []MoveLogEntry
	EnPassant         coords.EnPassantTarget
	Castling          coords.CastlingRights
	IsGameOver        bool
	GameEndMessage    string
	AwaitingPromotion *AwaitingPromotion
}

// InitialState builds a fresh game in the standard chess starting position
// with full spell charges and no active effects (spec.md §6).
func InitialState() *GameState {
	var idSeq int
	s := &GameState{
		Board:             initialBoard(&idSeq),
		CurrentPlayer:     coords.White,
		GameTurnNumber:    1,
		Spells:            [2]SpellState{newSpellState(), newSpellState()},
		EnPassant:         coords.NoEnPassantTarget(),
		Castling:          coords.CastlingAll,
		RepetitionCounter: make(map[string]int),
		idSeq:             idSeq,
	}
	s.History = []GameSnapshot{s.snapshot()}
	sig := positionSignature(s)
	s.RepetitionCounter[sig] = 1
	return s
}

func (s *GameState) snapshot() GameSnapshot {
	return GameSnapshot{
		Board:             s.Board.clone(),
		CurrentPlayer:     s.CurrentPlayer,
		GameTurnNumber:    s.GameTurnNumber,
		PlyCount:          s.PlyCount,
		Spells:            s.Spells,
		ActiveSpells:      cloneActiveSpells(s.ActiveSpells),
		MoveLog:           cloneMoveLog(s.MoveLog),
		EnPassant:         s.EnPassant,
		Castling:          s.Castling,
		IsGameOver:        s.IsGameOver,
		GameEndMessage:    s.GameEndMessage,
		AwaitingPromotion: cloneAwaitingPromotion(s.AwaitingPromotion),
	}
}

// clone deep-copies the mutable state so callers can mutate freely without
// the caller-visible input ever changing (spec.md §3 lifecycle, §5).
func (s *GameState) clone() *GameState {
	out := &GameState{
		Board:             s.Board.clone(),
		CurrentPlayer:     s.CurrentPlayer,
		GameTurnNumber:    s.GameTurnNumber,
		PlyCount:          s.PlyCount,
		Spells:            s.Spells,
		ActiveSpells:      cloneActiveSpells(s.ActiveSpells),
		MoveLog:           cloneMoveLog(s.MoveLog),
		EnPassant:         s.EnPassant,
		Castling:          s.Castling,
		IsGameOver:        s.IsGameOver,
		GameEndMessage:    s.GameEndMessage,
		AwaitingPromotion: cloneAwaitingPromotion(s.AwaitingPromotion),
		History:           make([]GameSnapshot, len(s.History)),
		RepetitionCounter: make(map[string]int, len(s.RepetitionCounter)),
		idSeq:             s.idSeq,
	}
	for i, snap := range s.History {
		out.History[i] = cloneSnapshot(snap)
	}
	for k, v := range s.RepetitionCounter {
		out.RepetitionCounter[k] = v
	}
	return out
}

func cloneSnapshot(snap GameSnapshot) GameSnapshot {
	return GameSnapshot{
		Board:             snap.Board.clone(),
		CurrentPlayer:     snap.CurrentPlayer,
		GameTurnNumber:    snap.GameTurnNumber,
		PlyCount:          snap.PlyCount,
		Spells:            snap.Spells,
		ActiveSpells:      cloneActiveSpells(snap.ActiveSpells),
		MoveLog:           cloneMoveLog(snap.MoveLog),
		EnPassant:         snap.EnPassant,
		Castling:          snap.Castling,
		IsGameOver:        snap.IsGameOver,
		GameEndMessage:    snap.GameEndMessage,
		AwaitingPromotion: cloneAwaitingPromotion(snap.AwaitingPromotion),
	}
}

func cloneActiveSpells(src []ActiveSpell) []ActiveSpell {
	if len(src) == 0 {
		return nil
	}
	out := make([]ActiveSpell, len(src))
	for i, a := range src {
		out[i] = a
		out[i].OccupantIDs = append([]PieceID(nil), a.OccupantIDs...)
	}
	return out
}

func cloneMoveLog(src []MoveLogEntry) []MoveLogEntry {
	if len(src) == 0 {
		return nil
	}
	out := make([]MoveLogEntry, len(src))
	for i, e := range src {
		out[i] = e
		out[i].Actions = append([]string(nil), e.Actions...)
	}
	return out
}

func cloneAwaitingPromotion(src *AwaitingPromotion) *AwaitingPromotion {
	if src == nil {
		return nil
	}
	out := *src
	return &out
}

func (s *GameState) spellState(c coords.Color) SpellState { return s.Spells[c.Index()] }

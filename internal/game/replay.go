package game

import (
	"strings"

	"spellchess/internal/coords"
)

// Replay implements spec.md §4.6's replay: reconstructing a full game state
// from a flat compact action log.
func Replay(actions []string) (*GameState, error) {
	s := InitialState()
	pendingSpell := ""

	for _, raw := range actions {
		if s.IsGameOver {
			break // truncation protection: stop silently once the game ends
		}
		tok, err := coords.ParseToken(raw)
		if err != nil {
			return nil, newErr(KindInvalidAction, "%s: %v", raw, err)
		}
		switch tok.Kind {
		case coords.TokenResign:
			next, err := ApplyResign(s)
			if err != nil {
				return nil, wrapActionErr(raw, err)
			}
			s = next

		case coords.TokenSpell:
			if pendingSpell != "" {
				return nil, newErr(KindInvalidAction, "%s: two spell casts before a move", raw)
			}
			kind := SpellJump
			code, _ := coords.SpellCastCode(tok.SpellCast)
			if code == 'f' {
				kind = SpellFreeze
			}
			next, notation, err := ApplySpell(s, kind, tok.Square)
			if err != nil {
				return nil, wrapActionErr(raw, err)
			}
			s = next
			pendingSpell = notation

		case coords.TokenMove:
			next, awaiting, err := ApplyMove(s, tok.From, tok.To, pendingSpell, tok.Promotion, tok.HasPromo)
			if err != nil {
				return nil, wrapActionErr(raw, err)
			}
			if awaiting {
				return nil, newErr(KindPromotionRequired, "%s: pawn reached last rank without a promotion piece", raw)
			}
			s = next
			pendingSpell = ""
		}
	}
	return s, nil
}

func wrapActionErr(raw string, err error) error {
	ae, ok := err.(*ActionError)
	if !ok {
		return err
	}
	return &ActionError{Kind: ae.Kind, Msg: raw + ": " + ae.Msg}
}

// BuildCompactLog implements spec.md §4.6's build_compact_log.
func BuildCompactLog(s *GameState) string {
	var parts []string
	for _, entry := range s.MoveLog {
		parts = append(parts, entry.Actions...)
	}
	return strings.Join(parts, ",")
}

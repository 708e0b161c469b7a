package coords

import "testing"

func TestParseTokenMove(t *testing.T) {
	tok, err := ParseToken("e2-e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != TokenMove || tok.HasPromo {
		t.Fatalf("unexpected token: %+v", tok)
	}
	from, _ := ParseAlgebraic("e2")
	to, _ := ParseAlgebraic("e4")
	if tok.From != from || tok.To != to {
		t.Errorf("token squares = %v -> %v, want %v -> %v", tok.From, tok.To, from, to)
	}
}

func TestParseTokenPromotion(t *testing.T) {
	tok, err := ParseToken("e7-e8=Q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tok.HasPromo || tok.Promotion != Queen {
		t.Errorf("promotion parse = %+v", tok)
	}
}

func TestParseTokenSpell(t *testing.T) {
	for _, raw := range []string{"j@e3", "jump@e3", "f@c6", "freeze@c6"} {
		tok, err := ParseToken(raw)
		if err != nil {
			t.Fatalf("ParseToken(%q): %v", raw, err)
		}
		if tok.Kind != TokenSpell {
			t.Errorf("%q: expected spell token", raw)
		}
	}
}

func TestParseTokenResign(t *testing.T) {
	for _, raw := range []string{"R", "r"} {
		tok, err := ParseToken(raw)
		if err != nil || tok.Kind != TokenResign {
			t.Errorf("ParseToken(%q) = %+v, %v", raw, tok, err)
		}
	}
}

func TestParseTokenInvalid(t *testing.T) {
	for _, raw := range []string{"", "z9-e4", "x@e3", "e2-e4=K", "e2"} {
		if _, err := ParseToken(raw); err == nil {
			t.Errorf("ParseToken(%q) should fail", raw)
		}
	}
}

func TestSpellCastCode(t *testing.T) {
	cases := map[string]byte{"j": 'j', "jump": 'j', "f": 'f', "freeze": 'f'}
	for in, want := range cases {
		got, ok := SpellCastCode(in)
		if !ok || got != want {
			t.Errorf("SpellCastCode(%q) = %c, %v; want %c", in, got, ok, want)
		}
	}
	if _, ok := SpellCastCode("nope"); ok {
		t.Error("SpellCastCode(\"nope\") should fail")
	}
}

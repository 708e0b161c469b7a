package game

import (
	"reflect"
	"strings"
	"testing"

	"spellchess/internal/testutil"
)

// TestReplayFidelity exercises spec.md §8's log-fidelity property: replaying
// the compact log built from a played-out game reproduces an equal state.
// The engine never mints a fresh PieceID once a game starts (promotion
// mutates a piece's type in place), so replay reproduces bit-identical
// PieceIDs too — no "up to piece-id renaming" slack is actually needed here.
func TestReplayFidelity(t *testing.T) {
	s := InitialState()
	s = playMoves(t, s,
		[2]string{"e2", "e4"},
		[2]string{"e7", "e5"},
		[2]string{"g1", "f3"},
		[2]string{"b8", "c6"},
		[2]string{"f1", "c4"},
		[2]string{"g8", "f6"},
	)
	frozen, spellNotation := mustCast(t, s, SpellFreeze, "f6")
	s = mustMoveWithSpell(t, frozen, "d2", "d3", spellNotation)

	log := BuildCompactLog(s)
	testutil.AssertTrue(t, log != "", "compact log should not be empty")

	replayed, err := Replay(strings.Split(log, ","))
	testutil.AssertNoError(t, err)

	if !reflect.DeepEqual(s, replayed) {
		t.Fatalf("replay(build_compact_log(s)) != s\nwant: %+v\ngot:  %+v", s, replayed)
	}
}

func TestReplayActionConcatenation(t *testing.T) {
	s := InitialState()
	s = playMoves(t, s, [2]string{"e2", "e4"}, [2]string{"e7", "e5"})
	var flattened []string
	for _, entry := range s.MoveLog {
		flattened = append(flattened, entry.Actions...)
	}
	testutil.AssertEqual(t, BuildCompactLog(s), strings.Join(flattened, ","))
}

func TestReplayScholarsMateFromLog(t *testing.T) {
	actions := []string{"e2-e4", "e7-e5", "f1-c4", "b8-c6", "d1-h5", "g8-f6", "h5-f7"}
	s, err := Replay(actions)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, s.IsGameOver, "should be checkmate")
	testutil.AssertEqual(t, s.GameEndMessage, "White wins by checkmate!")
}

func TestReplayStopsAtGameOver(t *testing.T) {
	actions := []string{"e2-e4", "e7-e5", "f1-c4", "b8-c6", "d1-h5", "g8-f6", "h5-f7", "a7-a6"}
	s, err := Replay(actions)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, s.IsGameOver, "should still be over")
	testutil.AssertEqual(t, len(s.MoveLog), 7, "trailing token after game-over should be ignored")
}

func TestReplayRejectsMalformedToken(t *testing.T) {
	if _, err := Replay([]string{"e2-e9"}); err == nil {
		t.Fatal("an out-of-range square should be rejected")
	}
}

func TestReplayRejectsDoubleSpellBeforeMove(t *testing.T) {
	if _, err := Replay([]string{"j@e2", "f@d7"}); err == nil {
		t.Fatal("two spell casts before a move should be rejected")
	}
}

func TestReplayRejectsMissingPromotion(t *testing.T) {
	// the a-pawn captures the b8 knight and reaches the last rank without a
	// caller-supplied promotion piece.
	actions := []string{
		"b2-b4", "a7-a5",
		"b4-a5", "e7-e6",
		"a5-a6", "e6-e5",
		"a6-a7", "e5-e4",
		"a7-b8",
	}
	if _, err := Replay(actions); err == nil {
		t.Fatal("a pawn reaching the last rank without a promotion token should be rejected")
	}
}

func TestReplayAcceptsSpellLongAndShortPrefixes(t *testing.T) {
	short, err := Replay([]string{"j@e2", "e2-e4"})
	testutil.AssertNoError(t, err)
	long, err := Replay([]string{"jump@e2", "e2-e4"})
	testutil.AssertNoError(t, err)
	if !reflect.DeepEqual(short, long) {
		t.Fatal("the short and long spell-cast prefixes should replay identically")
	}
}

func TestReplayResign(t *testing.T) {
	s, err := Replay([]string{"R"})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, s.IsGameOver, "resign should end the game")
	testutil.AssertEqual(t, s.GameEndMessage, "White resigned. Black wins.")
}

func TestSnapshotConsistency(t *testing.T) {
	s := InitialState()
	s = playMoves(t, s,
		[2]string{"e2", "e4"},
		[2]string{"e7", "e5"},
		[2]string{"g1", "f3"},
		[2]string{"b8", "c6"},
	)
	for i := range s.MoveLog {
		actions := s.MoveLog[:i]
		var flat []string
		for _, e := range actions {
			flat = append(flat, e.Actions...)
		}
		replayed, err := Replay(flat)
		testutil.AssertNoError(t, err)
		if !reflect.DeepEqual(replayed.Board, snapshotBoard(s.History[i])) {
			t.Fatalf("history[%d] should equal the replay of the first %d half-moves", i, i)
		}
	}
}

func snapshotBoard(snap GameSnapshot) Board { return snap.Board }

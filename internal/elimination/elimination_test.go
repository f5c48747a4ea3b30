package elimination

import (
	"testing"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/google/uuid"
)

func TestWinnerAnnouncement(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		names    []string
		expected string
	}{
		{name: "none", names: nil, expected: ""},
		{name: "one", names: []string{"Alex"}, expected: "Alex WON THE GAME!"},
		{name: "two", names: []string{"Alex", "Sam"}, expected: "Alex and Sam WON THE GAME!"},
		{name: "three", names: []string{"Alex", "Sam", "Kim"}, expected: "Alex, Sam, and Kim WON THE GAME!"},
		{name: "four", names: []string{"A", "B", "C", "D"}, expected: "A, B, C, and D WON THE GAME!"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := WinnerAnnouncement(tc.names); got != tc.expected {
				t.Errorf("expected %#v got %#v", tc.expected, got)
			}
		})
	}
}

func TestEliminateOutcomes(t *testing.T) {
	t.Parallel()

	tr := New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	for _, id := range []uuid.UUID{a, b, c} {
		tr.Activate(id)
	}
	tr.BeginRound()

	if got := tr.Eliminate(a); got != OutcomeEliminated {
		t.Errorf("expected %#v got %#v", OutcomeEliminated, got)
	}
	if got := tr.Eliminate(a); got != OutcomeIgnored {
		t.Errorf("expected %#v got %#v", OutcomeIgnored, got)
	}
	if got := tr.Eliminate(b); got != OutcomeLastStanding {
		t.Errorf("expected %#v got %#v", OutcomeLastStanding, got)
	}
	if got := tr.Eliminate(c); got != OutcomeAllFallen {
		t.Errorf("expected %#v got %#v", OutcomeAllFallen, got)
	}

	fell := tr.Eliminated()
	if len(fell) != 3 || fell[0] != a || fell[2] != c {
		t.Errorf("expected fall order got %#v", fell)
	}
	if tr.ActiveCount() != 0 {
		t.Errorf("expected %#v got %#v", 0, tr.ActiveCount())
	}
}

func TestBeginRoundClearsEliminated(t *testing.T) {
	t.Parallel()

	tr := New()
	a, b := uuid.New(), uuid.New()
	tr.Activate(a)
	tr.Activate(b)
	tr.Eliminate(a)
	tr.BeginRound()

	if len(tr.Eliminated()) != 0 {
		t.Errorf("expected empty eliminated set got %#v", tr.Eliminated())
	}
	if !tr.IsActive(b) || tr.IsActive(a) {
		t.Errorf("unexpected active set %#v", tr.Active())
	}
}

func TestDeclareOnce(t *testing.T) {
	t.Parallel()

	tr := New()
	if !tr.Declare() {
		t.Error("expected first declare to succeed")
	}
	if tr.Declare() {
		t.Error("expected second declare to be refused")
	}
	tr.Reset()
	if !tr.Declare() {
		t.Error("expected declare after reset to succeed")
	}
}

func TestBelowVoid(t *testing.T) {
	t.Parallel()

	if BelowVoid(arena.Vec3{Y: arena.VoidLevel}) {
		t.Error("expected void level itself to be safe")
	}
	if !BelowVoid(arena.Vec3{Y: arena.VoidLevel - 0.1}) {
		t.Error("expected fall below void level")
	}
}

package player

import (
	"testing"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

func TestRosterOrder(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	r.Add(a)
	r.Add(b)
	r.Add(c)
	if r.Add(b) {
		t.Errorf("duplicate add accepted")
	}

	r.Remove(b)
	ids := r.IDs()
	if len(ids) != 2 || ids[0] != a || ids[1] != c {
		t.Errorf("expected %#v got %#v", []uuid.UUID{a, c}, ids)
	}
	if r.Contains(b) {
		t.Errorf("removed id still present")
	}
}

func TestRegistryEachOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	now := time.Now()
	names := []string{"Alex", "Sam", "Kai"}
	for _, n := range names {
		reg.Put(NewSession(NewMemory(uuid.New(), n), now))
	}

	var got []string
	reg.Each(func(s *Session) { got = append(got, s.Name()) })
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("expected %#v got %#v", names, got)
		}
	}
}

func TestSessionLock(t *testing.T) {
	t.Parallel()

	now := time.Unix(100, 0)
	s := NewSession(NewMemory(uuid.New(), "Alex"), now)
	s.Lock(now, 250*time.Millisecond)

	if !s.Locked(now.Add(100 * time.Millisecond)) {
		t.Errorf("expected session to be locked")
	}
	if s.Locked(now.Add(250 * time.Millisecond)) {
		t.Errorf("expected lock to expire")
	}
}

func TestSessionCarpet(t *testing.T) {
	t.Parallel()

	sch := scheduler.New()
	s := NewSession(NewMemory(uuid.New(), "Alex"), time.Now())
	var fired int
	s.AttachCarpet(sch.RunTimer(1, 1, func() { fired++ }))
	s.SetCarpetCells([]arena.Block{{X: 1, Y: arena.FloorY, Z: 1}})

	sch.Tick()
	cells := s.DetachCarpet()
	sch.Advance(5)

	if fired != 1 {
		t.Errorf("expected %#v got %#v", 1, fired)
	}
	if len(cells) != 1 || s.MagicCarpet {
		t.Errorf("carpet not detached")
	}
}

func TestMemoryInventory(t *testing.T) {
	t.Parallel()

	m := NewMemory(uuid.New(), "Alex")
	m.SetItem(SlotExit, ExitItem())
	m.Give(LeapAxeItem())

	if m.Find(LabelLeapAxe) != 0 {
		t.Errorf("expected %#v got %#v", 0, m.Find(LabelLeapAxe))
	}
	if m.Item(SlotExit).Label != LabelExit {
		t.Errorf("expected exit item in slot %d", SlotExit)
	}

	m.ClearInventory()
	if m.Find(LabelExit) != -1 {
		t.Errorf("expected inventory to be empty")
	}
}

package pattern

import (
	"context"
	"errors"
	"testing"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/random"
)

func newCatalog(seed uint32) *Catalog {
	return NewCatalog(context.Background(), layout.NewLoader("testdata", nil), random.New(seed))
}

func TestSelectorNoRepeatWithinWindow(t *testing.T) {
	t.Parallel()

	s := NewSelector(19, random.New(11))
	var picks []int
	for i := 0; i < 500; i++ {
		picks = append(picks, s.Next())
	}

	for i := range picks {
		seen := map[int]bool{}
		for j := i; j < i+HistorySize && j < len(picks); j++ {
			if seen[picks[j]] {
				t.Fatalf("id %d repeated within window starting at %d", picks[j], i)
			}
			seen[picks[j]] = true
		}
	}

	if len(s.History()) != HistorySize {
		t.Errorf("expected %#v got %#v", HistorySize, len(s.History()))
	}
}

func TestSelectorRange(t *testing.T) {
	t.Parallel()

	s := NewSelector(19, random.New(5))
	for i := 0; i < 200; i++ {
		id := s.Next()
		if id < 1 || id > 19 {
			t.Fatalf("id out of range: %d", id)
		}
	}
}

func TestSelectorFallbackWhenWindowCoversCatalog(t *testing.T) {
	t.Parallel()

	s := NewSelector(3, random.New(5))
	for i := 0; i < 20; i++ {
		id := s.Next()
		if id < 1 || id > 3 {
			t.Fatalf("id out of range: %d", id)
		}
	}
}

func TestCatalogSize(t *testing.T) {
	t.Parallel()

	c := newCatalog(1)
	if c.Size() != 19 {
		t.Fatalf("expected %#v got %#v", 19, c.Size())
	}
	if _, err := c.Build(20, arena.NewMemory(), arena.Floor); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected %#v got %#v", ErrUnknownPattern, err)
	}
}

func TestEveryPatternCoversFloorWithUsedColors(t *testing.T) {
	t.Parallel()

	c := newCatalog(3)
	for id := 1; id <= c.Size(); id++ {
		w := arena.NewMemory()
		used, err := c.Build(id, w, arena.Floor)
		if err != nil {
			t.Fatalf("build %d: %v", id, err)
		}

		arena.Floor.Each(func(x, z int) {
			m := w.Block(x, arena.FloorY, z)
			if m == arena.Air {
				t.Fatalf("pattern %d left air at %d,%d", id, x, z)
			}
			if used.Len() > 0 && !used.Contains(m) && m != arena.LightGrayTerracotta {
				t.Fatalf("pattern %d painted %v outside its used colors", id, m)
			}
		})
	}
}

func TestPatternColorCounts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		id  int
		max int
	}{
		{id: 1, max: 16},
		{id: 2, max: 12},
		{id: 3, max: 5},
		{id: 4, max: 9},
		{id: 5, max: 16},
		{id: 6, max: 5},
		{id: 7, max: 6},
		{id: 8, max: 8},
	}

	c := newCatalog(9)
	for _, tc := range testCases {
		used, err := c.Build(tc.id, arena.NewMemory(), arena.Floor)
		if err != nil {
			t.Fatalf("build %d: %v", tc.id, err)
		}
		if used.Len() == 0 || used.Len() > tc.max {
			t.Errorf("pattern %d: expected at most %d colors got %d", tc.id, tc.max, used.Len())
		}
	}
}

func TestSquareStripesFixedGrid(t *testing.T) {
	t.Parallel()

	w := arena.NewMemory()
	squareStripes(w, nil, arena.Floor)

	if m := w.Block(arena.StartX, arena.FloorY, arena.StartZ); m != arena.BrownTerracotta {
		t.Errorf("expected %#v got %#v", arena.BrownTerracotta, m)
	}
	if m := w.Block(arena.StartX, arena.FloorY, arena.StartZ+4); m != arena.GreenTerracotta {
		t.Errorf("expected %#v got %#v", arena.GreenTerracotta, m)
	}
	if m := w.Block(arena.StartX+16+12, arena.FloorY, arena.StartZ+16); m != arena.PurpleTerracotta {
		t.Errorf("expected %#v got %#v", arena.PurpleTerracotta, m)
	}
}

func TestLayoutPatternUsesFile(t *testing.T) {
	t.Parallel()

	c := newCatalog(1)
	w := arena.NewMemory()
	// id 10 is floor_hearts
	used, err := c.Build(10, w, arena.Floor)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if used.Len() != 1 || !used.Contains(arena.RedTerracotta) {
		t.Errorf("unexpected used colors %#v", used.Slice())
	}
}

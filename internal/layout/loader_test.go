package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/cache"
)

func TestRotate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   Coord
		x, z int
	}{
		{in: Coord{X: 0, Z: 0}, x: 63, z: 63},
		{in: Coord{X: 63, Z: 63}, x: 0, z: 0},
		{in: Coord{X: 10, Z: 20}, x: 53, z: 43},
	}

	for _, tc := range testCases {
		x, z := Rotate(tc.in, arena.Size)
		if x != tc.x || z != tc.z {
			t.Errorf("expected %#v got %#v", [2]int{tc.x, tc.z}, [2]int{x, z})
		}
	}
}

func TestLoadSkipsUnknownAndMalformed(t *testing.T) {
	t.Parallel()

	l := NewLoader("testdata", nil)
	layout, err := l.Load(context.Background(), "floor_hearts")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(layout.Entries) != 2 {
		t.Fatalf("expected %#v got %#v", 2, len(layout.Entries))
	}
	if layout.Cells() != 4 {
		t.Errorf("expected %#v got %#v", 4, layout.Cells())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	l := NewLoader("testdata", nil)
	ctx := context.Background()

	if _, err := l.Load(ctx, "floor_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %#v got %#v", ErrNotFound, err)
	}
	if _, err := l.Load(ctx, "floor_empty"); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected %#v got %#v", ErrEmpty, err)
	}
	if _, err := l.Load(ctx, "floor_broken"); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestBuildAppliesRotation(t *testing.T) {
	t.Parallel()

	w := arena.NewMemory()
	l := NewLoader("testdata", nil)
	used := l.Build(context.Background(), w, arena.Floor, "floor_hearts")

	if used.Len() != 2 || !used.Contains(arena.RedTerracotta) || !used.Contains(arena.PinkTerracotta) {
		t.Fatalf("unexpected used colors %#v", used.Slice())
	}

	// layout (0,0) lands on the far corner of the floor
	if m := w.Block(arena.StartX+63, arena.FloorY, arena.StartZ+63); m != arena.RedTerracotta {
		t.Errorf("expected %#v got %#v", arena.RedTerracotta, m)
	}
	if m := w.Block(arena.StartX+53, arena.FloorY, arena.StartZ+43); m != arena.PinkTerracotta {
		t.Errorf("expected %#v got %#v", arena.PinkTerracotta, m)
	}
	if m := w.Block(arena.StartX+5, arena.FloorY, arena.StartZ+5); m != arena.LightGrayTerracotta {
		t.Errorf("expected %#v got %#v", arena.LightGrayTerracotta, m)
	}
}

func TestBuildFallback(t *testing.T) {
	t.Parallel()

	w := arena.NewMemory()
	l := NewLoader("testdata", nil)
	used := l.Build(context.Background(), w, arena.Floor, "floor_missing")

	if used.Len() != 0 {
		t.Errorf("expected %#v got %#v", 0, used.Len())
	}
	if n := w.Count(arena.Floor, arena.LightGrayTerracotta); n != arena.Size*arena.Size {
		t.Errorf("expected %#v got %#v", arena.Size*arena.Size, n)
	}
}

func TestPreloadUsesCache(t *testing.T) {
	t.Parallel()

	c, err := cache.NewLRU(8)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	l := NewLoader("testdata", c)
	n, err := l.Preload(context.Background(), []string{"floor_hearts", "floor_missing", "floor_empty"})
	if err != nil {
		t.Fatalf("preload: %v", err)
	}
	if n != 1 {
		t.Errorf("expected %#v got %#v", 1, n)
	}
	if _, ok := c.Get("floor_hearts"); !ok {
		t.Errorf("expected layout to be cached")
	}
}

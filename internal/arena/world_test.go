package arena

import "testing"

func TestParseMaterial(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Material
		ok       bool
	}{
		{name: "upper", input: "RED_TERRACOTTA", expected: RedTerracotta, ok: true},
		{name: "lower", input: "light_blue_terracotta", expected: LightBlueTerracotta, ok: true},
		{name: "namespaced", input: "minecraft:black_terracotta", expected: BlackTerracotta, ok: true},
		{name: "unknown", input: "DIAMOND_BLOCK", ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, ok := ParseMaterial(tc.input)
			if ok != tc.ok {
				t.Fatalf("expected %#v got %#v", tc.ok, ok)
			}
			if ok && m != tc.expected {
				t.Errorf("expected %#v got %#v", tc.expected, m)
			}
		})
	}
}

func TestMaterialSetOrder(t *testing.T) {
	t.Parallel()

	s := NewMaterialSet(RedTerracotta, BlueTerracotta, RedTerracotta, WhiteTerracotta)
	if s.Len() != 3 {
		t.Fatalf("expected %#v got %#v", 3, s.Len())
	}

	expected := []Material{RedTerracotta, BlueTerracotta, WhiteTerracotta}
	for i, m := range s.Slice() {
		if m != expected[i] {
			t.Errorf("expected %#v got %#v", expected[i], m)
		}
	}

	if !s.Contains(BlueTerracotta) || s.Contains(Beacon) {
		t.Errorf("contains mismatch")
	}
}

func TestMemoryWorld(t *testing.T) {
	t.Parallel()

	w := NewMemory()
	Fill(w, Floor, LightGrayTerracotta)
	if n := w.Count(Floor, LightGrayTerracotta); n != Size*Size {
		t.Fatalf("expected %#v got %#v", Size*Size, n)
	}

	if n := Replace(w, Floor, LightGrayTerracotta, RedTerracotta); n != Size*Size {
		t.Errorf("expected %#v got %#v", Size*Size, n)
	}

	w.SetBlock(0, FloorY, 0, Air)
	if w.Block(0, FloorY, 0) != Air {
		t.Errorf("expected air")
	}

	w.Detach()
	if _, ok := w.World(); ok {
		t.Errorf("expected detached world to be unavailable")
	}
	w.Attach()
	if _, ok := w.World(); !ok {
		t.Errorf("expected attached world to be available")
	}
}

func TestRegionContains(t *testing.T) {
	t.Parallel()

	if !Floor.Contains(-32, -32) || !Floor.Contains(31, 31) {
		t.Errorf("expected corners inside")
	}
	if Floor.Contains(32, 0) || Floor.Contains(0, -33) {
		t.Errorf("expected outside cells rejected")
	}
}

package layout

import (
	"github.com/bloops-games/colorparty/internal/arena"
)

const (
	NameStart    = "floor_start"
	NameGameOver = "floor_gameover"
)

// Coord is one cell of a layout file in layout space, both axes in [0, 63].
type Coord struct {
	X int `json:"x" jsonschema:"minimum=0,maximum=63"`
	Z int `json:"z" jsonschema:"minimum=0,maximum=63"`
}

// File is the on-disk layout document: material name to the cells painted with it.
type File map[string][]Coord

// Layout is a parsed layout with known materials only.
type Layout struct {
	Name    string
	Entries []Entry
}

type Entry struct {
	Material arena.Material
	Cells    []Coord
}

// Cells returns the number of painted cells.
func (l *Layout) Cells() int {
	var n int
	for _, e := range l.Entries {
		n += len(e.Cells)
	}
	return n
}

// Apply fills the region with light gray, paints the layout rotated by 180 degrees and
// returns the materials the layout painted. The background is not part of the result
// unless the layout names it.
func Apply(w arena.World, r arena.Region, l *Layout) *arena.MaterialSet {
	floor := make([][]arena.Material, r.Size)
	for i := range floor {
		floor[i] = make([]arena.Material, r.Size)
		for j := range floor[i] {
			floor[i][j] = arena.LightGrayTerracotta
		}
	}

	used := arena.NewMaterialSet()
	if l != nil {
		for _, e := range l.Entries {
			used.Add(e.Material)
			for _, c := range e.Cells {
				x, z := Rotate(c, r.Size)
				if x < 0 || x >= r.Size || z < 0 || z >= r.Size {
					continue
				}
				floor[x][z] = e.Material
			}
		}
	}

	for x := 0; x < r.Size; x++ {
		for z := 0; z < r.Size; z++ {
			w.SetBlock(r.StartX+x, r.Y, r.StartZ+z, floor[x][z])
		}
	}
	return used
}

// Rotate maps a layout coordinate onto the floor, turning it half way around the center.
func Rotate(c Coord, size int) (int, int) {
	return size - 1 - c.X, size - 1 - c.Z
}

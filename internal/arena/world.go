package arena

import (
	"fmt"
	"sync"
)

var ErrWorldUnavailable = fmt.Errorf("world unavailable")

type World interface {
	SetBlock(x, y, z int, m Material)
	Block(x, y, z int) Material
}

// Source hands out the arena world, ok is false while the world is not loaded.
type Source interface {
	World() (World, bool)
}

func Fill(w World, r Region, m Material) {
	r.Each(func(x, z int) {
		w.SetBlock(x, r.Y, z, m)
	})
}

// Replace swaps every cell of from in the region with to.
func Replace(w World, r Region, from, to Material) int {
	var n int
	r.Each(func(x, z int) {
		if w.Block(x, r.Y, z) == from {
			w.SetBlock(x, r.Y, z, to)
			n++
		}
	})
	return n
}

// Clear sets every cell between minY and maxY in the region to air.
func Clear(w World, r Region, minY, maxY int) {
	for y := minY; y <= maxY; y++ {
		r.Each(func(x, z int) {
			w.SetBlock(x, y, z, Air)
		})
	}
}

func NewMemory() *Memory {
	return &Memory{blocks: map[Block]Material{}}
}

var (
	_ World  = (*Memory)(nil)
	_ Source = (*Memory)(nil)
)

// Memory is a sparse in-process world, absent cells are air.
type Memory struct {
	mtx      sync.RWMutex
	blocks   map[Block]Material
	detached bool
}

func (m *Memory) SetBlock(x, y, z int, mat Material) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	key := Block{X: x, Y: y, Z: z}
	if mat == Air {
		delete(m.blocks, key)
		return
	}
	m.blocks[key] = mat
}

func (m *Memory) Block(x, y, z int) Material {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.blocks[Block{X: x, Y: y, Z: z}]
}

func (m *Memory) World() (World, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	if m.detached {
		return nil, false
	}
	return m, true
}

// Detach makes the world report itself as unavailable until Attach is called.
func (m *Memory) Detach() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.detached = true
}

func (m *Memory) Attach() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.detached = false
}

// Count returns how many cells of the region hold mat.
func (m *Memory) Count(r Region, mat Material) int {
	var n int
	r.Each(func(x, z int) {
		if m.Block(x, r.Y, z) == mat {
			n++
		}
	})
	return n
}

// Snapshot returns the floor colors as a Size x Size grid indexed [x][z] relative to the region.
func (m *Memory) Snapshot(r Region) [][]Material {
	out := make([][]Material, r.Size)
	for i := range out {
		out[i] = make([]Material, r.Size)
		for j := range out[i] {
			out[i][j] = m.Block(r.StartX+i, r.Y, r.StartZ+j)
		}
	}
	return out
}

package pattern

import (
	"math"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/random"
)

// pickColors returns count distinct terracottas in random order.
func pickColors(rnd random.Source, count int) []arena.Material {
	colors := make([]arena.Material, len(arena.Terracottas))
	copy(colors, arena.Terracottas)
	random.Shuffle(rnd, len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
	if count > len(colors) {
		count = len(colors)
	}
	return colors[:count]
}

func pickOne(rnd random.Source, colors []arena.Material) arena.Material {
	return colors[random.Intn(rnd, len(colors))]
}

func fill(w arena.World, r arena.Region, m arena.Material) {
	arena.Fill(w, r, m)
}

func randomScatter(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	colors := pickColors(rnd, 16)
	used := arena.NewMaterialSet()
	r.Each(func(x, z int) {
		c := pickOne(rnd, colors)
		w.SetBlock(x, r.Y, z, c)
		used.Add(c)
	})
	return used
}

func squares4x4(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	const sq = 4
	colors := pickColors(rnd, 12)
	used := arena.NewMaterialSet()
	for bx := 0; bx < r.Size; bx += sq {
		for bz := 0; bz < r.Size; bz += sq {
			c := pickOne(rnd, colors)
			used.Add(c)
			for dx := 0; dx < sq; dx++ {
				for dz := 0; dz < sq; dz++ {
					w.SetBlock(r.StartX+bx+dx, r.Y, r.StartZ+bz+dz, c)
				}
			}
		}
	}
	return used
}

func circles(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	const (
		count  = 60
		radius = 2
	)
	colors := pickColors(rnd, 5)
	used := arena.NewMaterialSet()

	bg := pickOne(rnd, colors)
	used.Add(bg)
	fill(w, r, bg)

	for i := 0; i < count; i++ {
		cx := r.StartX + radius + random.Intn(rnd, r.Size-radius*2)
		cz := r.StartZ + radius + random.Intn(rnd, r.Size-radius*2)
		inner := pickOne(rnd, colors)
		ring := pickOne(rnd, colors)
		used.Add(inner)
		used.Add(ring)

		for x := cx - radius; x <= cx+radius; x++ {
			for z := cz - radius; z <= cz+radius; z++ {
				d := math.Hypot(float64(x-cx), float64(z-cz))
				switch {
				case d <= radius-0.5:
					w.SetBlock(x, r.Y, z, inner)
				case d <= radius+0.4:
					w.SetBlock(x, r.Y, z, ring)
				}
			}
		}
	}
	return used
}

func diagonalStripes(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	colors := pickColors(rnd, 9)
	width := 4 + random.Intn(rnd, 2)
	used := arena.NewMaterialSet()
	for x := 0; x < r.Size; x++ {
		for z := 0; z < r.Size; z++ {
			c := colors[((x+z)/width)%len(colors)]
			used.Add(c)
			w.SetBlock(r.StartX+x, r.Y, r.StartZ+z, c)
		}
	}
	return used
}

func oneWideDiagonal(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	colors := pickColors(rnd, 16)
	used := arena.NewMaterialSet()
	for x := 0; x < r.Size; x++ {
		for z := 0; z < r.Size; z++ {
			d := x - z
			if d < 0 {
				d = -d
			}
			c := colors[d%len(colors)]
			used.Add(c)
			w.SetBlock(r.StartX+x, r.Y, r.StartZ+z, c)
		}
	}
	return used
}

func concentricCircles(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet {
	radii := [...]int{30, 20, 10, 5}
	colors := pickColors(rnd, 9)
	used := arena.NewMaterialSet()
	cx, cz := r.StartX+r.Size/2, r.StartZ+r.Size/2

	used.Add(colors[0])
	fill(w, r, colors[0])

	for i, radius := range radii {
		c := colors[i+1]
		used.Add(c)
		for x := cx - radius; x <= cx+radius; x++ {
			for z := cz - radius; z <= cz+radius; z++ {
				if !r.Contains(x, z) {
					continue
				}
				if math.Hypot(float64(x-cx), float64(z-cz)) <= float64(radius) {
					w.SetBlock(x, r.Y, z, c)
				}
			}
		}
	}
	return used
}

var squareStripeGrid = [4][4]arena.Material{
	{arena.BrownTerracotta, arena.OrangeTerracotta, arena.PinkTerracotta, arena.PurpleTerracotta},
	{arena.GreenTerracotta, arena.GrayTerracotta, arena.PinkTerracotta, arena.PurpleTerracotta},
	{arena.BrownTerracotta, arena.OrangeTerracotta, arena.PinkTerracotta, arena.PurpleTerracotta},
	{arena.GreenTerracotta, arena.GrayTerracotta, arena.PinkTerracotta, arena.PurpleTerracotta},
}

// squareStripes tiles a fixed 16x16 block of 4x4 cells over the region.
func squareStripes(w arena.World, _ random.Source, r arena.Region) *arena.MaterialSet {
	const cell = 4
	tile := cell * len(squareStripeGrid)
	used := arena.NewMaterialSet()
	for x := 0; x < r.Size; x++ {
		for z := 0; z < r.Size; z++ {
			c := squareStripeGrid[(z%tile)/cell][(x%tile)/cell]
			used.Add(c)
			w.SetBlock(r.StartX+x, r.Y, r.StartZ+z, c)
		}
	}
	return used
}

var stripePairs = [8][2]arena.Material{
	{arena.BlackTerracotta, arena.GrayTerracotta},
	{arena.PurpleTerracotta, arena.MagentaTerracotta},
	{arena.GreenTerracotta, arena.LimeTerracotta},
	{arena.BlueTerracotta, arena.LightBlueTerracotta},
	{arena.BlackTerracotta, arena.GrayTerracotta},
	{arena.PurpleTerracotta, arena.MagentaTerracotta},
	{arena.GreenTerracotta, arena.LimeTerracotta},
	{arena.BlueTerracotta, arena.LightBlueTerracotta},
}

// stripes8x8 paints eight 8-wide stripes, each alternating its color pair every 8 cells.
func stripes8x8(w arena.World, _ random.Source, r arena.Region) *arena.MaterialSet {
	const cell = 8
	used := arena.NewMaterialSet()
	for x := 0; x < r.Size; x++ {
		for z := 0; z < r.Size; z++ {
			pair := stripePairs[(x/cell)%len(stripePairs)]
			c := pair[(z/cell)%2]
			used.Add(c)
			w.SetBlock(r.StartX+x, r.Y, r.StartZ+z, c)
		}
	}
	return used
}

package pattern

import (
	"context"
	"fmt"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/random"
)

var ErrUnknownPattern = fmt.Errorf("unknown pattern")

// BuildFunc paints the region and returns the colors it used.
type BuildFunc func(w arena.World, rnd random.Source, r arena.Region) *arena.MaterialSet

type Pattern struct {
	ID    int
	Name  string
	Build BuildFunc
}

// Layouts lists the data-driven patterns in catalog order, ids 9 to 19.
var Layouts = []string{
	"floor_variation_1",
	"floor_hearts",
	"floor_carrots",
	"floor_turtles",
	"floor_concentric_squares",
	"floor_connected_rings",
	"floor_stars",
	"floor_4section_bricks",
	"floor_9squares",
	"floor_3shapes",
	"floor_5circles",
}

// NewCatalog registers the procedural patterns followed by the layout-backed ones.
func NewCatalog(ctx context.Context, loader *layout.Loader, rnd random.Source) *Catalog {
	c := &Catalog{ctx: ctx, loader: loader, rnd: rnd, patterns: map[int]Pattern{}}

	c.register("random_scatter", randomScatter)
	c.register("squares_4x4", squares4x4)
	c.register("circles", circles)
	c.register("diagonal_stripes", diagonalStripes)
	c.register("one_wide_diagonal", oneWideDiagonal)
	c.register("concentric_circles", concentricCircles)
	c.register("square_stripes", squareStripes)
	c.register("stripes_8x8", stripes8x8)
	for _, name := range Layouts {
		c.register(name, c.layoutBuilder(name))
	}

	return c
}

type Catalog struct {
	ctx      context.Context
	loader   *layout.Loader
	rnd      random.Source
	patterns map[int]Pattern
	size     int
}

func (c *Catalog) register(name string, fn BuildFunc) {
	c.size++
	c.patterns[c.size] = Pattern{ID: c.size, Name: name, Build: fn}
}

func (c *Catalog) layoutBuilder(name string) BuildFunc {
	return func(w arena.World, _ random.Source, r arena.Region) *arena.MaterialSet {
		return c.loader.Build(c.ctx, w, r, name)
	}
}

// Size is the number of registered patterns, ids run from 1 to Size.
func (c *Catalog) Size() int {
	return c.size
}

func (c *Catalog) Pattern(id int) (Pattern, bool) {
	p, ok := c.patterns[id]
	return p, ok
}

// Build clears the region and paints pattern id.
func (c *Catalog) Build(id int, w arena.World, r arena.Region) (*arena.MaterialSet, error) {
	p, ok := c.patterns[id]
	if !ok {
		return nil, fmt.Errorf("pattern %d: %w", id, ErrUnknownPattern)
	}

	arena.Fill(w, r, arena.Air)
	return p.Build(w, c.rnd, r), nil
}

// BuildLayout paints a fixed layout outside the id space, e.g. the lobby or game over floor.
func (c *Catalog) BuildLayout(name string, w arena.World, r arena.Region) *arena.MaterialSet {
	return c.loader.Build(c.ctx, w, r, name)
}

package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/cache"
	"github.com/bloops-games/colorparty/internal/logging"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound = fmt.Errorf("layout not found")
	ErrEmpty    = fmt.Errorf("layout empty")
)

func NewLoader(dir string, cache cache.Cache) *Loader {
	return &Loader{dir: dir, cache: cache}
}

// Loader reads layout files from a directory, parsed layouts are kept in the cache.
type Loader struct {
	dir   string
	cache cache.Cache
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.dir, name+".json")
}

func (l *Loader) Load(ctx context.Context, name string) (*Layout, error) {
	logger := logging.FromContext(ctx).Named("layout.Load")
	if l.cache != nil {
		if v, ok := l.cache.Get(name); ok {
			return v.(*Layout), nil
		}
	}

	data, err := ioutil.ReadFile(l.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read layout %s: %w", name, err)
	}

	layout, err := Parse(ctx, name, data)
	if err != nil {
		return nil, err
	}

	logger.Debugf("loaded layout %s, %d cells", name, layout.Cells())
	if l.cache != nil {
		l.cache.Add(name, layout)
	}

	return layout, nil
}

// Parse decodes a layout document. Unknown materials, non-object entries and entries
// missing a coordinate are skipped and logged.
func Parse(ctx context.Context, name string, data []byte) (*Layout, error) {
	logger := logging.FromContext(ctx).Named("layout.Parse")

	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal layout %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	layout := &Layout{Name: name}
	for _, key := range keys {
		mat, ok := arena.ParseMaterial(key)
		if !ok {
			logger.Warnf("unknown material in layout %s: %s", name, key)
			continue
		}

		entry := Entry{Material: mat}
		for _, item := range raw[key] {
			var c struct {
				X *int `json:"x"`
				Z *int `json:"z"`
			}
			if err := json.Unmarshal(item, &c); err != nil || c.X == nil || c.Z == nil {
				continue
			}
			entry.Cells = append(entry.Cells, Coord{X: *c.X, Z: *c.Z})
		}
		if len(entry.Cells) == 0 {
			continue
		}
		layout.Entries = append(layout.Entries, entry)
	}

	if len(layout.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	return layout, nil
}

// Build paints layout name onto the region. Any load failure falls back to a plain
// light gray floor, the error is logged and never returned.
func (l *Loader) Build(ctx context.Context, w arena.World, r arena.Region, name string) *arena.MaterialSet {
	logger := logging.FromContext(ctx).Named("layout.Build")
	layout, err := l.Load(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warnf("layout %s not found, using fallback floor", name)
		} else {
			logger.Warnf("layout %s: %v, using fallback floor", name, err)
		}
		arena.Fill(w, r, arena.LightGrayTerracotta)
		return arena.NewMaterialSet()
	}

	return Apply(w, r, layout)
}

// Preload warms the cache with every named layout concurrently. Missing layouts are
// logged, the returned count is the number loaded.
func (l *Loader) Preload(ctx context.Context, names []string) (int, error) {
	logger := logging.FromContext(ctx).Named("layout.Preload")
	loaded := make([]bool, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := l.Load(gctx, name); err != nil {
				logger.Warnf("preload: %v", err)
				return nil
			}
			loaded[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("preload layouts: %w", err)
	}

	var n int
	for _, ok := range loaded {
		if ok {
			n++
		}
	}
	return n, nil
}

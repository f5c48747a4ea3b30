package chaos

import (
	"context"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/scheduler"
)

type Kind uint8

const (
	KindSnow Kind = iota + 1
	KindRollingColors
	KindWitherBombs
	KindChickenJockeys
)

var kinds = []Kind{KindSnow, KindRollingColors, KindWitherBombs, KindChickenJockeys}

func (k Kind) String() string {
	switch k {
	case KindSnow:
		return "snow"
	case KindRollingColors:
		return "rolling_colors"
	case KindWitherBombs:
		return "wither_bombs"
	case KindChickenJockeys:
		return "chicken_jockeys"
	default:
		return "unknown"
	}
}

type Config struct {
	Scheduler *scheduler.Scheduler
	Source    arena.Source
	Entities  entity.Store
	Rand      random.Source
	// Players returns the controllers the jockeys may knock back.
	Players func() []player.Controller
	// Region defaults to arena.Floor.
	Region arena.Region
}

func New(ctx context.Context, config Config) *Manager {
	if config.Region.Size == 0 {
		config.Region = arena.Floor
	}
	if config.Players == nil {
		config.Players = func() []player.Controller { return nil }
	}
	return &Manager{ctx: ctx, config: config}
}

// Manager runs at most one chaos effect at a time.
type Manager struct {
	ctx    context.Context
	config Config

	current *effect
}

// effect owns every task it scheduled and every actor it spawned.
type effect struct {
	kind   Kind
	tasks  scheduler.Group
	actors map[entity.Handle]struct{}
	// cleanup runs once on stop after tasks are cancelled and actors removed.
	cleanup func()
}

func (e *effect) own(h entity.Handle) entity.Handle {
	e.actors[h] = struct{}{}
	return h
}

func (e *effect) release(store entity.Store, h entity.Handle) {
	if _, ok := e.actors[h]; !ok {
		return
	}
	delete(e.actors, h)
	store.Remove(h)
}

// StartRandom stops any running effect and starts a uniformly chosen one.
func (m *Manager) StartRandom(roundTicks uint64) Kind {
	kind := kinds[random.Intn(m.config.Rand, len(kinds))]
	m.Start(kind, roundTicks)
	return kind
}

// Start stops any running effect and starts kind sized to roundTicks.
func (m *Manager) Start(kind Kind, roundTicks uint64) {
	logger := logging.FromContext(m.ctx).Named("chaos.Start")
	m.Stop()

	if _, ok := m.config.Source.World(); !ok {
		logger.Warnf("start %s: %v", kind, arena.ErrWorldUnavailable)
		return
	}

	e := &effect{kind: kind, actors: map[entity.Handle]struct{}{}}
	m.current = e

	switch kind {
	case KindSnow:
		m.startSnow(e, roundTicks)
	case KindRollingColors:
		m.startRolling(e)
	case KindWitherBombs:
		m.startWithers(e)
	case KindChickenJockeys:
		m.startJockeys(e)
	default:
		logger.Warnf("unknown chaos effect %d", kind)
		m.current = nil
		return
	}

	logger.Infof("chaos effect %s started for %d ticks", kind, roundTicks)
}

// Stop cancels every task of the running effect and removes its actors, it is a no-op when idle.
func (m *Manager) Stop() {
	e := m.current
	if e == nil {
		return
	}
	m.current = nil

	e.tasks.CancelAll()
	for h := range e.actors {
		m.config.Entities.Remove(h)
	}
	e.actors = nil
	if e.cleanup != nil {
		e.cleanup()
	}

	logging.FromContext(m.ctx).Named("chaos.Stop").Debugf("chaos effect %s stopped", e.kind)
}

// Active returns the kind of the running effect.
func (m *Manager) Active() (Kind, bool) {
	if m.current == nil {
		return 0, false
	}
	return m.current.kind, true
}

// Actors returns the number of live actors owned by the running effect.
func (m *Manager) Actors() int {
	if m.current == nil {
		return 0
	}
	return len(m.current.actors)
}

// Tasks returns the number of live tasks owned by the running effect.
func (m *Manager) Tasks() int {
	if m.current == nil {
		return 0
	}
	return m.current.tasks.Live()
}

func (m *Manager) randomCell() arena.Block {
	r := m.config.Region
	return arena.Block{
		X: r.StartX + random.Intn(m.config.Rand, r.Size),
		Y: r.Y,
		Z: r.StartZ + random.Intn(m.config.Rand, r.Size),
	}
}

func (m *Manager) randomTerracotta() arena.Material {
	return arena.Terracottas[random.Intn(m.config.Rand, len(arena.Terracottas))]
}

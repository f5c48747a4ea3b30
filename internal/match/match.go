package match

import (
	"context"
	"fmt"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/chaos"
	"github.com/bloops-games/colorparty/internal/elimination"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/pattern"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/powerup"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

var (
	ErrUnknownEvent  = fmt.Errorf("unknown event")
	ErrUnknownPlayer = fmt.Errorf("unknown player")
)

// resetRegion is the volume cleared before the lobby floor is rebuilt.
var resetRegion = arena.Region{StartX: -34, StartZ: -34, Size: 69}

const (
	resetMinY = 110
	resetMaxY = 130
)

type Config struct {
	Scheduler *scheduler.Scheduler
	Source    arena.Source
	Entities  entity.Store
	Catalog   *pattern.Catalog
	Rand      random.Source
	Ambience  Ambience

	CountdownSeconds int
	// OnGameOver receives the outcome once per finished match.
	OnGameOver func(summary Summary)
	Now        func() time.Time
}

// Result is the outcome of one participant.
type Result struct {
	PlayerID uuid.UUID
	Name     string
	Won      bool
	Rounds   int
}

type Summary struct {
	Winners    []string
	Rounds     int
	Crazy      bool
	Patterns   []int
	Results    []Result
	FinishedAt time.Time
}

// Status is a point in time view of the match.
type Status struct {
	Phase     string `json:"phase"`
	Round     int    `json:"round"`
	SafeColor string `json:"safeColor,omitempty"`
	Crazy     bool   `json:"crazy"`
	Players   int    `json:"players"`
	Active    int    `json:"active"`
}

func New(ctx context.Context, config Config) *Match {
	if config.CountdownSeconds <= 0 {
		config.CountdownSeconds = DefaultCountdownSeconds
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Ambience == nil {
		config.Ambience = NewLogAmbience(ctx, config.Rand)
	}
	if config.OnGameOver == nil {
		config.OnGameOver = func(Summary) {}
	}

	m := &Match{
		ctx:      ctx,
		config:   config,
		phase:    PhaseLobby,
		used:     arena.NewMaterialSet(),
		inGame:   player.NewRoster(),
		sessions: player.NewRegistry(),
		tracker:  elimination.New(),
		selector: pattern.NewSelector(config.Catalog.Size(), config.Rand),
	}

	m.powerups = powerup.New(ctx, powerup.Config{
		Scheduler: config.Scheduler,
		Source:    config.Source,
		Entities:  config.Entities,
		Rand:      config.Rand,
		SafeColor: func() arena.Material { return m.safeColor },
		Broadcast: m.broadcast,
		Now:       config.Now,
	})
	m.chaos = chaos.New(ctx, chaos.Config{
		Scheduler: config.Scheduler,
		Source:    config.Source,
		Entities:  config.Entities,
		Rand:      config.Rand,
		Players:   m.activeControllers,
	})
	m.interactions = m.interactionTable()

	return m
}

// Match is the state machine of one arena. It is driven from a single goroutine,
// every timer it schedules runs on that goroutine through the scheduler.
type Match struct {
	ctx    context.Context
	config Config

	phase     Phase
	round     int
	safeColor arena.Material
	used      *arena.MaterialSet
	crazy     bool
	patterns  []int

	participants []uuid.UUID
	reached      map[uuid.UUID]int

	inGame   *player.Roster
	sessions *player.Registry
	tracker  *elimination.Tracker
	selector *pattern.Selector
	powerups *powerup.Manager
	chaos    *chaos.Manager

	timers       scheduler.Group
	interactions map[string]interaction
}

// Handle applies one player event.
func (m *Match) Handle(ev interface{}) error {
	switch e := ev.(type) {
	case Join:
		return m.join(e.Controller)
	case Quit:
		return m.quit(e.ID)
	case Move:
		return m.move(e.ID, e.To)
	case Interact:
		return m.interact(e)
	default:
		return fmt.Errorf("%T: %w", ev, ErrUnknownEvent)
	}
}

func (m *Match) Phase() Phase {
	return m.phase
}

func (m *Match) Round() int {
	return m.round
}

func (m *Match) SafeColor() arena.Material {
	return m.safeColor
}

// UsedColors returns the colors painted this round.
func (m *Match) UsedColors() []arena.Material {
	return m.used.Slice()
}

func (m *Match) Crazy() bool {
	return m.crazy
}

// Players returns the ids of everyone in the arena in join order.
func (m *Match) Players() []uuid.UUID {
	return m.inGame.IDs()
}

// Active returns the ids still in play.
func (m *Match) Active() []uuid.UUID {
	return m.tracker.Active()
}

// Session returns the session of id.
func (m *Match) Session(id uuid.UUID) (*player.Session, bool) {
	return m.sessions.Get(id)
}

// Chaos exposes the chaos effect runner of the arena.
func (m *Match) Chaos() *chaos.Manager {
	return m.chaos
}

func (m *Match) Status() Status {
	st := Status{
		Phase:   m.phase.String(),
		Round:   m.round,
		Crazy:   m.crazy,
		Players: m.inGame.Len(),
		Active:  m.tracker.ActiveCount(),
	}
	if m.started() {
		st.SafeColor = m.safeColor.String()
	}
	return st
}

// started is true from "Go!" until the match is decided.
func (m *Match) started() bool {
	return m.phase == PhaseRoundActive || m.phase == PhaseFreeze || m.phase == PhasePostRoundDelay
}

func (m *Match) ended() bool {
	return m.phase == PhaseGameOver
}

func (m *Match) broadcast(text string) {
	m.sessions.Each(func(s *player.Session) {
		s.Controller.Message(text)
	})
}

func (m *Match) activeControllers() []player.Controller {
	ids := m.tracker.Active()
	out := make([]player.Controller, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.sessions.Get(id); ok {
			out = append(out, s.Controller)
		}
	}
	return out
}

func (m *Match) names(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.sessions.Get(id); ok {
			out = append(out, s.Name())
		}
	}
	return out
}

// ResetArena cancels every timer, clears the arena volume and rebuilds the lobby floor.
func (m *Match) ResetArena() {
	logger := logging.FromContext(m.ctx).Named("match.ResetArena")

	m.timers.CancelAll()
	m.chaos.Stop()
	m.powerups.Stop()
	m.config.Ambience.StopSong()

	m.phase = PhaseLobby
	m.round = 0
	m.crazy = false
	m.patterns = nil
	m.participants = nil
	m.reached = nil
	m.used = arena.NewMaterialSet()
	m.tracker.Reset()

	w, ok := m.config.Source.World()
	if !ok {
		logger.Warnf("reset arena: %v", arena.ErrWorldUnavailable)
		return
	}
	arena.Clear(w, resetRegion, resetMinY, resetMaxY)
	m.config.Catalog.BuildLayout(layout.NameStart, w, arena.Floor)
	logger.Info("arena reset")
}

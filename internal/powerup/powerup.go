package powerup

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/resource"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

type Kind uint8

const (
	KindLeapAxe Kind = iota
	KindColorCow
	KindJumpPotion
	KindSpeedPotion
	KindColorTrail
	KindTeleportClock
	KindRandomTeleport
	KindStarve
	KindMagicCarpet

	kindCount
)

const (
	// UsageLock blocks item use right after a grant so the beacon click is not also an item use.
	UsageLock = 250 * time.Millisecond

	cowFuseTicks    = 20
	cowRadius       = 3
	carpetPeriod    = 3
	PotionTicks     = 20 * scheduler.TicksPerSecond
	PotionAmplifier = 2
)

var announcements = map[Kind]string{
	KindLeapAxe:        resource.TextLeapAxeGrantMsg,
	KindColorCow:       resource.TextColorCowGrantMsg,
	KindJumpPotion:     resource.TextJumpPotionGrantMsg,
	KindSpeedPotion:    resource.TextSpeedPotionGrantMsg,
	KindColorTrail:     resource.TextColorTrailGrantMsg,
	KindTeleportClock:  resource.TextTeleportClockGrantMsg,
	KindRandomTeleport: resource.TextRandomTeleportGrantMsg,
	KindStarve:         resource.TextStarveGrantMsg,
	KindMagicCarpet:    resource.TextMagicCarpetGrantMsg,
}

// Grant is one powerup handed out for one beacon break.
type Grant struct {
	Kind   Kind
	Target uuid.UUID
}

type Config struct {
	Scheduler *scheduler.Scheduler
	Source    arena.Source
	Entities  entity.Store
	Rand      random.Source
	// SafeColor returns the color of the current round.
	SafeColor func() arena.Material
	Broadcast func(text string)
	Now       func() time.Time
}

func New(ctx context.Context, config Config) *Manager {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Manager{ctx: ctx, config: config, cows: map[entity.Handle]*scheduler.Task{}}
}

// Manager grants powerups and owns the timers they leave behind.
type Manager struct {
	ctx    context.Context
	config Config

	cows map[entity.Handle]*scheduler.Task
}

// Roll grants a uniformly chosen powerup to s for the beacon at beacon.
func (m *Manager) Roll(s *player.Session, beacon arena.Block) Grant {
	kind := Kind(random.Intn(m.config.Rand, int(kindCount)))
	return m.Apply(s, beacon, kind)
}

// Apply grants kind to s, announces it and locks item use for UsageLock.
func (m *Manager) Apply(s *player.Session, beacon arena.Block, kind Kind) Grant {
	logger := logging.FromContext(m.ctx).Named("powerup.Apply")
	c := s.Controller

	switch kind {
	case KindLeapAxe:
		c.Give(player.LeapAxeItem())
	case KindColorCow:
		m.spawnCow(beacon)
	case KindJumpPotion:
		c.Give(player.JumpPotionItem())
	case KindSpeedPotion:
		c.Give(player.SpeedPotionItem())
	case KindColorTrail:
		s.ColorTrail = true
	case KindTeleportClock:
		c.Give(player.TeleportItem())
	case KindRandomTeleport:
		m.randomTeleport(c)
	case KindStarve:
		s.Starved = true
		c.SetFood(0)
	case KindMagicCarpet:
		m.startCarpet(s)
	}

	if tmpl, ok := announcements[kind]; ok {
		m.config.Broadcast(fmt.Sprintf(tmpl, c.Name()))
	}
	s.Lock(m.config.Now(), UsageLock)
	logger.Debugf("%s received powerup %d", c.Name(), kind)

	return Grant{Kind: kind, Target: s.ID()}
}

func (m *Manager) randomTeleport(c player.Controller) {
	x := arena.StartX + random.Intn(m.config.Rand, arena.Size)
	z := arena.StartZ + random.Intn(m.config.Rand, arena.Size)
	c.Teleport(arena.Block{X: x, Y: arena.DecorY, Z: z}.Center(0))
	c.Message(resource.TextRandomTeleportMsg)
}

func (m *Manager) spawnCow(beacon arena.Block) {
	cow := m.config.Entities.Spawn(entity.KindCow, beacon.Center(0))
	task := m.config.Scheduler.RunLater(cowFuseTicks, func() {
		delete(m.cows, cow)
		m.detonateCow(cow)
	})
	m.cows[cow] = task
}

// detonateCow paints every non-air floor tile around the cow with the safe color.
func (m *Manager) detonateCow(cow entity.Handle) {
	logger := logging.FromContext(m.ctx).Named("powerup.detonateCow")
	pos, ok := m.config.Entities.Position(cow)
	m.config.Entities.Remove(cow)
	if !ok {
		return
	}

	w, ok := m.config.Source.World()
	if !ok {
		logger.Warnf("color cow: %v", arena.ErrWorldUnavailable)
		return
	}

	safe := m.config.SafeColor()
	center := pos.Block()
	for x := center.X - cowRadius; x <= center.X+cowRadius; x++ {
		for z := center.Z - cowRadius; z <= center.Z+cowRadius; z++ {
			d := math.Sqrt(pos.DistanceSquared(arena.Vec3{X: float64(x), Y: arena.FloorY, Z: float64(z)}))
			if d > cowRadius+0.5 {
				continue
			}
			if w.Block(x, arena.FloorY, z) != arena.Air {
				w.SetBlock(x, arena.FloorY, z, safe)
			}
		}
	}
}

func (m *Manager) startCarpet(s *player.Session) {
	s.AttachCarpet(m.config.Scheduler.RunTimer(1, carpetPeriod, func() {
		m.drawCarpet(s)
	}))
	m.drawCarpet(s)
}

// drawCarpet clears the previous glass and places a 3x3 platform under the player on air cells only.
func (m *Manager) drawCarpet(s *player.Session) {
	w, ok := m.config.Source.World()
	if !ok {
		s.DetachCarpet()
		return
	}

	clearGlass(w, s.CarpetCells())

	pos := s.Controller.Position().Block()
	var cells []arena.Block
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			x, z := pos.X+dx, pos.Z+dz
			if !arena.Floor.Contains(x, z) {
				continue
			}
			if w.Block(x, arena.FloorY, z) != arena.Air {
				continue
			}
			w.SetBlock(x, arena.FloorY, z, arena.Glass)
			cells = append(cells, arena.Block{X: x, Y: arena.FloorY, Z: z})
		}
	}
	s.SetCarpetCells(cells)
}

func clearGlass(w arena.World, cells []arena.Block) {
	for _, b := range cells {
		if w.Block(b.X, b.Y, b.Z) == arena.Glass {
			w.SetBlock(b.X, b.Y, b.Z, arena.Air)
		}
	}
}

// RemoveCarpet stops the magic carpet of s and clears its glass.
func (m *Manager) RemoveCarpet(s *player.Session) {
	cells := s.DetachCarpet()
	if w, ok := m.config.Source.World(); ok {
		clearGlass(w, cells)
	}
}

// RestoreStarved refills the hunger of a starved player.
func (m *Manager) RestoreStarved(s *player.Session) {
	if !s.Starved {
		return
	}
	s.Starved = false
	s.Controller.SetFood(player.FoodFull)
}

// Stop cancels pending color cows and removes them without detonating.
func (m *Manager) Stop() {
	for cow, task := range m.cows {
		task.Cancel()
		m.config.Entities.Remove(cow)
		delete(m.cows, cow)
	}
}

// PendingCows returns the number of cows waiting to detonate.
func (m *Manager) PendingCows() int {
	return len(m.cows)
}

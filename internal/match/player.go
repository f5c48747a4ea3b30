package match

import (
	"fmt"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/elimination"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/resource"
	"github.com/google/uuid"
)

// lobby platform cells next to the arena, players wait there until the countdown.
var (
	lobbyXs = []float64{-2.5, -1.5, -0.5, 0.5, 1.5, 2.5}
	lobbyZs = []float64{-65.5, -64.5, -63.5, -62.5, -61.5, -60.5}
)

const lobbyY = 123

func (m *Match) lobbySpawn() arena.Vec3 {
	return arena.Vec3{
		X: lobbyXs[random.Intn(m.config.Rand, len(lobbyXs))],
		Y: lobbyY,
		Z: lobbyZs[random.Intn(m.config.Rand, len(lobbyZs))],
	}
}

func (m *Match) spawnSlot() int {
	return random.Intn(m.config.Rand, len(arena.SpawnOffsets))
}

func (m *Match) join(c player.Controller) error {
	logger := logging.FromContext(m.ctx).Named("match.join")
	if !m.inGame.Add(c.ID()) {
		return nil
	}

	s := player.NewSession(c, m.config.Now())
	m.sessions.Put(s)
	m.config.Ambience.AddListener(c.ID())

	if m.started() || m.ended() {
		m.makeSpectator(s)
		c.Message(resource.TextSpectatingMsg)
		logger.Infof("%s joined as spectator", c.Name())
		return nil
	}

	m.tracker.Activate(c.ID())
	c.ClearInventory()
	c.SetItem(player.SlotStartNormal, player.StartNormalItem())
	c.SetItem(player.SlotStartCrazy, player.StartCrazyItem())
	c.SetItem(player.SlotExit, player.ExitItem())
	if m.phase == PhaseCountdown {
		// the floor is already occupied, wait there for the first round
		m.placeOnFloor(c)
		c.SetFlight(false, false)
	} else {
		c.Teleport(m.lobbySpawn())
		c.SetMode(player.ModeSurvival)
		c.ResetFall()
	}
	c.Message(resource.TextWelcomeMsg)

	logger.Infof("%s joined, %d players in arena", c.Name(), m.inGame.Len())
	return nil
}

func (m *Match) quit(id uuid.UUID) error {
	if !m.inGame.Contains(id) {
		return fmt.Errorf("quit %s: %w", id, ErrUnknownPlayer)
	}
	m.removePlayer(id)
	return nil
}

// exit releases the player back to the world outside the arena.
func (m *Match) exit(s *player.Session) {
	c := s.Controller
	c.SetMode(player.ModeSurvival)
	c.ResetFall()
	c.SetFlight(false, false)
	c.SetInvulnerable(false)
	c.SetWalkSpeed(player.DefaultWalkSpeed)
	c.ClearInventory()
	m.removePlayer(s.ID())
	c.Message(resource.TextExitedMsg)
}

// removePlayer drops id from the match, the arena resets once nobody is left.
func (m *Match) removePlayer(id uuid.UUID) {
	logger := logging.FromContext(m.ctx).Named("match.removePlayer")

	if s, ok := m.sessions.Delete(id); ok {
		m.powerups.RemoveCarpet(s)
	}
	m.inGame.Remove(id)
	wasActive := m.tracker.Remove(id)

	if m.inGame.Len() == 0 {
		logger.Info("arena empty")
		m.ResetArena()
		return
	}

	if wasActive && m.started() && m.tracker.ActiveCount() == 0 {
		m.endGame(m.tracker.Eliminated())
	}
}

func (m *Match) placeOnFloor(c player.Controller) {
	c.Teleport(arena.SpawnPoint(m.spawnSlot(), arena.DecorY))
	c.SetMode(player.ModeSurvival)
	c.ResetFall()
}

func (m *Match) placeObserver(c player.Controller) {
	c.Teleport(arena.SpawnPoint(m.spawnSlot(), arena.ObserverY))
	c.SetMode(player.ModeAdventure)
	c.SetFlight(true, true)
	c.SetInvulnerable(true)
}

// makeSpectator takes s out of play and leaves only the exit item.
func (m *Match) makeSpectator(s *player.Session) {
	c := s.Controller
	m.powerups.RemoveCarpet(s)
	s.ColorTrail = false
	s.Status = player.StatusSpectating

	m.placeObserver(c)
	c.ResetFall()
	c.ClearInventory()
	c.SetItem(player.SlotExit, player.ExitItem())
}

func (m *Match) move(id uuid.UUID, to arena.Vec3) error {
	s, ok := m.sessions.Get(id)
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrUnknownPlayer)
	}

	if s.ColorTrail {
		m.paintTrail(to)
	}
	if elimination.BelowVoid(to) {
		m.fall(s, to)
	}
	return nil
}

// paintTrail gives the tile under a trail carrier a 1 in trailOdds chance to change color.
func (m *Match) paintTrail(to arena.Vec3) {
	if to.Y < arena.FloorY {
		return
	}
	w, ok := m.config.Source.World()
	if !ok {
		return
	}

	b := to.Block()
	below := w.Block(b.X, arena.FloorY, b.Z)
	if below == arena.Air || random.Intn(m.config.Rand, trailOdds) != 0 {
		return
	}
	color := arena.Terracottas[random.Intn(m.config.Rand, len(arena.Terracottas))]
	if below == arena.LightGrayTerracotta && color == arena.LightGrayTerracotta {
		return
	}
	w.SetBlock(b.X, arena.FloorY, b.Z, color)
}

// fall handles a player dropping below the void level.
func (m *Match) fall(s *player.Session, at arena.Vec3) {
	c := s.Controller

	switch {
	case m.ended():
		m.placeObserver(c)
		c.SetFood(player.FoodFull)
	case m.started():
		if m.tracker.IsActive(s.ID()) {
			m.eliminate(s, at)
		}
		m.makeSpectator(s)
	default:
		m.placeOnFloor(c)
	}
}

func (m *Match) eliminate(s *player.Session, at arena.Vec3) {
	outcome := m.tracker.Eliminate(s.ID())
	m.reached[s.ID()] = m.round

	m.broadcast(fmt.Sprintf(resource.TextFellMsg, s.Name()))
	s.Controller.SetFood(player.FoodFull)
	if m.round < MaxRounds {
		m.config.Ambience.Lightning(at)
	}

	switch outcome {
	case elimination.OutcomeAllFallen:
		m.endGame(m.tracker.Eliminated())
	case elimination.OutcomeLastStanding:
		if last := m.names(m.tracker.Active()); len(last) == 1 {
			m.broadcast(fmt.Sprintf(resource.TextLastStandingMsg, last[0]))
			m.broadcast(resource.TextContinueAloneMsg)
		}
	}
}

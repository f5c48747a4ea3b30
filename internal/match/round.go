package match

import (
	"fmt"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/elimination"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/resource"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

// start moves the lobby into the countdown, it is a no-op once a countdown or a game is running.
func (m *Match) start(crazy bool) {
	if m.phase != PhaseLobby {
		return
	}

	m.crazy = crazy
	if crazy {
		m.broadcast(resource.TextStartingCrazyMsg)
	} else {
		m.broadcast(resource.TextStartingNormalMsg)
	}

	m.sessions.Each(func(s *player.Session) {
		m.placeOnFloor(s.Controller)
		s.Controller.SetFlight(false, false)
	})

	m.countdown(m.config.CountdownSeconds)
}

func (m *Match) countdown(seconds int) {
	m.phase = PhaseCountdown
	m.broadcast(fmt.Sprintf(resource.TextStartingInMsg, seconds))

	count := seconds
	var task *scheduler.Task
	task = m.timers.Add(m.config.Scheduler.RunTimer(secondTicks, secondTicks, func() {
		count--
		if count > 0 {
			m.broadcast(fmt.Sprintf(resource.TextStartingInMsg, count))
			return
		}
		task.Cancel()
		m.goRound()
	}))
}

// goRound ends the countdown and runs the first round.
func (m *Match) goRound() {
	logger := logging.FromContext(m.ctx).Named("match.goRound")
	m.broadcast(resource.TextGoMsg)

	m.phase = PhaseRoundActive
	m.round = 0
	m.patterns = nil
	m.participants = m.tracker.Active()
	m.reached = map[uuid.UUID]int{}
	m.tracker.BeginRound()

	m.sessions.Each(func(s *player.Session) {
		s.ColorTrail = false
		for _, slot := range []int{player.SlotStartNormal, player.SlotStartCrazy} {
			if item := s.Controller.Item(slot); item != nil && isStartItem(item) {
				s.Controller.SetItem(slot, nil)
			}
		}
		s.Controller.SetWalkSpeed(player.GameWalkSpeed)
		if m.tracker.IsActive(s.ID()) {
			s.Status = player.StatusActive
		}
	})

	m.config.Ambience.PlaySong(m.inGame.IDs())
	logger.Infof("match started, crazy %t, %d players", m.crazy, m.tracker.ActiveCount())
	m.doRound()
}

func isStartItem(item *player.Item) bool {
	return item.Label == player.LabelStartNormal || item.Label == player.LabelStartCrazy
}

// canRunRound guards the round step against stale timers.
func (m *Match) canRunRound() bool {
	fresh := m.phase == PhaseRoundActive && m.round == 0
	if !fresh && m.phase != PhasePostRoundDelay {
		return false
	}
	return m.tracker.ActiveCount() > 0 && m.round < MaxRounds
}

// doRound builds the next floor and schedules its freeze.
func (m *Match) doRound() {
	logger := logging.FromContext(m.ctx).Named("match.doRound")
	if !m.canRunRound() {
		return
	}

	m.chaos.Stop()
	m.sessions.Each(func(s *player.Session) {
		m.powerups.RestoreStarved(s)
		s.Controller.SetFood(player.FoodFull)
		m.powerups.RemoveCarpet(s)
	})

	m.phase = PhaseRoundActive
	m.round++
	m.tracker.BeginRound()
	m.broadcast(fmt.Sprintf(resource.TextRoundMsg, m.round, MaxRounds))

	m.used = m.buildFloor()
	if m.used.Len() == 0 {
		m.used.Add(arena.LightGrayTerracotta)
	}
	m.safeColor = m.used.At(random.Intn(m.config.Rand, m.used.Len()))

	if random.Chance(m.config.Rand, beaconChance) {
		m.spawnBeacons()
		m.broadcast(resource.TextPowerupsSpawnedMsg)
	}

	freeze := FreezeSeconds(m.round)
	if m.crazy {
		m.chaos.StartRandom(scheduler.Seconds(freeze + 3))
	}
	if bracketStart(m.round) {
		if freeze == 1 {
			m.broadcast(fmt.Sprintf(resource.TextRoundTimeSecondMsg, freeze))
		} else {
			m.broadcast(fmt.Sprintf(resource.TextRoundTimeSecondsMsg, freeze))
		}
	}

	logger.Debugf("round %d, safe color %s, %d colors", m.round, m.safeColor, m.used.Len())
	m.timers.Add(m.config.Scheduler.RunLater(graceTicks, func() {
		m.freeze(freeze)
	}))
}

func (m *Match) buildFloor() *arena.MaterialSet {
	logger := logging.FromContext(m.ctx).Named("match.buildFloor")
	w, ok := m.config.Source.World()
	if !ok {
		logger.Warnf("build floor: %v", arena.ErrWorldUnavailable)
		return arena.NewMaterialSet()
	}

	id := m.selector.Next()
	used, err := m.config.Catalog.Build(id, w, arena.Floor)
	if err != nil {
		logger.Errorf("build pattern: %v", err)
		return arena.NewMaterialSet()
	}
	m.patterns = append(m.patterns, id)

	return used
}

func (m *Match) spawnBeacons() {
	w, ok := m.config.Source.World()
	if !ok {
		return
	}
	for i := 0; i < beaconCount; i++ {
		x := arena.StartX + random.Intn(m.config.Rand, arena.Size)
		z := arena.StartZ + random.Intn(m.config.Rand, arena.Size)
		w.SetBlock(x, arena.DecorY, z, arena.Beacon)
	}
}

func (m *Match) removeBeacons() {
	w, ok := m.config.Source.World()
	if !ok {
		return
	}
	arena.Replace(w, decorLayer, arena.Beacon, arena.Air)
}

var decorLayer = arena.Region{StartX: arena.StartX, StartZ: arena.StartZ, Size: arena.Size, Y: arena.DecorY}

// freeze hands out the safe color and counts down before the unsafe floor is removed.
func (m *Match) freeze(seconds int) {
	if !m.started() {
		return
	}
	m.phase = PhaseFreeze
	safe := m.safeColor

	for _, c := range m.activeControllers() {
		c.SetItem(player.SlotSafeColor, player.SafeColorItem(safe))
	}

	t := seconds
	var task *scheduler.Task
	task = m.timers.Add(m.config.Scheduler.RunTimer(secondTicks, secondTicks, func() {
		if !m.started() {
			task.Cancel()
			return
		}
		if t > 0 {
			m.config.Ambience.Sound(SoundCountdownTick)
			m.broadcast(fmt.Sprintf(resource.TextFreezeTickMsg, t))
			t--
			return
		}
		task.Cancel()
		m.dropFloor(safe)
	}))
}

// dropFloor removes every unsafe block and schedules what follows the round.
func (m *Match) dropFloor(safe arena.Material) {
	m.config.Ambience.Sound(SoundFreeze)
	m.broadcast(resource.TextFreezeMsg)

	m.chaos.Stop()
	m.removeBeacons()
	if w, ok := m.config.Source.World(); ok {
		arena.Floor.Each(func(x, z int) {
			if w.Block(x, arena.FloorY, z) != safe {
				w.SetBlock(x, arena.FloorY, z, arena.Air)
			}
		})
	}

	m.sessions.Each(func(s *player.Session) {
		s.ColorTrail = false
	})
	for _, c := range m.activeControllers() {
		c.SetItem(player.SlotSafeColor, nil)
	}

	m.phase = PhasePostRoundDelay
	if m.round >= MaxRounds {
		m.timers.Add(m.config.Scheduler.RunLater(finalGraceTicks, m.finalize))
		return
	}
	m.timers.Add(m.config.Scheduler.RunLater(postRoundTicks, m.doRound))
}

// finalize declares the survivors of the last round as winners.
func (m *Match) finalize() {
	m.removeBeacons()
	if !m.started() {
		return
	}

	survivors := m.tracker.Active()
	m.endGame(survivors)
	for _, id := range survivors {
		if s, ok := m.sessions.Get(id); ok {
			m.makeSpectator(s)
		}
	}
}

// endGame announces winners at most once per match and shows the game over floor.
func (m *Match) endGame(winners []uuid.UUID) {
	logger := logging.FromContext(m.ctx).Named("match.endGame")

	m.timers.CancelAll()
	m.chaos.Stop()
	m.powerups.Stop()
	m.config.Ambience.StopSong()
	m.removeBeacons()
	m.sessions.Each(func(s *player.Session) {
		m.powerups.RemoveCarpet(s)
		s.ColorTrail = false
	})

	names := m.names(winners)
	if m.tracker.Declare() && len(names) > 0 {
		m.broadcast(fmt.Sprintf(resource.TextWinnersMsg, elimination.WinnerAnnouncement(names)))
	}
	m.broadcast(resource.TextRejoinMsg)

	if w, ok := m.config.Source.World(); ok {
		m.config.Catalog.BuildLayout(layout.NameGameOver, w, arena.Floor)
	}
	m.phase = PhaseGameOver

	logger.Infof("match over after %d rounds, winners %v", m.round, names)
	m.config.OnGameOver(m.summary(winners, names))
}

func (m *Match) summary(winners []uuid.UUID, names []string) Summary {
	won := make(map[uuid.UUID]bool, len(winners))
	for _, id := range winners {
		won[id] = true
	}

	sum := Summary{
		Winners:    names,
		Rounds:     m.round,
		Crazy:      m.crazy,
		Patterns:   append([]int(nil), m.patterns...),
		FinishedAt: m.config.Now(),
	}
	for _, id := range m.participants {
		s, ok := m.sessions.Get(id)
		if !ok {
			continue
		}
		rounds, fell := m.reached[id]
		if !fell {
			rounds = m.round
		}
		sum.Results = append(sum.Results, Result{
			PlayerID: id,
			Name:     s.Name(),
			Won:      won[id],
			Rounds:   rounds,
		})
	}
	return sum
}

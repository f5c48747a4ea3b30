package chaos

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/logging"
)

const (
	jockeyCount     = 7
	jockeyPeriod    = 10
	jockeySpeed     = 0.6
	jockeyRetarget  = 2.0
	jockeyReach     = 2.0
	knockback       = 1.2
	knockbackLift   = 0.35
	recolorAttempts = 16
)

type jockey struct {
	mount  entity.Handle
	rider  entity.Handle
	target arena.Vec3
}

func (m *Manager) jockeyTarget() arena.Vec3 {
	return m.randomCell().Center(1)
}

func (m *Manager) startJockeys(e *effect) {
	var jockeys []*jockey
	for i := 0; i < jockeyCount; i++ {
		pos := m.jockeyTarget()
		j := &jockey{
			mount:  e.own(m.config.Entities.Spawn(entity.KindChicken, pos)),
			rider:  e.own(m.config.Entities.Spawn(entity.KindZombie, pos)),
			target: m.jockeyTarget(),
		}
		if err := m.config.Entities.Mount(j.rider, j.mount); err != nil {
			e.release(m.config.Entities, j.rider)
			e.release(m.config.Entities, j.mount)
			continue
		}
		jockeys = append(jockeys, j)
	}

	e.tasks.Add(m.config.Scheduler.RunTimer(0, jockeyPeriod, func() {
		live := jockeys[:0]
		for _, j := range jockeys {
			if m.stepJockey(e, j) {
				live = append(live, j)
			}
		}
		jockeys = live
	}))
}

// stepJockey recolors the tile under the jockey, moves it and knocks back nearby players.
// It reports false once the pair is gone.
func (m *Manager) stepJockey(e *effect, j *jockey) bool {
	pos, ok := m.config.Entities.Position(j.mount)
	if !ok {
		e.release(m.config.Entities, j.rider)
		e.release(m.config.Entities, j.mount)
		return false
	}

	m.recolorBelow(pos)

	if pos.DistanceSquared(j.target) < jockeyRetarget {
		j.target = m.jockeyTarget()
	}
	dir := j.target.Sub(pos)
	if dir.X*dir.X+dir.Y*dir.Y+dir.Z*dir.Z > 0.5 {
		step := dir.Normalize().Scale(jockeySpeed)
		step.Y = 0
		if err := m.config.Entities.Move(j.mount, pos.Add(step)); err != nil {
			logging.FromContext(m.ctx).Named("chaos.stepJockey").Debugf("move jockey %s: %v", j.mount, err)
		}
	}

	for _, c := range m.config.Players() {
		p := c.Position()
		if p.DistanceSquared(pos) >= jockeyReach {
			continue
		}
		push := p.Sub(pos).Normalize()
		push.Y = knockbackLift
		c.Push(push.Scale(knockback))
	}
	return true
}

// recolorBelow paints the floor cell under pos with a different terracotta.
func (m *Manager) recolorBelow(pos arena.Vec3) {
	r := m.config.Region
	if pos.Y < float64(r.Y) {
		return
	}
	w, ok := m.config.Source.World()
	if !ok {
		return
	}

	b := pos.Block()
	old := w.Block(b.X, r.Y, b.Z)
	if old == arena.Air {
		return
	}
	color := m.randomTerracotta()
	for tries := 0; color == old && tries < recolorAttempts; tries++ {
		color = m.randomTerracotta()
	}
	w.SetBlock(b.X, r.Y, b.Z, color)
}

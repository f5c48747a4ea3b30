package chaos

import (
	"math"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/scheduler"
)

const (
	witherCount     = 4
	witherAltitude  = 10
	witherPeriod    = 5
	witherSpeed     = 0.6
	witherRetarget  = 4.0
	bombPeriod      = 40
	bombMargin      = 5
	bombSpeed       = 1.2
	bombLaunchLift  = 1.5
	splashRadius    = 3
	projectileLimit = 200
)

type wither struct {
	handle entity.Handle
	target arena.Vec3
}

type projectile struct {
	handle   entity.Handle
	velocity arena.Vec3
	target   arena.Vec3
	// remaining is the squared distance left to the target when launched.
	remaining float64
	steps     int
	task      *scheduler.Task
}

func (m *Manager) witherY() float64 {
	return float64(m.config.Region.Y + witherAltitude)
}

func (m *Manager) witherTarget() arena.Vec3 {
	return m.randomCell().Center(float64(witherAltitude))
}

func (m *Manager) startWithers(e *effect) {
	withers := make([]*wither, 0, witherCount)
	for i := 0; i < witherCount; i++ {
		h := e.own(m.config.Entities.Spawn(entity.KindWither, m.witherTarget()))
		withers = append(withers, &wither{handle: h, target: m.witherTarget()})
	}

	e.tasks.Add(m.config.Scheduler.RunTimer(0, witherPeriod, func() {
		for _, w := range withers {
			m.driftWither(w)
		}
	}))

	var shooter int
	e.tasks.Add(m.config.Scheduler.RunTimer(0, bombPeriod, func() {
		if len(withers) == 0 {
			return
		}
		w := withers[shooter%len(withers)]
		shooter++
		m.launchBomb(e, w)
	}))
}

// driftWither moves the wither one step toward its target at constant altitude.
func (m *Manager) driftWither(w *wither) {
	pos, ok := m.config.Entities.Position(w.handle)
	if !ok {
		return
	}
	if pos.DistanceSquared(w.target) < witherRetarget {
		w.target = m.witherTarget()
	}

	dir := w.target.Sub(pos)
	dir.Y = 0
	if dir.X*dir.X+dir.Z*dir.Z <= 1.0 {
		return
	}
	next := pos.Add(dir.Normalize().Scale(witherSpeed))
	next.Y = m.witherY()
	if err := m.config.Entities.Move(w.handle, next); err != nil {
		logging.FromContext(m.ctx).Named("chaos.driftWither").Debugf("move wither %s: %v", w.handle, err)
	}
}

// launchBomb fires a projectile from the wither toward a random point inside the margin.
func (m *Manager) launchBomb(e *effect, w *wither) {
	r := m.config.Region
	if r.Size <= bombMargin*2 {
		return
	}
	pos, ok := m.config.Entities.Position(w.handle)
	if !ok {
		return
	}

	inner := r.Size - bombMargin*2
	target := arena.Block{
		X: r.StartX + bombMargin + random.Intn(m.config.Rand, inner),
		Y: r.Y,
		Z: r.StartZ + bombMargin + random.Intn(m.config.Rand, inner),
	}.Center(0)

	start := pos.Add(arena.Vec3{Y: bombLaunchLift})
	p := &projectile{
		handle:    e.own(m.config.Entities.Spawn(entity.KindSkull, start)),
		velocity:  target.Sub(start).Normalize().Scale(bombSpeed),
		target:    target,
		remaining: start.DistanceSquared(target),
	}
	p.task = e.tasks.Add(m.config.Scheduler.RunTimer(1, 1, func() {
		m.stepProjectile(e, p)
	}))
}

// stepProjectile advances p by one tick and detonates it once it reaches the floor or passes its target.
func (m *Manager) stepProjectile(e *effect, p *projectile) {
	pos, ok := m.config.Entities.Position(p.handle)
	if !ok {
		p.task.Cancel()
		return
	}

	next := pos.Add(p.velocity)
	p.steps++
	traveled := p.velocity.Length() * float64(p.steps)
	floor := float64(m.config.Region.Y + 1)

	if next.Y > floor && traveled*traveled < p.remaining && p.steps < projectileLimit {
		if err := m.config.Entities.Move(p.handle, next); err != nil {
			logging.FromContext(m.ctx).Named("chaos.stepProjectile").Debugf("move projectile %s: %v", p.handle, err)
		}
		return
	}

	impact := next
	if traveled*traveled >= p.remaining {
		impact = p.target
	}

	p.task.Cancel()
	e.release(m.config.Entities, p.handle)
	m.splash(impact)
}

// splash recolors non-air floor cells around impact, impacts outside the region change nothing.
func (m *Manager) splash(impact arena.Vec3) int {
	r := m.config.Region
	ix, iz := int(math.Floor(impact.X)), int(math.Floor(impact.Z))
	if !r.Contains(ix, iz) {
		return 0
	}

	w, ok := m.config.Source.World()
	if !ok {
		logging.FromContext(m.ctx).Named("chaos.splash").Warnf("bomb impact: %v", arena.ErrWorldUnavailable)
		return 0
	}

	color := m.randomTerracotta()
	var n int
	for x := ix - splashRadius; x <= ix+splashRadius; x++ {
		for z := iz - splashRadius; z <= iz+splashRadius; z++ {
			dx, dz := float64(x-ix), float64(z-iz)
			if math.Sqrt(dx*dx+dz*dz) > splashRadius+0.5 {
				continue
			}
			if !r.Contains(x, z) || w.Block(x, r.Y, z) == arena.Air {
				continue
			}
			w.SetBlock(x, r.Y, z, color)
			n++
		}
	}
	return n
}

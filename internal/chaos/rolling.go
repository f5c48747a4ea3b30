package chaos

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
)

const rollingPeriod = 10

func (m *Manager) startRolling(e *effect) {
	e.tasks.Add(m.config.Scheduler.RunTimer(0, rollingPeriod, func() {
		w, ok := m.config.Source.World()
		if !ok {
			logging.FromContext(m.ctx).Named("chaos.startRolling").Warnf("rolling colors: %v", arena.ErrWorldUnavailable)
			m.Stop()
			return
		}
		roll(w, m.config.Region)
	}))
}

// roll shifts every row of the region one cell east, the east edge wraps to the west edge.
func roll(w arena.World, r arena.Region) {
	east := r.StartX + r.Size - 1
	for z := r.StartZ; z < r.StartZ+r.Size; z++ {
		saved := w.Block(east, r.Y, z)
		for x := east - 1; x >= r.StartX; x-- {
			w.SetBlock(x+1, r.Y, z, w.Block(x, r.Y, z))
		}
		w.SetBlock(r.StartX, r.Y, z, saved)
	}
}

package chaos

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/scheduler"
)

const (
	snowIntervals   = 16
	snowPerInterval = 128
	snowAttempts    = snowPerInterval * 10
)

// startSnow spreads snowIntervals batches of snow evenly over the round.
func (m *Manager) startSnow(e *effect, roundTicks uint64) {
	interval := roundTicks / snowIntervals
	if interval == 0 {
		interval = 1
	}

	var runs int
	var task *scheduler.Task
	task = e.tasks.Add(m.config.Scheduler.RunTimer(0, interval, func() {
		m.placeSnow()
		runs++
		if runs >= snowIntervals {
			task.Cancel()
		}
	}))
	e.cleanup = m.clearSnow
}

// placeSnow drops up to snowPerInterval snow blocks on free cells above the floor.
func (m *Manager) placeSnow() int {
	w, ok := m.config.Source.World()
	if !ok {
		logging.FromContext(m.ctx).Named("chaos.placeSnow").Warnf("snow: %v", arena.ErrWorldUnavailable)
		return 0
	}

	var placed int
	for attempts := 0; placed < snowPerInterval && attempts < snowAttempts; attempts++ {
		cell := m.randomCell()
		if w.Block(cell.X, cell.Y+1, cell.Z) != arena.Air {
			continue
		}
		below := w.Block(cell.X, cell.Y, cell.Z)
		if below == arena.Air || below == arena.Beacon {
			continue
		}
		w.SetBlock(cell.X, cell.Y+1, cell.Z, arena.Snow)
		placed++
	}
	return placed
}

func (m *Manager) clearSnow() {
	w, ok := m.config.Source.World()
	if !ok {
		return
	}
	r := m.config.Region
	arena.Replace(w, arena.Region{StartX: r.StartX, StartZ: r.StartZ, Size: r.Size, Y: r.Y + 1}, arena.Snow, arena.Air)
}

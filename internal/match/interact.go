package match

import (
	"fmt"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
)

// interaction is one row of the dispatch table, keyed by item label.
type interaction struct {
	rightClickOnly bool
	// consume removes the item from the slot after use.
	consume bool
	fn      func(s *player.Session)
}

func (m *Match) interactionTable() map[string]interaction {
	return map[string]interaction{
		player.LabelStartNormal: {fn: func(*player.Session) { m.start(false) }},
		player.LabelStartCrazy:  {fn: func(*player.Session) { m.start(true) }},
		player.LabelExit:        {fn: m.exit},
		player.LabelLeapAxe: {rightClickOnly: true, consume: true, fn: func(s *player.Session) {
			m.powerups.Leap(s.Controller)
		}},
		player.LabelJumpPotion: {consume: true, fn: func(s *player.Session) {
			m.powerups.Drink(s.Controller, player.LabelJumpPotion)
		}},
		player.LabelSpeedPotion: {consume: true, fn: func(s *player.Session) {
			m.powerups.Drink(s.Controller, player.LabelSpeedPotion)
		}},
		player.LabelTeleport: {consume: true, fn: func(s *player.Session) {
			m.powerups.TeleportToSafeTile(s.Controller)
		}},
	}
}

func (m *Match) interact(ev Interact) error {
	logger := logging.FromContext(m.ctx).Named("match.interact")
	s, ok := m.sessions.Get(ev.ID)
	if !ok {
		return fmt.Errorf("interact %s: %w", ev.ID, ErrUnknownPlayer)
	}
	if s.Locked(m.config.Now()) {
		return nil
	}

	if ev.Action == ActionLeftClickBlock && ev.Block != nil && m.breakBeacon(s, *ev.Block) {
		return nil
	}

	item := s.Controller.Item(ev.Slot)
	if item == nil {
		return nil
	}
	row, ok := m.interactions[item.Label]
	if !ok {
		return nil
	}
	if row.rightClickOnly && ev.Action != ActionRightClick {
		return nil
	}

	// the handler may drop the session, consume first
	if row.consume {
		s.Controller.SetItem(ev.Slot, nil)
	}
	row.fn(s)
	logger.Debugf("%s used %s", s.Name(), item.Label)

	return nil
}

// breakBeacon grants a powerup when b holds a beacon.
func (m *Match) breakBeacon(s *player.Session, b arena.Block) bool {
	w, ok := m.config.Source.World()
	if !ok || w.Block(b.X, b.Y, b.Z) != arena.Beacon {
		return false
	}
	w.SetBlock(b.X, b.Y, b.Z, arena.Air)
	m.powerups.Roll(s, b)
	return true
}

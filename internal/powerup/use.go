package powerup

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/resource"
)

const leapStrength = 1.4

// Leap launches the player along their look direction.
func (m *Manager) Leap(c player.Controller) {
	v := c.Direction().Normalize().Scale(leapStrength)
	v.Y += 0.1
	c.Push(v)
	c.ResetFall()
}

// Drink applies the potion effect matching the item label, ok is false for unknown potions.
func (m *Manager) Drink(c player.Controller, label string) bool {
	switch label {
	case player.LabelJumpPotion:
		c.AddEffect(player.EffectJumpBoost, PotionTicks, PotionAmplifier)
	case player.LabelSpeedPotion:
		c.AddEffect(player.EffectSpeed, PotionTicks, PotionAmplifier)
	default:
		return false
	}
	return true
}

// TeleportToSafeTile moves the player onto a random tile of the safe color.
func (m *Manager) TeleportToSafeTile(c player.Controller) bool {
	logger := logging.FromContext(m.ctx).Named("powerup.TeleportToSafeTile")
	w, ok := m.config.Source.World()
	if !ok {
		logger.Warnf("teleport %s: %v", c.Name(), arena.ErrWorldUnavailable)
		return false
	}

	safe := m.config.SafeColor()
	var tiles []arena.Block
	arena.Floor.Each(func(x, z int) {
		if w.Block(x, arena.FloorY, z) == safe {
			tiles = append(tiles, arena.Block{X: x, Y: arena.FloorY, Z: z})
		}
	})

	if len(tiles) == 0 {
		c.Message(resource.TextNoSafeTileMsg)
		return false
	}

	c.Teleport(tiles[random.Intn(m.config.Rand, len(tiles))].Center(1.1))
	c.Message(resource.TextSafeTeleportMsg)
	return true
}

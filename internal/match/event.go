package match

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/google/uuid"
)

// Join adds a player to the arena.
type Join struct {
	Controller player.Controller
}

// Quit removes a disconnected player without any message.
type Quit struct {
	ID uuid.UUID
}

// Move reports the new position of a player.
type Move struct {
	ID uuid.UUID
	To arena.Vec3
}

type Action uint8

const (
	ActionLeftClickBlock Action = iota + 1
	ActionLeftClickAir
	ActionRightClick
)

// Interact is a click with the item held in Slot, Block is set for block clicks.
type Interact struct {
	ID     uuid.UUID
	Action Action
	Block  *arena.Block
	Slot   int
}

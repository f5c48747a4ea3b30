package player

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/google/uuid"
)

type Mode uint8

const (
	ModeSurvival Mode = iota + 1
	ModeAdventure
)

type Effect uint8

const (
	EffectJumpBoost Effect = iota + 1
	EffectSpeed
)

const (
	FoodFull = 20
	// DefaultWalkSpeed is restored when a player leaves the arena.
	DefaultWalkSpeed = 0.2
	GameWalkSpeed    = 0.24
)

// Controller is the player entity as the engine sees it.
type Controller interface {
	ID() uuid.UUID
	Name() string

	Position() arena.Vec3
	Teleport(pos arena.Vec3)
	// Direction is the unit look vector.
	Direction() arena.Vec3
	Push(velocity arena.Vec3)

	SetMode(mode Mode)
	SetFlight(allow, flying bool)
	SetInvulnerable(v bool)
	ResetFall()
	SetWalkSpeed(speed float64)
	SetFood(level int)

	Item(slot int) *Item
	SetItem(slot int, item *Item)
	// Give puts item into the first free slot.
	Give(item *Item)
	ClearInventory()

	AddEffect(effect Effect, ticks int, amplifier int)
	Message(text string)
}

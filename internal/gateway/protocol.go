package gateway

import (
	"fmt"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/match"
	"github.com/bloops-games/colorparty/internal/player"
)

const (
	TypeMove     = "move"
	TypeInteract = "interact"
	TypeMessage  = "message"
	TypeWelcome  = "welcome"

	TypeTeleport       = "teleport"
	TypeVelocity       = "velocity"
	TypeItem           = "item"
	TypeInventoryClear = "inventory_clear"
	TypeMode           = "mode"
)

var ErrUnknownAction = fmt.Errorf("unknown action")

var actions = map[string]match.Action{
	"left_click_block": match.ActionLeftClickBlock,
	"left_click_air":   match.ActionLeftClickAir,
	"right_click":      match.ActionRightClick,
}

var modes = map[player.Mode]string{
	player.ModeSurvival:  "survival",
	player.ModeAdventure: "adventure",
}

// clientMessage is everything a client may send, Type selects the fields that matter.
type clientMessage struct {
	Type string `json:"type"`

	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	Z    float64     `json:"z"`
	Look *arena.Vec3 `json:"look,omitempty"`

	Action string       `json:"action,omitempty"`
	Block  *arena.Block `json:"block,omitempty"`
	Slot   int          `json:"slot"`
}

// serverMessage is everything the arena pushes to a client. An item message without
// an item empties the slot.
type serverMessage struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Text string `json:"text,omitempty"`

	Position *arena.Vec3  `json:"position,omitempty"`
	Velocity *arena.Vec3  `json:"velocity,omitempty"`
	Slot     *int         `json:"slot,omitempty"`
	Item     *player.Item `json:"item,omitempty"`
	Mode     string       `json:"mode,omitempty"`
}

func parseAction(name string) (match.Action, error) {
	a, ok := actions[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAction)
	}
	return a, nil
}

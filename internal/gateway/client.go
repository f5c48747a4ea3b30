package gateway

import (
	"context"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/google/uuid"
)

const outboxSize = 64

var _ player.Controller = (*client)(nil)

func newClient(ctx context.Context, id uuid.UUID, name string) *client {
	return &client{
		Memory: player.NewMemory(id, name),
		ctx:    ctx,
		out:    make(chan serverMessage, outboxSize),
	}
}

// client mirrors the connected player entity. Every change the arena makes to the
// mirror is also pushed to the socket so the client can follow it, chat lines are
// only pushed.
type client struct {
	*player.Memory

	ctx context.Context
	out chan serverMessage
}

// push is called from the arena goroutine and must not block it.
func (c *client) push(msg serverMessage) {
	select {
	case c.out <- msg:
	default:
		logging.FromContext(c.ctx).Named("gateway.push").Warnf("outbox of %s full, dropping %s", c.Name(), msg.Type)
	}
}

func (c *client) Message(text string) {
	c.push(serverMessage{Type: TypeMessage, Text: text})
}

func (c *client) Teleport(pos arena.Vec3) {
	c.Memory.Teleport(pos)
	c.push(serverMessage{Type: TypeTeleport, Position: &pos})
}

func (c *client) Push(velocity arena.Vec3) {
	c.Memory.Push(velocity)
	c.push(serverMessage{Type: TypeVelocity, Velocity: &velocity})
}

func (c *client) SetMode(mode player.Mode) {
	c.Memory.SetMode(mode)
	c.push(serverMessage{Type: TypeMode, Mode: modes[mode]})
}

func (c *client) SetItem(slot int, item *player.Item) {
	if slot < 0 || slot >= player.InventorySize {
		return
	}
	c.Memory.SetItem(slot, item)
	c.push(serverMessage{Type: TypeItem, Slot: &slot, Item: item})
}

// Give puts item into the first empty slot, a full inventory drops it.
func (c *client) Give(item *player.Item) {
	for slot := 0; slot < player.InventorySize; slot++ {
		if c.Item(slot) == nil {
			c.SetItem(slot, item)
			return
		}
	}
}

func (c *client) ClearInventory() {
	c.Memory.ClearInventory()
	c.push(serverMessage{Type: TypeInventoryClear})
}

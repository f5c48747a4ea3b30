package player

import (
	"sync"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/google/uuid"
)

// AppliedEffect records a status effect handed to a Memory controller.
type AppliedEffect struct {
	Effect    Effect
	Ticks     int
	Amplifier int
}

var _ Controller = (*Memory)(nil)

func NewMemory(id uuid.UUID, name string) *Memory {
	return &Memory{
		id:        id,
		name:      name,
		mode:      ModeSurvival,
		food:      FoodFull,
		walkSpeed: DefaultWalkSpeed,
		direction: arena.Vec3{Z: 1},
	}
}

// Memory is a Controller that keeps the player entity in process memory.
type Memory struct {
	mtx sync.RWMutex

	id   uuid.UUID
	name string

	position     arena.Vec3
	direction    arena.Vec3
	velocity     arena.Vec3
	mode         Mode
	allowFlight  bool
	flying       bool
	invulnerable bool
	fallResets   int
	walkSpeed    float64
	food         int

	inventory [InventorySize]*Item
	effects   []AppliedEffect
	messages  []string
}

func (m *Memory) ID() uuid.UUID {
	return m.id
}

func (m *Memory) Name() string {
	return m.name
}

func (m *Memory) Position() arena.Vec3 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.position
}

func (m *Memory) Teleport(pos arena.Vec3) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.position = pos
}

func (m *Memory) Direction() arena.Vec3 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.direction
}

// Look changes the look vector.
func (m *Memory) Look(dir arena.Vec3) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.direction = dir.Normalize()
}

func (m *Memory) Push(velocity arena.Vec3) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.velocity = velocity
}

func (m *Memory) Velocity() arena.Vec3 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.velocity
}

func (m *Memory) SetMode(mode Mode) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.mode = mode
}

func (m *Memory) Mode() Mode {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.mode
}

func (m *Memory) SetFlight(allow, flying bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.allowFlight = allow
	m.flying = flying
}

func (m *Memory) Flying() bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.flying
}

func (m *Memory) SetInvulnerable(v bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.invulnerable = v
}

func (m *Memory) Invulnerable() bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.invulnerable
}

func (m *Memory) ResetFall() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.fallResets++
}

func (m *Memory) SetWalkSpeed(speed float64) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.walkSpeed = speed
}

func (m *Memory) WalkSpeed() float64 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.walkSpeed
}

func (m *Memory) SetFood(level int) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.food = level
}

func (m *Memory) Food() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.food
}

func (m *Memory) Item(slot int) *Item {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	if slot < 0 || slot >= InventorySize {
		return nil
	}
	return m.inventory[slot]
}

func (m *Memory) SetItem(slot int, item *Item) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if slot < 0 || slot >= InventorySize {
		return
	}
	m.inventory[slot] = item
}

func (m *Memory) Give(item *Item) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	for i := range m.inventory {
		if m.inventory[i] == nil {
			m.inventory[i] = item
			return
		}
	}
}

// Find returns the first slot holding an item with label, or -1.
func (m *Memory) Find(label string) int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	for i, it := range m.inventory {
		if it != nil && it.Label == label {
			return i
		}
	}
	return -1
}

func (m *Memory) ClearInventory() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.inventory = [InventorySize]*Item{}
}

func (m *Memory) AddEffect(effect Effect, ticks int, amplifier int) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.effects = append(m.effects, AppliedEffect{Effect: effect, Ticks: ticks, Amplifier: amplifier})
}

func (m *Memory) Effects() []AppliedEffect {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	out := make([]AppliedEffect, len(m.effects))
	copy(out, m.effects)
	return out
}

func (m *Memory) Message(text string) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.messages = append(m.messages, text)
}

func (m *Memory) Messages() []string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

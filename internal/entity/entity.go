package entity

import (
	"fmt"
	"sync"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/google/uuid"
)

type Kind uint8

const (
	KindWither Kind = iota + 1
	KindSkull
	KindChicken
	KindZombie
	KindCow
)

var ErrUnknownHandle = fmt.Errorf("unknown entity handle")

// Handle is an opaque reference to a spawned actor.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Store spawns and drives non-player actors.
type Store interface {
	Spawn(kind Kind, pos arena.Vec3) Handle
	Move(h Handle, pos arena.Vec3) error
	Position(h Handle) (arena.Vec3, bool)
	Mount(rider, vehicle Handle) error
	Remove(h Handle)
}

type actor struct {
	kind      Kind
	pos       arena.Vec3
	vehicle   *Handle
	passenger *Handle
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{actors: map[Handle]*actor{}}
}

// Memory keeps actors in process memory, riders follow their vehicle.
type Memory struct {
	mtx    sync.RWMutex
	actors map[Handle]*actor
}

func (m *Memory) Spawn(kind Kind, pos arena.Vec3) Handle {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	h := Handle(uuid.New())
	m.actors[h] = &actor{kind: kind, pos: pos}
	return h
}

func (m *Memory) Move(h Handle, pos arena.Vec3) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	a, ok := m.actors[h]
	if !ok {
		return ErrUnknownHandle
	}
	a.pos = pos
	if a.passenger != nil {
		if rider, ok := m.actors[*a.passenger]; ok {
			rider.pos = pos.Add(arena.Vec3{Y: 1})
		}
	}
	return nil
}

func (m *Memory) Position(h Handle) (arena.Vec3, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	a, ok := m.actors[h]
	if !ok {
		return arena.Vec3{}, false
	}
	return a.pos, true
}

func (m *Memory) Mount(rider, vehicle Handle) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	r, ok := m.actors[rider]
	if !ok {
		return fmt.Errorf("rider %s: %w", rider, ErrUnknownHandle)
	}
	v, ok := m.actors[vehicle]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", vehicle, ErrUnknownHandle)
	}
	r.vehicle = &vehicle
	v.passenger = &rider
	r.pos = v.pos.Add(arena.Vec3{Y: 1})
	return nil
}

func (m *Memory) Remove(h Handle) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	a, ok := m.actors[h]
	if !ok {
		return
	}
	if a.vehicle != nil {
		if v, ok := m.actors[*a.vehicle]; ok {
			v.passenger = nil
		}
	}
	if a.passenger != nil {
		if r, ok := m.actors[*a.passenger]; ok {
			r.vehicle = nil
		}
	}
	delete(m.actors, h)
}

// Count returns the number of live actors, kind 0 counts every kind.
func (m *Memory) Count(kind Kind) int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	var n int
	for _, a := range m.actors {
		if kind == 0 || a.kind == kind {
			n++
		}
	}
	return n
}

package player

import (
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"github.com/google/uuid"
)

const (
	StatusLobby uint8 = iota + 1
	StatusActive
	StatusSpectating
)

// Session holds the per-player state that lives as long as the player is in the arena.
type Session struct {
	Controller Controller

	Status         uint8
	ColorTrail     bool
	MagicCarpet    bool
	Starved        bool
	UsageLockUntil time.Time
	JoinedAt       time.Time

	carpetTask  *scheduler.Task
	carpetCells []arena.Block
}

func NewSession(c Controller, now time.Time) *Session {
	return &Session{Controller: c, Status: StatusLobby, JoinedAt: now}
}

func (s *Session) ID() uuid.UUID {
	return s.Controller.ID()
}

func (s *Session) Name() string {
	return s.Controller.Name()
}

// Locked reports whether item use is blocked at now.
func (s *Session) Locked(now time.Time) bool {
	return now.Before(s.UsageLockUntil)
}

func (s *Session) Lock(now time.Time, d time.Duration) {
	s.UsageLockUntil = now.Add(d)
}

// AttachCarpet stores the task redrawing the player's magic carpet.
func (s *Session) AttachCarpet(t *scheduler.Task) {
	s.carpetTask.Cancel()
	s.carpetTask = t
	s.MagicCarpet = true
}

// CarpetCells returns the glass cells placed by the last redraw.
func (s *Session) CarpetCells() []arena.Block {
	return s.carpetCells
}

func (s *Session) SetCarpetCells(cells []arena.Block) {
	s.carpetCells = cells
}

// DetachCarpet cancels the redraw task and returns the cells still holding glass.
func (s *Session) DetachCarpet() []arena.Block {
	s.carpetTask.Cancel()
	s.carpetTask = nil
	s.MagicCarpet = false
	cells := s.carpetCells
	s.carpetCells = nil
	return cells
}

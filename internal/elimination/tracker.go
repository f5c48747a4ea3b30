package elimination

import (
	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/google/uuid"
)

// Outcome describes what a fall meant for the match.
type Outcome uint8

const (
	// OutcomeIgnored means the player was not active, nothing changed.
	OutcomeIgnored Outcome = iota + 1
	OutcomeEliminated
	OutcomeLastStanding
	OutcomeAllFallen
)

// BelowVoid reports whether pos is under the void threshold.
func BelowVoid(pos arena.Vec3) bool {
	return pos.Y < arena.VoidLevel
}

func New() *Tracker {
	return &Tracker{active: player.NewRoster(), eliminated: player.NewRoster()}
}

// Tracker keeps the active players of a match and who fell in the current round.
type Tracker struct {
	active     *player.Roster
	eliminated *player.Roster
	declared   bool
}

func (t *Tracker) Activate(id uuid.UUID) {
	t.active.Add(id)
}

// Remove drops id from every set without counting it as a fall.
func (t *Tracker) Remove(id uuid.UUID) bool {
	t.eliminated.Remove(id)
	return t.active.Remove(id)
}

func (t *Tracker) IsActive(id uuid.UUID) bool {
	return t.active.Contains(id)
}

// Active returns the active ids in join order.
func (t *Tracker) Active() []uuid.UUID {
	return t.active.IDs()
}

func (t *Tracker) ActiveCount() int {
	return t.active.Len()
}

// Eliminated returns the players who fell this round in fall order.
func (t *Tracker) Eliminated() []uuid.UUID {
	return t.eliminated.IDs()
}

// BeginRound forgets the falls of the previous round.
func (t *Tracker) BeginRound() {
	t.eliminated.Clear()
}

// Eliminate moves an active player out of play.
func (t *Tracker) Eliminate(id uuid.UUID) Outcome {
	if !t.active.Remove(id) {
		return OutcomeIgnored
	}
	t.eliminated.Add(id)

	switch t.active.Len() {
	case 0:
		return OutcomeAllFallen
	case 1:
		return OutcomeLastStanding
	default:
		return OutcomeEliminated
	}
}

// Declare reports true the first time it is called for a match.
func (t *Tracker) Declare() bool {
	if t.declared {
		return false
	}
	t.declared = true
	return true
}

func (t *Tracker) Declared() bool {
	return t.declared
}

// Reset empties the tracker for a new match.
func (t *Tracker) Reset() {
	t.active.Clear()
	t.eliminated.Clear()
	t.declared = false
}

package match

import "github.com/bloops-games/colorparty/internal/scheduler"

type Phase uint8

const (
	PhaseLobby Phase = iota + 1
	PhaseCountdown
	PhaseRoundActive
	PhaseFreeze
	PhasePostRoundDelay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseCountdown:
		return "countdown"
	case PhaseRoundActive:
		return "round_active"
	case PhaseFreeze:
		return "freeze"
	case PhasePostRoundDelay:
		return "post_round_delay"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	MaxRounds = 25

	DefaultCountdownSeconds = 5

	graceTicks      = 3 * scheduler.TicksPerSecond
	postRoundTicks  = 65
	finalGraceTicks = 80
	secondTicks     = scheduler.TicksPerSecond

	beaconCount  = 3
	beaconChance = 60
	// trailOdds is the 1 in n chance a color trail repaints the tile under a player.
	trailOdds = 5
)

// FreezeSeconds returns the freeze countdown length for round.
func FreezeSeconds(round int) int {
	switch {
	case round >= 21:
		return 1
	case round >= 16:
		return 2
	case round >= 11:
		return 3
	case round >= 6:
		return 4
	default:
		return 5
	}
}

// bracketStart reports whether round is the first round of a shorter freeze bracket.
func bracketStart(round int) bool {
	return round > 1 && FreezeSeconds(round) < FreezeSeconds(round-1)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// NewResult returns a result record with a fresh id.
func NewResult(playerID uuid.UUID, name string) Result {
	return Result{ID: uuid.New(), PlayerID: playerID, Name: name, CreatedAt: time.Now()}
}

// Result is what one player got out of one finished match.
type Result struct {
	ID       uuid.UUID `json:"-"`
	PlayerID uuid.UUID `json:"playerID"`
	Name     string    `json:"name"`

	Won bool `json:"won"`
	// Rounds is the round the player fell in, or the last round played when they never fell.
	Rounds      int       `json:"rounds"`
	TotalRounds int       `json:"totalRounds"`
	Crazy       bool      `json:"crazy"`
	PlayersNum  int       `json:"playersNum"`
	Winners     []string  `json:"winners"`
	Patterns    []int     `json:"patterns"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AggregationStat struct {
	Name       string    `json:"name"`
	Games      int       `json:"games"`
	Wins       int       `json:"wins"`
	CrazyGames int       `json:"crazyGames"`
	BestRound  int       `json:"bestRound"`
	AvgRounds  int       `json:"avgRounds"`
	Patterns   int       `json:"patterns"`
	LastPlayed time.Time `json:"lastPlayed"`
}

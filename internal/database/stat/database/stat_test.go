package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/colorparty/internal/cache"
	"github.com/bloops-games/colorparty/internal/database"
	"github.com/bloops-games/colorparty/internal/database/stat/model"
	"github.com/google/uuid"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "results.db")})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})

	lru, err := cache.NewLRU(16)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	return New(db, lru)
}

func TestFetchUnknownPlayer(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	if _, err := db.FetchByPlayerID(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %#v got %#v", ErrNotFound, err)
	}
	if _, err := db.FetchProfileStat(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %#v got %#v", ErrNotFound, err)
	}
}

func TestAddInvalidatesCache(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	playerID := uuid.New()

	first := model.NewResult(playerID, "Alex")
	first.Rounds = 4
	if err := db.Add(first); err != nil {
		t.Fatal(err)
	}

	list, err := db.FetchByPlayerID(playerID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != first.ID {
		t.Fatalf("expected %#v got %#v", first.ID, list)
	}

	if err := db.Add(model.NewResult(playerID, "Alex")); err != nil {
		t.Fatal(err)
	}
	list, err = db.FetchByPlayerID(playerID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("expected %#v got %#v", 2, len(list))
	}
}

func TestFetchProfileStat(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	playerID := uuid.New()
	base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	results := []struct {
		name     string
		won      bool
		crazy    bool
		rounds   int
		patterns []int
	}{
		{name: "Alex", rounds: 3, patterns: []int{1, 2, 3}},
		{name: "Alex", won: true, crazy: true, rounds: 25, patterns: []int{3, 4}},
		{name: "Alexis", rounds: 8, patterns: []int{5}},
	}
	for i, r := range results {
		m := model.NewResult(playerID, r.name)
		m.Won = r.won
		m.Crazy = r.crazy
		m.Rounds = r.rounds
		m.Patterns = r.patterns
		m.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := db.Add(m); err != nil {
			t.Fatal(err)
		}
	}

	stat, err := db.FetchProfileStat(playerID)
	if err != nil {
		t.Fatal(err)
	}

	expected := model.AggregationStat{
		Name:       "Alexis",
		Games:      3,
		Wins:       1,
		CrazyGames: 1,
		BestRound:  25,
		AvgRounds:  12,
		Patterns:   5,
		LastPlayed: base.Add(2 * time.Hour),
	}
	if !stat.LastPlayed.Equal(expected.LastPlayed) {
		t.Errorf("expected %#v got %#v", expected.LastPlayed, stat.LastPlayed)
	}
	stat.LastPlayed = expected.LastPlayed
	if stat != expected {
		t.Errorf("expected %#v got %#v", expected, stat)
	}
}

package database

import (
	"encoding/json"
	"fmt"

	"github.com/bloops-games/colorparty/internal/cache"
	"github.com/bloops-games/colorparty/internal/database"
	"github.com/bloops-games/colorparty/internal/database/stat/model"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const prefix = "stat"

var (
	pLen        = len(prefix)
	ErrNotFound = fmt.Errorf("not found")
)

func New(db *database.DB, cache cache.Cache) *DB {
	return &DB{sDB: db, cache: cache}
}

// DB is the append only match result log, one bucket per player.
type DB struct {
	sDB *database.DB

	cache cache.Cache
}

func (db *DB) BytesBucket(playerID uuid.UUID) []byte {
	b := make([]byte, pLen+len(playerID))
	copy(b, prefix[:])
	copy(b[pLen:], playerID[:])
	return b
}

func (db *DB) SerialBucket(playerID uuid.UUID) string {
	return prefix + playerID.String()
}

func (db *DB) FetchProfileStat(playerID uuid.UUID) (model.AggregationStat, error) {
	var aggregationStat model.AggregationStat
	var sumRounds int

	results, err := db.FetchByPlayerID(playerID)
	if err != nil {
		return aggregationStat, fmt.Errorf("fetch by playerID: %w", err)
	}

	var patterns []int
	for _, result := range results {
		if result.Rounds > aggregationStat.BestRound {
			aggregationStat.BestRound = result.Rounds
		}
		if result.Won {
			aggregationStat.Wins++
		}
		if result.Crazy {
			aggregationStat.CrazyGames++
		}
		if result.CreatedAt.After(aggregationStat.LastPlayed) {
			aggregationStat.LastPlayed = result.CreatedAt
			aggregationStat.Name = result.Name
		}
		sumRounds += result.Rounds

	PatternLoop:
		for _, id := range result.Patterns {
			for _, seen := range patterns {
				if id == seen {
					continue PatternLoop
				}
			}
			patterns = append(patterns, id)
		}
		aggregationStat.Games++
	}

	aggregationStat.Patterns = len(patterns)
	if aggregationStat.Games > 0 {
		aggregationStat.AvgRounds = sumRounds / aggregationStat.Games
	}

	return aggregationStat, nil
}

func (db *DB) FetchByPlayerID(playerID uuid.UUID) ([]model.Result, error) {
	var list []model.Result
	bBucket := db.BytesBucket(playerID)
	sBucket := db.SerialBucket(playerID)
	if db.cache != nil {
		v, ok := db.cache.Get(sBucket)
		if ok {
			return v.([]model.Result), nil
		}
	}

	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bBucket)
		if b == nil {
			return ErrNotFound
		}

		if err := b.ForEach(func(k, v []byte) error {
			var result model.Result
			if err := json.Unmarshal(v, &result); err != nil {
				return fmt.Errorf("json unmarshal error, %w", err)
			}
			if err := result.ID.UnmarshalBinary(k); err != nil {
				return fmt.Errorf("uuid binary: %w", err)
			}
			list = append(list, result)
			return nil
		}); err != nil {
			return fmt.Errorf("bucket for each: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(sBucket, list)
	}

	return list, nil
}

func (db *DB) Add(m model.Result) error {
	tx, err := db.sDB.DB.Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer tx.Rollback() //nolint

	b, err := tx.CreateBucketIfNotExists(db.BytesBucket(m.PlayerID))
	if err != nil {
		return fmt.Errorf("can not create bucket %s: %w", m.PlayerID, err)
	}

	binaryID, err := m.ID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("uuid binary: %w", err)
	}

	bytes, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := b.Put(binaryID, bytes); err != nil {
		return fmt.Errorf("put to bucket error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	if db.cache != nil {
		db.cache.Delete(db.SerialBucket(m.PlayerID))
	}

	return nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/bloops-games/colorparty/internal/logging"
	bolt "go.etcd.io/bbolt"
)

type DB struct {
	DB *bolt.DB
}

func NewFromEnv(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx).Named("database.NewFromEnv")
	logger.Infof("opening result log %s", config.FilePath)

	db, err := bolt.Open(config.FilePath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt file: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("database.Close")
	logger.Infof("closing result log")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error close DB connection: %w", err)
	}

	return nil
}

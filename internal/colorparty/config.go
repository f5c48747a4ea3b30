package colorparty

import (
	"time"

	"github.com/bloops-games/colorparty/internal/database"
)

type Config struct {
	// Debug switches the logger to development mode
	Debug bool `envconfig:"COLORPARTY_DEBUG" default:"false"`

	// Number of items in each cache
	CacheSize int `envconfig:"COLORPARTY_CACHE_SIZE" default:"1024"`

	// Port of the websocket gateway, health check and REST API
	Port string `envconfig:"COLORPARTY_PORT" default:"1234"`

	// profile port
	ProfPort string `envconfig:"COLORPARTY_PROF_PORT" default:"8888"`

	// Directory holding the floor_*.json layout files
	LayoutDir string `envconfig:"COLORPARTY_LAYOUT_DIR" default:"layouts"`

	// Songs the ambience picks from when a match starts
	Songs []string `envconfig:"COLORPARTY_SONGS"`

	CountdownSeconds int           `envconfig:"COLORPARTY_COUNTDOWN_SECONDS" default:"5"`
	TickInterval     time.Duration `envconfig:"COLORPARTY_TICK_INTERVAL" default:"50ms"`

	// Seed of the random source, 0 picks a random seed
	Seed uint32 `envconfig:"COLORPARTY_SEED" default:"0"`

	// Results waiting for the result log, a full buffer drops new results
	ResultBuffer int `envconfig:"COLORPARTY_RESULT_BUFFER" default:"64"`

	DB database.Config
}

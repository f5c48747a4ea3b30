// colorparty-cli runs an arena in the terminal. Players are simulated from stdin commands
// and every chat line is printed.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/buildinfo"
	"github.com/bloops-games/colorparty/internal/cache"
	"github.com/bloops-games/colorparty/internal/colorparty"
	"github.com/bloops-games/colorparty/internal/database"
	statDb "github.com/bloops-games/colorparty/internal/database/stat/database"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/match"
	"github.com/bloops-games/colorparty/internal/player"
	"github.com/bloops-games/colorparty/internal/shutdown"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

const help = `commands:
  join <name>         add a player to the lobby
  start [crazy]       start a match as the first player
  fall <name>         drop a player into the void
  use <name> <slot>   right click the item in a slot
  exit <name>         leave the arena
  status              print the match status
  stats <name>        print the result log of a player
  quit                stop the engine
`

var version string

// console prints the chat of one simulated player.
type console struct {
	*player.Memory
}

func (c *console) Message(text string) {
	_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", c.Name(), text)
}

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, buildinfo.GreetingCLI, buildinfo.ProjectName, version, buildinfo.GithubURL)

	ctx, done := shutdown.New()
	defer done()

	config := colorparty.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, config, done); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config colorparty.Config, done func()) error {
	logger := logging.FromContext(ctx).Named("main.realMain")

	db, err := database.NewFromEnv(ctx, &config.DB)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}

	defer db.Close(ctx)

	layoutCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	stats := statDb.New(db, nil)
	manager := colorparty.NewManager(
		ctx,
		&config,
		arena.NewMemory(),
		entity.NewMemory(),
		layout.NewLoader(config.LayoutDir, layoutCache),
		stats,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- manager.Run(ctx)
	}()

	go func() {
		defer done()
		if err := repl(ctx, manager, stats); err != nil {
			logger.Errorf("repl: %v", err)
		}
	}()

	if err := <-errCh; err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

func repl(ctx context.Context, manager *colorparty.Manager, stats *statDb.DB) error {
	players := map[string]*console{}
	var first string

	_, _ = fmt.Fprint(os.Stdout, help)
	scanner := bufio.NewScanner(os.Stdin)

OuterLoop:
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var ev interface{}
		switch fields[0] {
		case "quit":
			break OuterLoop
		case "join":
			if len(fields) < 2 {
				_, _ = fmt.Fprint(os.Stdout, help)
				continue
			}
			c := &console{Memory: player.NewMemory(uuid.New(), fields[1])}
			players[fields[1]] = c
			if first == "" {
				first = fields[1]
			}
			ev = match.Join{Controller: c}
		case "start":
			c, ok := players[first]
			if !ok {
				_, _ = fmt.Fprintln(os.Stdout, "nobody joined yet")
				continue
			}
			slot := player.SlotStartNormal
			if len(fields) > 1 && fields[1] == "crazy" {
				slot = player.SlotStartCrazy
			}
			ev = match.Interact{ID: c.ID(), Action: match.ActionRightClick, Slot: slot}
		case "fall", "exit", "use", "stats":
			if len(fields) < 2 {
				_, _ = fmt.Fprint(os.Stdout, help)
				continue
			}
			c, ok := players[fields[1]]
			if !ok {
				_, _ = fmt.Fprintf(os.Stdout, "unknown player %s\n", fields[1])
				continue
			}
			switch fields[0] {
			case "fall":
				to := arena.Vec3{X: c.Position().X, Y: arena.VoidLevel - 1, Z: c.Position().Z}
				c.Teleport(to)
				ev = match.Move{ID: c.ID(), To: to}
			case "exit":
				ev = match.Interact{ID: c.ID(), Action: match.ActionRightClick, Slot: player.SlotExit}
			case "use":
				if len(fields) < 3 {
					_, _ = fmt.Fprint(os.Stdout, help)
					continue
				}
				slot, err := strconv.Atoi(fields[2])
				if err != nil {
					_, _ = fmt.Fprintf(os.Stdout, "bad slot %s\n", fields[2])
					continue
				}
				ev = match.Interact{ID: c.ID(), Action: match.ActionRightClick, Slot: slot}
			case "stats":
				stat, err := stats.FetchProfileStat(c.ID())
				if err != nil {
					_, _ = fmt.Fprintf(os.Stdout, "stats of %s: %v\n", c.Name(), err)
					continue
				}
				_, _ = fmt.Fprintf(os.Stdout, "%s: %d games, %d wins, best round %d\n", c.Name(), stat.Games, stat.Wins, stat.BestRound)
				continue
			}
		case "status":
			st, err := manager.Status(ctx)
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s round %d safe %s players %d active %d crazy %t\n",
				st.Phase, st.Round, st.SafeColor, st.Players, st.Active, st.Crazy)
			continue
		default:
			_, _ = fmt.Fprint(os.Stdout, help)
			continue
		}

		if err := manager.Send(ctx, ev); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/buildinfo"
	"github.com/bloops-games/colorparty/internal/cache"
	"github.com/bloops-games/colorparty/internal/colorparty"
	"github.com/bloops-games/colorparty/internal/database"
	statDb "github.com/bloops-games/colorparty/internal/database/stat/database"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/gateway"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/server"
	"github.com/bloops-games/colorparty/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

var version string

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

	statCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	stats := statDb.New(db, statCache)
	manager := colorparty.NewManager(
		ctx,
		&config,
		arena.NewMemory(),
		entity.NewMemory(),
		layout.NewLoader(config.LayoutDir, layoutCache),
		stats,
	)

	srv, err := server.New(config.Port)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/health", server.HandleHealth(ctx))
	mux.Handle("/status", colorparty.HandleStatus(ctx, manager))
	mux.Handle("/stats", colorparty.HandleStats(ctx, stats))
	mux.Handle("/ws", gateway.NewHandler(ctx, manager))

	go func() {
		if err := srv.ServeHTTP(ctx, &http.Server{Handler: mux}); err != nil {
			logger.Errorf("srv.ServeHTTP: %v", err)
			done()
		}
	}()

	go func() {
		if err := http.ListenAndServe(":"+config.ProfPort, nil); err != nil {
			logger.Errorf("pprof default sever: %v", err)
			done()
		}
	}()

	if err := manager.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

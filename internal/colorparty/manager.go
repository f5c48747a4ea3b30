package colorparty

import (
	"context"
	"fmt"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/database/stat/model"
	"github.com/bloops-games/colorparty/internal/entity"
	"github.com/bloops-games/colorparty/internal/layout"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/match"
	"github.com/bloops-games/colorparty/internal/pattern"
	"github.com/bloops-games/colorparty/internal/random"
	"github.com/bloops-games/colorparty/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

const (
	inboxSize        = 256
	defaultResultLog = 64
)

var ErrStopped = fmt.Errorf("engine stopped")

// ResultStore persists the outcome of finished matches.
type ResultStore interface {
	Add(m model.Result) error
}

type statusRequest struct {
	reply chan match.Status
}

func NewManager(ctx context.Context, config *Config, world arena.Source, entities entity.Store, loader *layout.Loader, store ResultStore) *Manager {
	if config.TickInterval <= 0 {
		config.TickInterval = scheduler.TickInterval
	}
	// an unbuffered result log would drop every result
	if config.ResultBuffer < 1 {
		config.ResultBuffer = defaultResultLog
	}

	rnd := random.New(config.Seed)
	m := &Manager{
		ctx:     ctx,
		config:  config,
		loader:  loader,
		store:   store,
		sched:   scheduler.New(),
		inbox:   make(chan interface{}, inboxSize),
		results: make(chan model.Result, config.ResultBuffer),
		done:    make(chan struct{}),
	}

	m.match = match.New(ctx, match.Config{
		Scheduler:        m.sched,
		Source:           world,
		Entities:         entities,
		Catalog:          pattern.NewCatalog(ctx, loader, rnd),
		Rand:             rnd,
		Ambience:         match.NewLogAmbience(ctx, rnd, config.Songs...),
		CountdownSeconds: config.CountdownSeconds,
		OnGameOver:       m.record,
	})

	return m
}

// Manager owns the arena goroutine. Player events reach the match through the inbox,
// finished matches leave through the result log worker.
type Manager struct {
	ctx    context.Context
	config *Config

	loader *layout.Loader
	store  ResultStore
	sched  *scheduler.Scheduler
	match  *match.Match

	inbox   chan interface{}
	results chan model.Result
	done    chan struct{}
}

// Run preloads the layouts, resets the arena and drives the match until ctx is done.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("colorparty.Run")

	names := append([]string{layout.NameStart, layout.NameGameOver}, pattern.Layouts...)
	n, err := m.loader.Preload(ctx, names)
	if err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	logger.Infof("preloaded %d of %d layouts", n, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m.persist(gctx)
		return nil
	})
	g.Go(func() error {
		return m.loop(gctx)
	})

	return g.Wait()
}

func (m *Manager) loop(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("colorparty.loop")
	defer close(m.results)
	defer close(m.done)

	m.match.ResetArena()

	ticker := time.NewTicker(m.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("engine stopped")
			return nil
		case ev := <-m.inbox:
			m.handle(ctx, ev)
		case <-ticker.C:
			m.sched.Tick()
		}
	}
}

func (m *Manager) handle(ctx context.Context, ev interface{}) {
	logger := logging.FromContext(ctx).Named("colorparty.handle")
	switch e := ev.(type) {
	case statusRequest:
		e.reply <- m.match.Status()
	default:
		if err := m.match.Handle(ev); err != nil {
			logger.Warnf("handle %T: %v", ev, err)
		}
	}
}

// Send queues a player event for the arena goroutine.
func (m *Manager) Send(ctx context.Context, ev interface{}) error {
	select {
	case <-m.done:
		return ErrStopped
	default:
	}

	select {
	case m.inbox <- ev:
		return nil
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status asks the arena goroutine for a snapshot of the match.
func (m *Manager) Status(ctx context.Context) (match.Status, error) {
	req := statusRequest{reply: make(chan match.Status, 1)}
	if err := m.Send(ctx, req); err != nil {
		return match.Status{}, err
	}

	select {
	case st := <-req.reply:
		return st, nil
	case <-m.done:
		return match.Status{}, ErrStopped
	case <-ctx.Done():
		return match.Status{}, ctx.Err()
	}
}

// record runs on the arena goroutine and never blocks it.
func (m *Manager) record(summary match.Summary) {
	logger := logging.FromContext(m.ctx).Named("colorparty.record")
	for _, r := range summary.Results {
		result := model.NewResult(r.PlayerID, r.Name)
		result.Won = r.Won
		result.Rounds = r.Rounds
		result.TotalRounds = summary.Rounds
		result.Crazy = summary.Crazy
		result.PlayersNum = len(summary.Results)
		result.Winners = summary.Winners
		result.Patterns = summary.Patterns
		result.CreatedAt = summary.FinishedAt

		select {
		case m.results <- result:
		default:
			logger.Warnf("result log full, dropping result of %s", r.Name)
		}
	}
}

// persist drains the result channel until the arena goroutine closes it.
func (m *Manager) persist(ctx context.Context) {
	logger := logging.FromContext(ctx).Named("colorparty.persist")
	for result := range m.results {
		if m.store == nil {
			continue
		}
		if err := m.store.Add(result); err != nil {
			logger.Errorf("store result of %s: %v", result.Name, err)
			continue
		}
		logger.Debugf("stored result of %s, won %t", result.Name, result.Won)
	}
}

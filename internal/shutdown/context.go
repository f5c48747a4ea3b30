package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context cancelled on SIGINT or SIGTERM.
func New() (context.Context, func()) {
	return InterruptContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func InterruptContext(ctx context.Context, signals ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

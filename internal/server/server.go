// Package server runs the HTTP listener of the engine and shuts it down with the context.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bloops-games/colorparty/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// New binds the listener right away so a bad port fails at startup.
func New(port string) (*Server, error) {
	addr := ":" + port
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener on %s: %w", addr, err)
	}

	return &Server{
		port:     port,
		listener: listener,
	}, nil
}

type Server struct {
	port     string
	listener net.Listener
}

// Addr is the bound address, useful with port "0".
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// ServeHTTP serves until ctx is done, then shuts srv down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, srv *http.Server) error {
	logger := logging.FromContext(ctx).Named("server.ServeHTTP")

	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()

		logger.Debugf("server.Serve: context closed")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()

		logger.Debugf("server.Serve: shutting down")
		errCh <- srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("listening on %s", s.Addr())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("failed to shutdown: %w", err)
	}

	return nil
}

// HandleHealth answers liveness checks.
func HandleHealth(ctx context.Context) http.Handler {
	logger := logging.FromContext(ctx).Named("server.HandleHealth")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
		logger.Debugf("health check from %s", r.RemoteAddr)
	})
}

// WriteJSON encodes v with the given status code, encoding failures are logged.
func WriteJSON(ctx context.Context, w http.ResponseWriter, code int, v interface{}) {
	logger := logging.FromContext(ctx).Named("server.WriteJSON")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("encode response: %v", err)
	}
}

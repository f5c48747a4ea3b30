package colorparty

import (
	"context"
	"errors"
	"net/http"

	statDb "github.com/bloops-games/colorparty/internal/database/stat/database"
	"github.com/bloops-games/colorparty/internal/database/stat/model"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/server"
	"github.com/google/uuid"
)

// StatReader aggregates the result log of one player.
type StatReader interface {
	FetchProfileStat(playerID uuid.UUID) (model.AggregationStat, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleStatus serves the current match status.
func HandleStatus(ctx context.Context, m *Manager) http.Handler {
	logger := logging.FromContext(ctx).Named("colorparty.HandleStatus")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := m.Status(r.Context())
		if err != nil {
			logger.Warnf("status: %v", err)
			server.WriteJSON(ctx, w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}
		server.WriteJSON(ctx, w, http.StatusOK, st)
	})
}

// HandleStats serves the aggregated results of the player given by the id query parameter.
func HandleStats(ctx context.Context, stats StatReader) http.Handler {
	logger := logging.FromContext(ctx).Named("colorparty.HandleStats")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.URL.Query().Get("id"))
		if err != nil {
			server.WriteJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid player id"})
			return
		}

		stat, err := stats.FetchProfileStat(id)
		if err != nil {
			if errors.Is(err, statDb.ErrNotFound) {
				server.WriteJSON(ctx, w, http.StatusNotFound, errorResponse{Error: "no results"})
				return
			}
			logger.Errorf("fetch stats of %s: %v", id, err)
			server.WriteJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		server.WriteJSON(ctx, w, http.StatusOK, stat)
	})
}

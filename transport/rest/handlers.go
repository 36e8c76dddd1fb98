package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/pkg/handlers"
)

type matchReader interface {
	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.MatchRecord, error)
}

type matchHandlers struct {
	logger  *slog.Logger
	matches matchReader
}

// NewRouter exposes the health check and the match history.
func NewRouter(logger *slog.Logger, matches matchReader) http.Handler {
	h := &matchHandlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}

	r := chi.NewRouter()

	r.Get("/ping", handlers.PingHandler)
	r.Get("/matches", h.listMatches)
	r.Get("/matches/{id}", h.getMatch)

	return r
}

func (that *matchHandlers) listMatches(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "listMatches")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			that.write(log, handlers.WriteError(w, http.StatusBadRequest, "invalid limit"))
			return
		}
		limit = parsed
	}

	records, err := that.matches.ListRecent(r.Context(), limit)
	if err != nil {
		log.Error("failed to list matches", "error", err)
		that.write(log, handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error"))
		return
	}

	that.write(log, handlers.WriteJSON(w, http.StatusOK, records))
}

func (that *matchHandlers) getMatch(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getMatch")

	id := chi.URLParam(r, "id")

	record, err := that.matches.GetByID(r.Context(), id)
	if errors.Is(err, apperror.ErrMatchNotFound) {
		that.write(log, handlers.WriteError(w, http.StatusNotFound, err.Error()))
		return
	}
	if err != nil {
		log.Error("failed to get match", "matchID", id, "error", err)
		that.write(log, handlers.WriteError(w, http.StatusInternalServerError, "Internal Server Error"))
		return
	}

	that.write(log, handlers.WriteJSON(w, http.StatusOK, record))
}

func (that *matchHandlers) write(log *slog.Logger, err error) {
	if err != nil {
		log.Debug("could not write response", "error", err)
	}
}

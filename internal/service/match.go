package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// MatchService is the match history used by the TCP coordinator and the HTTP surface.
type MatchService interface {
	Save(ctx context.Context, record *entity.MatchRecord) error

	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.MatchRecord, error)
}

type matchRepo interface {
	Save(ctx context.Context, record *entity.MatchRecord) error

	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.MatchRecord, error)
}

type matchService struct {
	logger    *slog.Logger
	matchRepo matchRepo
}

func NewMatchService(logger *slog.Logger, matchRepo matchRepo) MatchService {
	return &matchService{
		logger:    logger.With("component", "matchService"),
		matchRepo: matchRepo,
	}
}

// Save stores a finished match. Records of matches still in play are rejected.
func (that *matchService) Save(ctx context.Context, record *entity.MatchRecord) error {
	if !record.Result.Status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", apperror.ErrMatchNotFinished, record.ID, record.Result.Status)
	}

	if err := that.matchRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save match to storage: %w", err)
	}

	that.logger.Debug("match saved", "matchID", record.ID, "status", record.Result.Status)

	return nil
}

func (that *matchService) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	record, err := that.matchRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrMatchNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}

	return record, nil
}

func (that *matchService) ListRecent(ctx context.Context, limit int) ([]*entity.MatchRecord, error) {
	records, err := that.matchRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches from storage: %w", err)
	}

	return records, nil
}

package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	mockedService "github.com/rocketscienceinc/gomoku-backend/mocks/service"
)

var errRedisDown = errors.New("redis down")

func newTestService(t *testing.T) (MatchService, *mockedService.MockmatchRepo) {
	t.Helper()

	repo := mockedService.NewMockmatchRepo(t)

	return NewMatchService(slog.New(slog.NewJSONHandler(io.Discard, nil)), repo), repo
}

func TestMatchService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves a finished match", func(t *testing.T) {
		// Given: a repository that accepts the record
		service, repo := newTestService(t)
		record := &entity.MatchRecord{ID: "m-1", Result: entity.Result{Status: entity.StatusDraw}}

		repo.EXPECT().Save(mock.Anything, record).Return(nil).Once()

		// When: saving it
		err := service.Save(ctx, record)

		// Then: no error occurs
		require.NoError(t, err)
	})

	t.Run("Rejects a match still in play", func(t *testing.T) {
		// Given: a record of a match in progress
		service, _ := newTestService(t)
		record := &entity.MatchRecord{ID: "m-1", Result: entity.Result{Status: entity.StatusInProgress}}

		// When: saving it
		err := service.Save(ctx, record)

		// Then: ErrMatchNotFinished is returned and the repository is never called
		require.ErrorIs(t, err, apperror.ErrMatchNotFinished)
	})

	t.Run("Wraps storage failures", func(t *testing.T) {
		service, repo := newTestService(t)
		record := &entity.MatchRecord{ID: "m-1", Result: entity.Result{Status: entity.StatusAborted}}

		repo.EXPECT().Save(mock.Anything, record).Return(errRedisDown).Once()

		err := service.Save(ctx, record)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestMatchService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found is passed through", func(t *testing.T) {
		// Given: a repository without the match
		service, repo := newTestService(t)
		repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, apperror.ErrMatchNotFound).Once()

		// When: getting it
		record, err := service.GetByID(ctx, "missing")

		// Then: ErrMatchNotFound is returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, record)
	})

	t.Run("Returns the stored match", func(t *testing.T) {
		service, repo := newTestService(t)
		stored := &entity.MatchRecord{ID: "m-1"}
		repo.EXPECT().GetByID(mock.Anything, "m-1").Return(stored, nil).Once()

		record, err := service.GetByID(ctx, "m-1")

		require.NoError(t, err)
		assert.Equal(t, stored, record)
	})
}

func TestMatchService_ListRecent(t *testing.T) {
	// Given: a failing repository
	service, repo := newTestService(t)
	repo.EXPECT().ListRecent(mock.Anything, 5).Return(nil, errRedisDown).Once()

	// When: listing
	records, err := service.ListRecent(context.Background(), 5)

	// Then: the failure is wrapped
	require.ErrorIs(t, err, errRedisDown)
	assert.Nil(t, records)
}

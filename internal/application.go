package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/rocketscienceinc/gomoku-backend/internal/transport/tcp"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	matchRepo, closer, err := openMatchRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("match history storage ready", "driver", conf.Storage.Driver)

	return run(ctx, logger, conf, service.NewMatchService(logger, matchRepo))
}

// run serves matches over TCP and the history over HTTP until ctx is done. A single
// match server also stops the HTTP server once its match is over.
func run(ctx context.Context, logger *slog.Logger, conf *config.Config, matches service.MatchService) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.Start(groupCtx, conf.HTTPPort, rest.NewRouter(logger, matches)); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// run TCP match server
	group.Go(func() error {
		defer cancel()

		log.Info("Starting TCP server", "port", conf.TCPPort)
		server := tcp.New(logger, matches, tcp.Options{
			MoveTimeout:  conf.Match.MoveTimeout,
			WriteTimeout: conf.Match.WriteTimeout,
			Single:       conf.Match.Single,
		})
		if err := server.Start(groupCtx, conf.TCPPort); err != nil {
			return fmt.Errorf("TCP server error: %w", err)
		}
		return nil
	})

	err := group.Wait()
	log.Info("Application stopped")

	return err
}

func openMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, io.Closer, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewMatchRepository(redisStorage.Connection), redisStorage, nil
	case config.DriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteMatchRepository(sqliteStorage.Connection), sqliteStorage, nil
	default:
		return repository.NewMemoryMatchRepository(), io.NopCloser(nil), nil
	}
}

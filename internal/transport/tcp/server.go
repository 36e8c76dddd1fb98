package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"
)

type Options struct {
	MoveTimeout  time.Duration
	WriteTimeout time.Duration
	// Single stops the server after its first match.
	Single bool
}

type Server struct {
	logger   *slog.Logger
	recorder matchRecorder
	options  Options
}

func New(logger *slog.Logger, recorder matchRecorder, options Options) *Server {
	return &Server{
		logger:   logger.With("component", "tcp"),
		recorder: recorder,
		options:  options,
	}
}

// Start - listens on port and serves matches until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	var listenConfig net.ListenConfig

	listener, err := listenConfig.Listen(ctx, "tcp", ":"+port)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve runs matches one after another on listener. Peers that connect during a match
// wait in the accept backlog for the next one. The listener is closed on return.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve", "addr", listener.Addr().String())

	stop := context.AfterFunc(ctx, func() {
		_ = listener.Close()
	})
	defer stop()
	defer listener.Close()

	coordinator := NewCoordinator(that.logger, listener, that.recorder, that.options.MoveTimeout, that.options.WriteTimeout)

	log.Info("waiting for players")

	for {
		record, err := coordinator.Play(ctx)
		if ctx.Err() != nil {
			log.Info("server stopped")
			return nil
		}

		if record == nil {
			if errors.Is(err, net.ErrClosed) {
				log.Info("listener closed")
				return nil
			}

			return fmt.Errorf("failed to run match: %w", err)
		}

		log.Info("match over",
			"matchID", record.ID,
			"status", record.Result.Status,
			"winner", record.Result.Winner,
			"cause", record.Result.Cause,
		)

		if that.options.Single {
			return nil
		}
	}
}

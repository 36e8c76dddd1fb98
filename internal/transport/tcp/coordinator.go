package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
	"github.com/rocketscienceinc/gomoku-backend/pkg/protocol"
)

const saveTimeout = 5 * time.Second

type matchRecorder interface {
	Save(ctx context.Context, record *entity.MatchRecord) error
}

// Coordinator seats two peers from a listener and runs one match between them.
type Coordinator struct {
	logger       *slog.Logger
	listener     net.Listener
	recorder     matchRecorder
	moveTimeout  time.Duration
	writeTimeout time.Duration
}

func NewCoordinator(logger *slog.Logger, listener net.Listener, recorder matchRecorder, moveTimeout, writeTimeout time.Duration) *Coordinator {
	return &Coordinator{
		logger:       logger.With("component", "coordinator"),
		listener:     listener,
		recorder:     recorder,
		moveTimeout:  moveTimeout,
		writeTimeout: writeTimeout,
	}
}

// Play accepts X then O, runs the match until both sessions are done and returns its
// record. Accept only unblocks when the listener is closed, so the caller closes it to
// abandon Play while seats are empty. Cancelling ctx during a match aborts it.
func (that *Coordinator) Play(ctx context.Context) (*entity.MatchRecord, error) {
	log := that.logger.With("method", "Play")

	connX, err := that.acceptSeat(ctx, entity.PlayerX)
	if err != nil {
		return nil, err
	}
	defer closeConn(log, connX)

	connO, err := that.acceptSeat(ctx, entity.PlayerO)
	if err != nil {
		return nil, err
	}
	defer closeConn(log, connO)

	match := gomoku.NewMatch(that.logger, pkg.GenerateMatchID(), that.moveTimeout)
	if err = match.Start(); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	log = log.With("matchID", match.ID())

	group, groupCtx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(groupCtx, func() {
		if match.Cancel() {
			log.Info("match cancelled")
		}
	})
	defer stop()

	for _, s := range []*session{
		newSession(that.logger, connX, entity.PlayerX, match, that.writeTimeout),
		newSession(that.logger, connO, entity.PlayerO, match, that.writeTimeout),
	} {
		group.Go(s.run)
	}

	sessionErr := group.Wait()
	if sessionErr != nil {
		log.Error("session failed", "error", sessionErr)
	}

	record := match.Snapshot().Record(
		entity.NewPlayer(entity.PlayerX, connX.RemoteAddr().String()),
		entity.NewPlayer(entity.PlayerO, connO.RemoteAddr().String()),
	)

	that.save(ctx, record)

	return record, sessionErr
}

// acceptSeat accepts peers until one receives its symbol.
func (that *Coordinator) acceptSeat(ctx context.Context, mark entity.Mark) (net.Conn, error) {
	log := that.logger.With("method", "acceptSeat", "mark", mark)

	for {
		conn, err := that.listener.Accept()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return nil, fmt.Errorf("failed to accept %s: %w", mark, err)
		}

		if that.writeTimeout > 0 {
			if err = conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
				log.Info("could not set write deadline", "remote", conn.RemoteAddr().String(), "error", err)
				closeConn(log, conn)
				continue
			}
		}

		if err = protocol.WriteSymbol(conn, byte(mark)); err != nil {
			log.Info("peer left before its symbol was sent", "remote", conn.RemoteAddr().String(), "error", err)
			closeConn(log, conn)
			continue
		}

		log.Info("peer seated", "remote", conn.RemoteAddr().String())

		return conn, nil
	}
}

// save records the match. The result has already been delivered, so a failure here is
// only logged.
func (that *Coordinator) save(ctx context.Context, record *entity.MatchRecord) {
	if that.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()

	if err := that.recorder.Save(ctx, record); err != nil {
		that.logger.Error("could not save match record", "matchID", record.ID, "error", err)
	}
}

func closeConn(log *slog.Logger, conn net.Conn) {
	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Debug("could not close connection", "error", err)
	}
}

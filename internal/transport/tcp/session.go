package tcp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/pkg/protocol"
)

// session serves one peer of a match. It never owns the match; the coordinator does.
type session struct {
	logger       *slog.Logger
	conn         net.Conn
	mark         entity.Mark
	match        *gomoku.Match
	writeTimeout time.Duration
}

func newSession(logger *slog.Logger, conn net.Conn, mark entity.Mark, match *gomoku.Match, writeTimeout time.Duration) *session {
	return &session{
		logger:       logger.With("component", "session", "mark", mark, "remote", conn.RemoteAddr().String()),
		conn:         conn,
		mark:         mark,
		match:        match,
		writeTimeout: writeTimeout,
	}
}

// run drives the peer until the match is over. Peer failures end the match through a
// forfeit and are not returned as errors.
func (that *session) run() error {
	log := that.logger.With("method", "run")

	moves := make(chan entity.Move)
	readErrs := make(chan error, 1)
	quit := make(chan struct{})
	defer close(quit)

	go that.readMoves(moves, readErrs, quit)

	var sentVersion uint64
	prompted := false

	for {
		snap, changed := that.match.Watch()
		if snap.Status.IsTerminal() {
			return that.finish(snap)
		}

		if snap.Version != sentVersion {
			if err := that.send(func(w io.Writer) error { return protocol.WriteBoard(w, snap.Board.Bytes()) }); err != nil {
				return that.dropped(err)
			}
			sentVersion = snap.Version
			prompted = false
		}

		if snap.Turn == that.mark && !prompted {
			if err := that.send(protocol.WriteTurn); err != nil {
				return that.dropped(err)
			}
			prompted = true
		}

		select {
		case <-changed:
		case move := <-moves:
			if !prompted {
				log.Warn("move submitted without a turn prompt", "row", move.Row, "col", move.Col,
					"error", fmt.Errorf("%w: move %s before turn prompt", apperror.ErrProtocolViolation, move))
				that.match.Forfeit(that.mark, entity.CauseProtocolViolation)
				continue
			}

			_, err := that.match.ApplyMove(that.mark, move)
			switch {
			case err == nil:
				prompted = false
			case apperror.IsInvalidMove(err):
				log.Debug("move rejected", "row", move.Row, "col", move.Col, "error", err)
				prompted = false
			case errors.Is(err, apperror.ErrGameFinished):
			default:
				return fmt.Errorf("failed to apply move %s: %w", move, err)
			}
		case err := <-readErrs:
			return that.dropped(err)
		}
	}
}

// readMoves decodes submissions until the connection fails. The connection carries
// nothing else from the peer, so any read outcome other than a full move ends it.
func (that *session) readMoves(moves chan<- entity.Move, readErrs chan<- error, quit <-chan struct{}) {
	for {
		row, col, err := protocol.ReadMove(that.conn)
		if err != nil {
			readErrs <- err
			return
		}

		select {
		case moves <- entity.Move{Row: int(row), Col: int(col)}:
		case <-quit:
			return
		}
	}
}

// finish delivers the final board and result. A shutdown closes without a result.
func (that *session) finish(snap gomoku.Snapshot) error {
	code, ok := resultCode(snap.Result())
	if !ok {
		return nil
	}

	err := that.send(func(w io.Writer) error { return protocol.WriteBoard(w, snap.Board.Bytes()) })
	if err == nil {
		err = that.send(func(w io.Writer) error { return protocol.WriteGameOver(w, code) })
	}

	if err != nil {
		that.logger.Info("could not deliver result", "error", err)
		return nil
	}

	that.logger.Debug("result delivered", "code", code)

	return nil
}

// dropped forfeits the match for this peer after a transport failure. The peer is gone,
// so nothing more is written to it.
func (that *session) dropped(err error) error {
	if that.match.Forfeit(that.mark, entity.CauseDisconnect) {
		that.logger.Info("peer disconnected", "error", fmt.Errorf("%w: %w", apperror.ErrPeerDisconnected, err))
	}

	return nil
}

func (that *session) send(write func(io.Writer) error) error {
	if that.writeTimeout > 0 {
		if err := that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	return write(that.conn)
}

// resultCode maps a terminal result to its game over code. It reports false when the
// match ended without a winner, which is never announced.
func resultCode(result entity.Result) (int32, bool) {
	timeout := result.Cause == entity.CauseTimeout

	switch result.Winner {
	case entity.WinnerDraw:
		return protocol.ResultDraw, true
	case entity.WinnerX:
		if timeout {
			return protocol.ResultXWinsTimeout, true
		}
		return protocol.ResultXWins, true
	case entity.WinnerO:
		if timeout {
			return protocol.ResultOWinsTimeout, true
		}
		return protocol.ResultOWins, true
	default:
		return 0, false
	}
}

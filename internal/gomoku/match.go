package gomoku

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// DefaultMoveTimeout is the time a player has to submit a move once its turn begins.
const DefaultMoveTimeout = 30 * time.Second

// Match is the single owner of a game's state. Every mutation goes through its methods
// and happens under one lock, so two session handlers can share a *Match directly.
type Match struct {
	logger      *slog.Logger
	id          string
	moveTimeout time.Duration
	now         func() time.Time

	mu            sync.Mutex
	board         entity.Board
	status        entity.Status
	turn          entity.Mark
	winner        entity.Winner
	cause         entity.Cause
	moves         map[entity.Mark]int
	lastMove      *entity.Move
	startedAt     time.Time
	finishedAt    time.Time
	turnStartedAt time.Time
	lastMoveAt    time.Time
	version       uint64
	changed       chan struct{}
	done          chan struct{}
	timer         *time.Timer
}

// Snapshot is a consistent copy of the match taken under the lock.
type Snapshot struct {
	ID            string
	Board         entity.Board
	Status        entity.Status
	Turn          entity.Mark
	Winner        entity.Winner
	Cause         entity.Cause
	MovesX        int
	MovesO        int
	LastMove      *entity.Move
	StartedAt     time.Time
	FinishedAt    time.Time
	TurnStartedAt time.Time
	LastMoveAt    time.Time
	Version       uint64
}

// NewMatch creates a match waiting for its players. A zero moveTimeout disables the
// per-move clock.
func NewMatch(logger *slog.Logger, id string, moveTimeout time.Duration) *Match {
	return &Match{
		logger:      logger.With("component", "match", "matchID", id),
		id:          id,
		moveTimeout: moveTimeout,
		now:         time.Now,

		board:   entity.NewBoard(),
		status:  entity.StatusWaiting,
		turn:    entity.EmptyCell,
		moves:   map[entity.Mark]int{entity.PlayerX: 0, entity.PlayerO: 0},
		changed: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (that *Match) ID() string {
	return that.id
}

// Start moves the match from waiting to in progress with X on turn.
func (that *Match) Start() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.status != entity.StatusWaiting {
		return fmt.Errorf("%w: status %s", apperror.ErrGameAlreadyStarted, that.status)
	}

	now := that.now()
	that.status = entity.StatusInProgress
	that.turn = entity.PlayerX
	that.startedAt = now
	that.turnStartedAt = now

	that.notify()
	that.armTimer()

	that.logger.Info("match started", "moveTimeout", that.moveTimeout)

	return nil
}

// ApplyMove is the only way to place a mark. A returned error is a rejection and leaves
// the match untouched; the caller may submit again. A nil error with a terminal
// snapshot status means the move ended the game.
func (that *Match) ApplyMove(player entity.Mark, move entity.Move) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.validate(player, move); err != nil {
		return that.snapshot(), err
	}

	now := that.now()
	that.board.Set(move, player)
	that.moves[player]++
	that.lastMove = &move
	that.lastMoveAt = now

	switch {
	case that.board.WinsAt(move, player):
		that.finish(entity.WonBy(player), entity.WinnerOf(player), entity.CauseWinRun)
	case that.board.IsFull():
		that.finish(entity.StatusDraw, entity.WinnerDraw, entity.CauseBoardFull)
	default:
		that.turn = player.Opponent()
		that.turnStartedAt = now
		that.notify()
		that.armTimer()
	}

	that.logger.Debug("move applied", "mark", player, "row", move.Row, "col", move.Col, "status", that.status)

	return that.snapshot(), nil
}

// validate runs the ordered checks and returns the first failing reason.
func (that *Match) validate(player entity.Mark, move entity.Move) error {
	switch {
	case that.status == entity.StatusWaiting:
		return apperror.ErrGameIsNotStarted
	case that.status.IsTerminal():
		return apperror.ErrGameFinished
	case that.turn != player:
		return fmt.Errorf("%w: %s is on turn", apperror.ErrNotYourTurn, that.turn)
	}

	return that.board.Validate(move)
}

// Forfeit ends the match in favor of the offender's opponent. It returns false when the
// match was already over, so the transition happens exactly once.
func (that *Match) Forfeit(offender entity.Mark, cause entity.Cause) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.status.IsTerminal() {
		return false
	}

	that.finish(entity.StatusAborted, entity.WinnerOf(offender.Opponent()), cause)

	return true
}

// Cancel aborts the match without a winner.
func (that *Match) Cancel() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.status.IsTerminal() {
		return false
	}

	that.finish(entity.StatusAborted, entity.WinnerNone, entity.CauseShutdown)

	return true
}

// expire is the move clock callback. version pins the turn the timer was armed for; a
// timer that lost the race against a move finds a newer version and does nothing.
func (that *Match) expire(version uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.status != entity.StatusInProgress || that.version != version {
		return
	}

	slow := that.turn
	that.logger.Info("move timed out", "mark", slow, "elapsed", that.now().Sub(that.turnStartedAt),
		"error", fmt.Errorf("%w: %s after %s", apperror.ErrMoveTimeout, slow, that.moveTimeout))

	that.finish(entity.WonBy(slow.Opponent()), entity.WinnerOf(slow.Opponent()), entity.CauseTimeout)
}

// finish must be called with the lock held.
func (that *Match) finish(status entity.Status, winner entity.Winner, cause entity.Cause) {
	that.status = status
	that.winner = winner
	that.cause = cause
	that.turn = entity.EmptyCell
	that.finishedAt = that.now()

	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}

	that.notify()
	close(that.done)

	that.logger.Info("match finished", "status", status, "winner", winner, "cause", cause)
}

// notify must be called with the lock held. It wakes every Watch caller.
func (that *Match) notify() {
	that.version++
	close(that.changed)
	that.changed = make(chan struct{})
}

// armTimer must be called with the lock held, after notify.
func (that *Match) armTimer() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}

	if that.moveTimeout <= 0 {
		return
	}

	version := that.version
	that.timer = time.AfterFunc(that.moveTimeout, func() { that.expire(version) })
}

// Watch returns the current snapshot and a channel that is closed on the next change.
func (that *Match) Watch() (Snapshot, <-chan struct{}) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot(), that.changed
}

func (that *Match) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

// Done is closed once the match reaches a terminal status.
func (that *Match) Done() <-chan struct{} {
	return that.done
}

func (that *Match) snapshot() Snapshot {
	var lastMove *entity.Move
	if that.lastMove != nil {
		move := *that.lastMove
		lastMove = &move
	}

	return Snapshot{
		ID:            that.id,
		Board:         that.board,
		Status:        that.status,
		Turn:          that.turn,
		Winner:        that.winner,
		Cause:         that.cause,
		MovesX:        that.moves[entity.PlayerX],
		MovesO:        that.moves[entity.PlayerO],
		LastMove:      lastMove,
		StartedAt:     that.startedAt,
		FinishedAt:    that.finishedAt,
		TurnStartedAt: that.turnStartedAt,
		LastMoveAt:    that.lastMoveAt,
		Version:       that.version,
	}
}

func (that Snapshot) Result() entity.Result {
	return entity.Result{
		Status: that.Status,
		Winner: that.Winner,
		Cause:  that.Cause,
	}
}

// Record converts a terminal snapshot into a history entry.
func (that Snapshot) Record(players ...*entity.Player) *entity.MatchRecord {
	return &entity.MatchRecord{
		ID:         that.ID,
		Result:     that.Result(),
		Players:    players,
		MovesX:     that.MovesX,
		MovesO:     that.MovesO,
		LastMove:   that.LastMove,
		Board:      that.Board.Rows(),
		StartedAt:  that.StartedAt,
		FinishedAt: that.FinishedAt,
	}
}

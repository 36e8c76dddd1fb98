package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrOutOfBounds        = errors.New("cell is out of bounds")

	ErrProtocolViolation = errors.New("protocol violation")
	ErrMoveTimeout       = errors.New("move timeout")
	ErrPeerDisconnected  = errors.New("peer disconnected")

	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchNotFinished = errors.New("match is not finished")
)

// IsInvalidMove reports whether err is a recoverable move rejection.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrNotYourTurn) || errors.Is(err, ErrCellOccupied) || errors.Is(err, ErrOutOfBounds)
}

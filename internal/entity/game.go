package entity

import (
	"errors"
	"time"
)

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusWonX       Status = "won_x"
	StatusWonO       Status = "won_o"
	StatusDraw       Status = "draw"
	StatusAborted    Status = "aborted"
)

// Cause explains how a match reached its terminal status.
type Cause string

const (
	CauseNone              Cause = ""
	CauseWinRun            Cause = "win_run"
	CauseBoardFull         Cause = "board_full"
	CauseTimeout           Cause = "timeout"
	CauseDisconnect        Cause = "disconnect"
	CauseProtocolViolation Cause = "protocol_violation"
	CauseShutdown          Cause = "shutdown"
)

type Winner string

const (
	WinnerNone Winner = ""
	WinnerX    Winner = "X"
	WinnerO    Winner = "O"
	WinnerDraw Winner = "-"
)

var ErrInvalidMark = errors.New("invalid mark")

func (that Status) IsTerminal() bool {
	switch that {
	case StatusWonX, StatusWonO, StatusDraw, StatusAborted:
		return true
	default:
		return false
	}
}

// WonBy returns the winning status for a player mark.
func WonBy(mark Mark) Status {
	if mark == PlayerO {
		return StatusWonO
	}

	return StatusWonX
}

func WinnerOf(mark Mark) Winner {
	switch mark {
	case PlayerX:
		return WinnerX
	case PlayerO:
		return WinnerO
	default:
		return WinnerNone
	}
}

// Mark returns the player mark of a winner, EmptyCell for a draw or no winner.
func (that Winner) Mark() Mark {
	switch that {
	case WinnerX:
		return PlayerX
	case WinnerO:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Result is the terminal outcome delivered to both peers.
type Result struct {
	Status Status `json:"status"`
	Winner Winner `json:"winner"`
	Cause  Cause  `json:"cause,omitempty"`
}

// MatchRecord is the history entry written once a match is over.
type MatchRecord struct {
	ID         string    `json:"id"`
	Result     Result    `json:"result"`
	Players    []*Player `json:"players,omitempty"`
	MovesX     int       `json:"moves_x"`
	MovesO     int       `json:"moves_o"`
	LastMove   *Move     `json:"last_move,omitempty"`
	Board      []string  `json:"board"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

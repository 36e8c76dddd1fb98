package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	BoardSize    = 20
	WinCondition = 5
)

// Mark is the content of a single cell. The byte values are the ones sent on the wire.
type Mark byte

const (
	EmptyCell Mark = ' '
	PlayerX   Mark = 'X'
	PlayerO   Mark = 'O'
)

// axes are the four directions checked through the last placed cell.
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

func (that Mark) String() string {
	return string(that)
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Index returns 0 for PlayerX, 1 for PlayerO and -1 otherwise.
func (that Mark) Index() int {
	switch that {
	case PlayerX:
		return 0
	case PlayerO:
		return 1
	default:
		return -1
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte{byte(that)}, nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	mark := Mark(text[0])
	if mark != EmptyCell && !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	*that = mark

	return nil
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a fixed BoardSize x BoardSize grid. The zero value is not usable, call NewBoard.
type Board struct {
	cells  [BoardSize][BoardSize]Mark
	filled int
}

func NewBoard() Board {
	var board Board
	for row := range board.cells {
		for col := range board.cells[row] {
			board.cells[row][col] = EmptyCell
		}
	}

	return board
}

// At returns the mark at the given cell or EmptyCell when the cell is off the board.
func (that *Board) At(row, col int) Mark {
	if !(Move{Row: row, Col: col}).InBounds() {
		return EmptyCell
	}

	return that.cells[row][col]
}

// Validate checks a candidate move without touching the board.
func (that *Board) Validate(move Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, move)
	}

	if that.cells[move.Row][move.Col] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// Set writes mark into a cell that Validate has accepted.
func (that *Board) Set(move Move, mark Mark) {
	that.cells[move.Row][move.Col] = mark
	that.filled++
}

// WinsAt reports whether the run through move along any axis reaches WinCondition.
// Only the cells on the four axes through move are inspected.
func (that *Board) WinsAt(move Move, mark Mark) bool {
	if !mark.IsPlayer() || that.At(move.Row, move.Col) != mark {
		return false
	}

	for _, axis := range axes {
		dr, dc := axis[0], axis[1]
		count := 1 + that.runLength(move, dr, dc, mark) + that.runLength(move, -dr, -dc, mark)

		if count >= WinCondition {
			return true
		}
	}

	return false
}

func (that *Board) runLength(move Move, dr, dc int, mark Mark) int {
	count := 0
	for row, col := move.Row+dr, move.Col+dc; that.At(row, col) == mark; row, col = row+dr, col+dc {
		count++
	}

	return count
}

// IsFull reports whether no EmptyCell remains.
func (that *Board) IsFull() bool {
	return that.filled == BoardSize*BoardSize
}

// Bytes returns the cells in row-major order.
func (that *Board) Bytes() []byte {
	out := make([]byte, 0, BoardSize*BoardSize)
	for _, row := range that.cells {
		for _, cell := range row {
			out = append(out, byte(cell))
		}
	}

	return out
}

// Rows renders each row as a string, the format match records are stored in.
func (that *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for i, row := range that.cells {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteByte(byte(cell))
		}
		rows[i] = sb.String()
	}

	return rows
}

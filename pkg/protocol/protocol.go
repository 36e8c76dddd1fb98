// Package protocol implements the fixed-size binary messages exchanged between the match
// server and its two peers. Every multi-byte integer is big-endian.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	SymbolX byte = byte(entity.PlayerX)
	SymbolO byte = byte(entity.PlayerO)

	TagBoard    byte = 'B'
	TagTurn     byte = 'T'
	TagGameOver byte = 'G'

	BoardBytes = entity.BoardSize * entity.BoardSize
	MoveBytes  = 8
)

// Result codes carried by a game over message.
const (
	ResultDraw         int32 = -1
	ResultXWins        int32 = 0
	ResultOWins        int32 = 1
	ResultXWinsTimeout int32 = 2
	ResultOWinsTimeout int32 = 3
)

var (
	ErrUnknownTag    = errors.New("unknown message tag")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidBoard  = errors.New("invalid board snapshot")
)

// Message is one server to client message after the symbol assignment.
type Message struct {
	Tag    byte
	Board  []byte
	Result int32
}

func WriteSymbol(w io.Writer, symbol byte) error {
	if symbol != SymbolX && symbol != SymbolO {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	return write(w, []byte{symbol})
}

func ReadSymbol(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read symbol: %w", err)
	}

	if buf[0] != SymbolX && buf[0] != SymbolO {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, buf[0])
	}

	return buf[0], nil
}

// WriteBoard sends the tag and the snapshot in a single write.
func WriteBoard(w io.Writer, board []byte) error {
	if len(board) != BoardBytes {
		return fmt.Errorf("%w: %d bytes", ErrInvalidBoard, len(board))
	}

	buf := make([]byte, 0, 1+BoardBytes)
	buf = append(buf, TagBoard)
	buf = append(buf, board...)

	return write(w, buf)
}

func WriteTurn(w io.Writer) error {
	return write(w, []byte{TagTurn})
}

func WriteGameOver(w io.Writer, code int32) error {
	buf := make([]byte, 5)
	buf[0] = TagGameOver
	binary.BigEndian.PutUint32(buf[1:], uint32(code))

	return write(w, buf)
}

// ReadMove reads one move submission. A stream closed in the middle of the message
// yields io.ErrUnexpectedEOF.
func ReadMove(r io.Reader) (row, col int32, err error) {
	var buf [MoveBytes]byte
	if _, err = io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, err
	}

	row = int32(binary.BigEndian.Uint32(buf[:4]))
	col = int32(binary.BigEndian.Uint32(buf[4:]))

	return row, col, nil
}

func WriteMove(w io.Writer, row, col int32) error {
	var buf [MoveBytes]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(row))
	binary.BigEndian.PutUint32(buf[4:], uint32(col))

	return write(w, buf[:])
}

// ReadMessage reads the next tagged message.
func ReadMessage(r io.Reader) (Message, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return Message{}, err
	}

	message := Message{Tag: tag[0]}

	switch tag[0] {
	case TagTurn:
	case TagBoard:
		message.Board = make([]byte, BoardBytes)
		if _, err := io.ReadFull(r, message.Board); err != nil {
			return Message{}, fmt.Errorf("failed to read board: %w", err)
		}
	case TagGameOver:
		var code [4]byte
		if _, err := io.ReadFull(r, code[:]); err != nil {
			return Message{}, fmt.Errorf("failed to read result: %w", err)
		}
		message.Result = int32(binary.BigEndian.Uint32(code[:]))
	default:
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag[0])
	}

	return message, nil
}

// Cell returns the board byte at row, col of a snapshot.
func Cell(board []byte, row, col int) byte {
	return board[row*entity.BoardSize+col]
}

func write(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write %q message: %w", buf[0], err)
	}

	return nil
}

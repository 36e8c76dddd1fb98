package protocol

import (
	"bytes"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyBoard() []byte {
	return bytes.Repeat([]byte{' '}, BoardBytes)
}

func TestWriteReadMessages(t *testing.T) {
	t.Run("Board, turn and game over arrive in order", func(t *testing.T) {
		// Given: a board with one X in row 1 column 2
		board := emptyBoard()
		board[1*20+2] = SymbolX

		var buf bytes.Buffer

		// When: the server writes a board, a turn prompt and a draw
		require.NoError(t, WriteBoard(&buf, board))
		require.NoError(t, WriteTurn(&buf))
		require.NoError(t, WriteGameOver(&buf, ResultDraw))

		// Then: the sizes match the fixed layout
		assert.Equal(t, 1+BoardBytes+1+5, buf.Len())

		// And: the client decodes the same messages
		message, err := ReadMessage(&buf)
		require.NoError(t, err)
		assert.Equal(t, TagBoard, message.Tag)
		assert.Equal(t, SymbolX, Cell(message.Board, 1, 2))

		message, err = ReadMessage(&buf)
		require.NoError(t, err)
		assert.Equal(t, TagTurn, message.Tag)

		message, err = ReadMessage(&buf)
		require.NoError(t, err)
		assert.Equal(t, TagGameOver, message.Tag)
		assert.Equal(t, ResultDraw, message.Result)
	})

	t.Run("Game over code is a big-endian int32", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, WriteGameOver(&buf, ResultOWinsTimeout))

		assert.Equal(t, []byte{'G', 0, 0, 0, 3}, buf.Bytes())
	})

	t.Run("Unknown tag is rejected", func(t *testing.T) {
		_, err := ReadMessage(bytes.NewReader([]byte{'Z'}))

		require.ErrorIs(t, err, ErrUnknownTag)
	})

	t.Run("Truncated board is an unexpected EOF", func(t *testing.T) {
		_, err := ReadMessage(bytes.NewReader(append([]byte{TagBoard}, make([]byte, 10)...)))

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Board with the wrong size is never written", func(t *testing.T) {
		var buf bytes.Buffer

		err := WriteBoard(&buf, make([]byte, 10))

		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.Zero(t, buf.Len())
	})
}

func TestMoves(t *testing.T) {
	t.Run("Move is two big-endian int32", func(t *testing.T) {
		var buf bytes.Buffer

		// When: a client submits (10, -1)
		require.NoError(t, WriteMove(&buf, 10, -1))

		// Then: the wire bytes are in network order
		assert.Equal(t, []byte{0, 0, 0, 10, 0xff, 0xff, 0xff, 0xff}, buf.Bytes())

		row, col, err := ReadMove(&buf)
		require.NoError(t, err)
		assert.Equal(t, int32(10), row)
		assert.Equal(t, int32(-1), col)
	})

	t.Run("Closed stream before a move is EOF", func(t *testing.T) {
		_, _, err := ReadMove(bytes.NewReader(nil))

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Closed stream in the middle of a move is unexpected EOF", func(t *testing.T) {
		_, _, err := ReadMove(bytes.NewReader([]byte{0, 0, 0, 1, 0}))

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestSymbol(t *testing.T) {
	var buf bytes.Buffer

	require.ErrorIs(t, WriteSymbol(&buf, 'A'), ErrInvalidSymbol)
	require.NoError(t, WriteSymbol(&buf, SymbolO))

	symbol, err := ReadSymbol(&buf)
	require.NoError(t, err)
	assert.Equal(t, SymbolO, symbol)

	_, err = ReadSymbol(bytes.NewReader([]byte{'?'}))
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestClient(t *testing.T) {
	// Given: a client on one end of a pipe
	server, conn := net.Pipe()
	defer server.Close()

	go func() {
		_ = WriteSymbol(server, SymbolX)
		_ = WriteTurn(server)
	}()

	client, err := NewClient(conn)
	require.NoError(t, err)
	defer client.Close()

	// Then: the symbol and the turn prompt are read
	assert.Equal(t, SymbolX, client.Symbol())

	message, err := client.Next(time.Second)
	require.NoError(t, err)
	assert.Equal(t, TagTurn, message.Tag)

	// When: the client submits a move
	go func() { _ = client.Move(3, 4) }()

	// Then: the server reads it
	row, col, err := ReadMove(server)
	require.NoError(t, err)
	assert.Equal(t, int32(3), row)
	assert.Equal(t, int32(4), col)

	// When: nothing else arrives
	_, err = client.Next(20 * time.Millisecond)

	// Then: the read times out
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

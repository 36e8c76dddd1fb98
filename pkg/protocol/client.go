package protocol

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"
)

// Client is a peer of the match server. It is not safe for concurrent use.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
	symbol byte
}

// Dial connects to the server and waits for the symbol assignment. The assignment only
// arrives once the server accepts the seat, so ctx should bound the whole wait.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}

	client, err := NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	_ = conn.SetReadDeadline(time.Time{})

	return client, nil
}

// NewClient wraps an established connection and reads the assigned symbol.
func NewClient(conn net.Conn) (*Client, error) {
	reader := bufio.NewReader(conn)

	symbol, err := ReadSymbol(reader)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:   conn,
		reader: reader,
		symbol: symbol,
	}, nil
}

func (that *Client) Symbol() byte {
	return that.symbol
}

// Next reads the next message. A positive timeout bounds the wait.
func (that *Client) Next(timeout time.Duration) (Message, error) {
	if timeout > 0 {
		if err := that.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return Message{}, fmt.Errorf("failed to set read deadline: %w", err)
		}
		defer func() { _ = that.conn.SetReadDeadline(time.Time{}) }()
	}

	return ReadMessage(that.reader)
}

// Move submits a move. The server only accepts it after prompting with a turn message.
func (that *Client) Move(row, col int) error {
	return WriteMove(that.conn, int32(row), int32(col))
}

func (that *Client) Close() error {
	return that.conn.Close()
}

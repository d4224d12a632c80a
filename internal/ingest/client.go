package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"
)

// Client sends frames to an ingest server.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new ingest client.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second // Default timeout
	}
	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Send writes frames over one connection, reading an ack after each. It stops at the first
// refused frame and reports its index.
func (c *Client) Send(ctx context.Context, frames ...Frame) error {
	var d net.Dialer
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := d.DialContext(dialCtx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	conn.SetDeadline(deadline)

	encoder := json.NewEncoder(conn)
	scanner := bufio.NewScanner(conn)

	for i, f := range frames {
		if err := encoder.Encode(f); err != nil {
			return fmt.Errorf("failed to send frame %d: %w", i, err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read ack %d: %w", i, err)
			}
			return fmt.Errorf("connection closed without ack for frame %d", i)
		}

		var ack Ack
		if err := json.Unmarshal(scanner.Bytes(), &ack); err != nil {
			return fmt.Errorf("failed to parse ack %d: %w", i, err)
		}
		if !ack.OK {
			return fmt.Errorf("frame %d refused: %w", i, errors.New(ack.Error))
		}
	}

	return nil
}

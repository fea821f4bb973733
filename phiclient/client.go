// Package phiclient is a minimal Unix-socket client for exercising a phi
// adapter sidecar from tests and example programs. It dials the sidecar's
// socket, frames requests the way phi-core would, and multiplexes
// responses and events back to callers by correlation id — the same shape
// as the TCP client transport this sidecar grew out of (one connection,
// one background reader, per-call channels keyed by an id), just adapted
// from a length-prefixed RPC body to the sidecar's own frame format and
// with unmatched frames routed to an events channel instead of dropped.
package phiclient

import (
	"fmt"
	"net"
	"sync"
	"time"

	"adapter-sidecar/domain"
	"adapter-sidecar/frame"
)

// Frame is one fully received message: its header plus JSON payload bytes.
type Frame struct {
	Header  frame.Header
	Payload []byte
}

// Client is a single-connection test/simulation client for a phi adapter
// sidecar's Unix domain socket.
type Client struct {
	conn net.Conn

	mu      sync.Mutex
	pending map[domain.CorrelationId]chan Frame

	events chan Frame

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// Dial connects to a sidecar listening on socketPath and starts the
// background frame reader.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", socketPath, err)
	}
	c := &Client{
		conn:    conn,
		pending: make(map[domain.CorrelationId]chan Frame),
		events:  make(chan Frame, 32),
		done:    make(chan struct{}),
	}
	go c.recvLoop()
	return c, nil
}

// Events returns the channel of frames that arrived with no caller waiting
// on their correlation id — every event the sidecar publishes lands here.
func (c *Client) Events() <-chan Frame { return c.events }

// Send frames and writes a message, returning a channel that receives
// exactly one Frame: whatever arrives correlated to correlationID.
func (c *Client) Send(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte) (<-chan Frame, error) {
	ch := make(chan Frame, 1)
	c.mu.Lock()
	c.pending[correlationID] = ch
	c.mu.Unlock()

	header := frame.Pack(msgType, correlationID, uint32(len(payload)))
	if _, err := c.conn.Write(append(header, payload...)); err != nil {
		c.mu.Lock()
		delete(c.pending, correlationID)
		c.mu.Unlock()
		return nil, fmt.Errorf("write: %w", err)
	}
	return ch, nil
}

// Request sends a message and blocks until its correlated response
// arrives, the connection breaks, or timeout elapses.
func (c *Client) Request(msgType domain.MessageType, correlationID domain.CorrelationId, payload []byte, timeout time.Duration) (Frame, error) {
	ch, err := c.Send(msgType, correlationID, payload)
	if err != nil {
		return Frame{}, err
	}
	select {
	case f := <-ch:
		return f, nil
	case <-time.After(timeout):
		return Frame{}, fmt.Errorf("phiclient: timed out waiting for correlation id %d", correlationID)
	case <-c.done:
		return Frame{}, c.closeErr
	}
}

// recvLoop is the sole reader of the connection: frame boundaries must be
// parsed sequentially, so exactly one goroutine ever touches conn.Read.
func (c *Client) recvLoop() {
	var rx []byte
	buf := make([]byte, 4096)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			rx = append(rx, buf[:n]...)
			for len(rx) >= frame.HeaderSize {
				h, ok := frame.Unpack(rx)
				if !ok {
					c.fail(fmt.Errorf("phiclient: invalid frame header"))
					return
				}
				frameSize := frame.HeaderSize + int(h.PayloadSize)
				if len(rx) < frameSize {
					break
				}
				payload := make([]byte, h.PayloadSize)
				copy(payload, rx[frame.HeaderSize:frameSize])
				rx = rx[frameSize:]
				c.dispatch(Frame{Header: h, Payload: payload})
			}
		}
		if err != nil {
			c.fail(err)
			return
		}
	}
}

// dispatch routes a decoded frame to whichever caller is waiting on its
// correlation id, or to the events channel if nobody is.
func (c *Client) dispatch(f Frame) {
	c.mu.Lock()
	ch, ok := c.pending[f.Header.CorrelationID]
	if ok {
		delete(c.pending, f.Header.CorrelationID)
	}
	c.mu.Unlock()
	if ok {
		ch <- f
		return
	}
	select {
	case c.events <- f:
	default:
	}
}

func (c *Client) fail(err error) {
	c.closeOnce.Do(func() {
		c.closeErr = err
		close(c.done)
	})
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// requestTimeout bounds one network round trip; a hub that never answers
// fails the request instead of stalling the caller forever.
const requestTimeout = 30 * time.Second

// Config carries the connection settings for one hub.
type Config struct {
	URL      string // e.g. wss://web.spruthub.ru/spruthub
	Email    string
	Password string
	Serial   string
}

// Client is a WebSocket JSON-RPC client for Sprut.hub. A single Client is
// shared across tool invocations; writes are serialized internally so
// concurrent callers are safe.
type Client struct {
	cfg Config

	writeMu sync.Mutex // serializes writes on the socket

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	nextID    int64
	pending   map[int64]chan rpcResult
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	ID     *int64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

type rpcResult struct {
	result json.RawMessage
	err    error
}

// NewClient creates a Client; it does not connect.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		pending: make(map[int64]chan rpcResult),
	}
}

// Connect dials the hub, starts the receive loop and authenticates.
// Connecting an already-connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	log.Info().Str("url", c.cfg.URL).Msg("connecting to hub")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.cfg.URL, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	go c.readLoop(conn)

	if err := c.authenticate(ctx); err != nil {
		c.Close()
		return err
	}

	log.Info().Msg("connected and authenticated")
	return nil
}

func (c *Client) authenticate(ctx context.Context) error {
	result, err := c.CallMethod(ctx, "auth", map[string]any{
		"email":    c.cfg.Email,
		"password": c.cfg.Password,
		"serial":   c.cfg.Serial,
	})
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}

	var status struct {
		IsSuccess bool   `json:"isSuccess"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(result, &status); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	if !status.IsSuccess {
		msg := status.Message
		if msg == "" {
			msg = "unknown error"
		}
		return fmt.Errorf("authentication failed: %s", msg)
	}
	return nil
}

// CallMethod invokes a hub JSON-RPC method and waits for its response.
func (c *Client) CallMethod(ctx context.Context, method string, params any) (json.RawMessage, error) {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}
	conn := c.conn
	c.nextID++
	id := c.nextID
	ch := make(chan rpcResult, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	if params == nil {
		params = map[string]any{}
	}
	req := rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: id}

	log.Debug().Int64("id", id).Str("method", method).Msg("sending hub request")

	c.writeMu.Lock()
	err := conn.WriteJSON(req)
	c.writeMu.Unlock()
	if err != nil {
		c.dropPending(id)
		return nil, fmt.Errorf("write request %d: %w", id, err)
	}

	timer := time.NewTimer(requestTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.result, res.err
	case <-ctx.Done():
		c.dropPending(id)
		return nil, ctx.Err()
	case <-timer.C:
		c.dropPending(id)
		return nil, fmt.Errorf("request %d (%s): %w", id, method, ErrTimeout)
	}
}

// readLoop correlates incoming responses to pending requests. Messages
// without a matching id are hub notifications and are only logged.
func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Warn().Err(err).Msg("hub connection closed")
			c.teardown(conn)
			return
		}

		var resp rpcResponse
		if err := json.Unmarshal(message, &resp); err != nil {
			log.Warn().Err(err).Msg("failed to decode hub message")
			continue
		}
		if resp.ID == nil {
			log.Debug().RawJSON("message", message).Msg("hub notification")
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[*resp.ID]
		if ok {
			delete(c.pending, *resp.ID)
		}
		c.mu.Unlock()
		if !ok {
			log.Debug().Int64("id", *resp.ID).Msg("response for unknown request")
			continue
		}

		if len(resp.Error) > 0 {
			ch <- rpcResult{err: fmt.Errorf("hub error: %s", resp.Error)}
		} else {
			ch <- rpcResult{result: resp.Result}
		}
	}
}

// teardown marks the client disconnected and fails all in-flight requests.
func (c *Client) teardown(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != conn {
		return // a newer connection took over
	}
	c.connected = false
	c.conn = nil
	for id, ch := range c.pending {
		ch <- rpcResult{err: ErrClosed}
		delete(c.pending, id)
	}
}

func (c *Client) dropPending(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// IsConnected reports whether the client currently holds an authenticated
// connection.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Close shuts down the connection. In-flight requests fail with ErrClosed.
func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
		c.teardown(conn)
		log.Info().Msg("disconnected from hub")
	}
}

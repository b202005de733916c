// Package remote is a Socket.IO client for a grid served by package server.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/cellgrid/internal/ctxlog"
	"github.com/specialistvlad/cellgrid/internal/protocol"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultTimeout applies to requests whose context has no deadline.
const DefaultTimeout = 10 * time.Second

// ErrClosed is returned for requests on a closed client.
var ErrClosed = errors.New("client is closed")

// RequestError is a request the server rejected.
type RequestError struct {
	Event   string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Event, e.Message)
}

// Client talks to a grid server over a single Socket.IO connection.
type Client struct {
	io   *socket.Socket
	emit func(event string, payload map[string]any)

	nextID  atomic.Uint64
	mu      sync.Mutex
	pending map[string]chan protocol.Result
	closed  bool

	onChange func(protocol.Changed)
}

func newClient(emit func(event string, payload map[string]any)) *Client {
	return &Client{
		emit:    emit,
		pending: make(map[string]chan protocol.Result),
	}
}

// Dial connects to the grid server at rawURL and waits for the connection to
// be established.
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	logger := ctxlog.FromContext(ctx).With("url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: scheme and host are required", rawURL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)

	c := newClient(func(event string, payload map[string]any) {
		io.Emit(event, payload)
	})
	c.io = io

	io.On(types.EventName(protocol.EventResult), c.handleResult)
	io.On(types.EventName(protocol.EventChanged), c.handleChanged)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to grid server", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, ok := errs[0].(error)
		if !ok {
			err = fmt.Errorf("%v", errs[0])
		}
		connectChan <- err
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	timeout := time.NewTimer(DefaultTimeout)
	defer timeout.Stop()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return c, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-timeout.C:
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", DefaultTimeout)
	}
}

// OnChange registers fn to receive change broadcasts. It replaces any
// previously registered function.
func (c *Client) OnChange(fn func(protocol.Changed)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Set stores source in cell and returns the cell's new display value.
func (c *Client) Set(ctx context.Context, cell, source string) (string, error) {
	res, err := c.request(ctx, protocol.EventSet, map[string]any{"cell": cell, "source": source})
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// Get returns the display value of cell.
func (c *Client) Get(ctx context.Context, cell string) (string, error) {
	res, err := c.request(ctx, protocol.EventGet, map[string]any{"cell": cell})
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// Snapshot returns every non-blank cell.
func (c *Client) Snapshot(ctx context.Context) ([]protocol.CellValue, error) {
	res, err := c.request(ctx, protocol.EventSnapshot, map[string]any{})
	if err != nil {
		return nil, err
	}
	return res.Cells, nil
}

// Close disconnects and fails any requests still waiting for a reply.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	c.mu.Unlock()

	if c.io != nil {
		c.io.Disconnect()
	}
	return nil
}

func (c *Client) request(ctx context.Context, event string, payload map[string]any) (protocol.Result, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	id := strconv.FormatUint(c.nextID.Add(1), 10)
	payload["id"] = id
	reply := make(chan protocol.Result, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return protocol.Result{}, ErrClosed
	}
	c.pending[id] = reply
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	ctxlog.FromContext(ctx).Debug("Emitting request", "event", event, "id", id)
	c.emit(event, payload)

	select {
	case res, ok := <-reply:
		if !ok {
			return protocol.Result{}, ErrClosed
		}
		if !res.OK {
			return res, &RequestError{Event: event, Message: res.Error}
		}
		return res, nil
	case <-ctx.Done():
		return protocol.Result{}, fmt.Errorf("waiting for %s reply: %w", event, ctx.Err())
	}
}

// handleResult routes a result event to the request waiting for it.
func (c *Client) handleResult(args ...any) {
	var res protocol.Result
	if err := protocol.Decode(args, &res); err != nil {
		return
	}

	c.mu.Lock()
	reply, ok := c.pending[res.ID]
	if ok {
		delete(c.pending, res.ID)
	}
	c.mu.Unlock()

	if ok {
		reply <- res
	}
}

func (c *Client) handleChanged(args ...any) {
	var msg protocol.Changed
	if err := protocol.Decode(args, &msg); err != nil {
		return
	}

	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

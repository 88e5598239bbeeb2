// Package transport owns the live WebSocket leg of a conversation:
// dialing, the authenticated handshake, inbound frame parsing and the
// reconnect state machine. All transport failures are absorbed here and
// logged; callers keep working in fallback-only mode.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"carelink/contract"
	"carelink/errors"
)

// State is the lifecycle position of a channel session.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosedUnexpected
	StateClosedIntentional
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateConnecting:
		return "CONNECTING"
	case StateOpen:
		return "OPEN"
	case StateClosedUnexpected:
		return "CLOSED_UNEXPECTED"
	case StateClosedIntentional:
		return "CLOSED_INTENTIONAL"
	default:
		return "UNKNOWN"
	}
}

// Channel maintains at most one live connection for one conversation.
// It is owned by the session that created it and must not be shared
// across conversations or reused after Disconnect.
type Channel struct {
	id             uuid.UUID
	baseURL        string
	conversationID int64
	tokens         contract.TokenSource
	sink           contract.MessageSink
	retry          RetryPolicy
	dialer         *websocket.Dialer
	log            *slog.Logger

	mu           sync.Mutex
	conn         *websocket.Conn
	state        State
	attempts     int
	hasConnected bool
	closed       bool
	timer        *time.Timer
	ctx          context.Context
}

func NewChannel(log *slog.Logger, baseURL string, conversationID int64,
	tokens contract.TokenSource, sink contract.MessageSink,
	retry RetryPolicy, handshakeTimeout time.Duration) *Channel {
	return &Channel{
		id:             uuid.New(),
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		conversationID: conversationID,
		tokens:         tokens,
		sink:           sink,
		retry:          retry,
		dialer:         &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		log:            log,
		state:          StateIdle,
	}
}

// Connect opens the live connection. It is idempotent while a connection
// is pending or open, and a no-op after Disconnect. A missing credential
// or a failed dial is logged, never returned; the screen keeps working
// through the fallback path.
func (c *Channel) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.state == StateConnecting || c.state == StateOpen {
		c.mu.Unlock()
		return
	}
	token, err := c.tokens.AccessToken()
	if err != nil || token == "" {
		c.mu.Unlock()
		c.log.Warn("No access token available, live channel disabled",
			slog.String("channel", c.id.String()))
		return
	}
	c.state = StateConnecting
	c.ctx = ctx
	c.mu.Unlock()

	target := fmt.Sprintf("%s/ws/conversations/%d?token=%s",
		c.baseURL, c.conversationID, url.QueryEscape(token))
	conn, resp, err := c.dialer.DialContext(ctx, target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		c.log.Warn("Live connection failed",
			slog.String("channel", c.id.String()),
			slog.String("error", err.Error()))
		c.mu.Lock()
		// Disconnect may have landed while the dial was in flight; the
		// intentional close then owns the final state.
		if !c.closed {
			c.state = StateClosedUnexpected
			c.scheduleReconnectLocked()
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if c.closed {
		// Disconnect raced the handshake; the session is already gone.
		c.mu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.state = StateOpen
	c.attempts = 0
	c.hasConnected = true
	c.mu.Unlock()

	c.log.Info("Live channel open",
		slog.String("channel", c.id.String()),
		slog.Int64("conversation", c.conversationID))
	go c.readLoop(ctx, conn)
}

// Send writes one chat frame over the live connection. The server
// assigns id and timestamp; nothing is queued when the channel is not
// open.
func (c *Channel) Send(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrChannelClosed
	}
	if c.state != StateOpen || c.conn == nil {
		return errors.ErrChannelNotOpen
	}
	return c.conn.WriteJSON(outboundFrame{Content: text})
}

// Disconnect marks the session intentionally closed, stops any pending
// reconnect and closes the socket. Safe to call repeatedly and from
// teardown paths.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.conn != nil {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = c.conn.Close()
		c.conn = nil
	}
	c.state = StateClosedIntentional
}

func (c *Channel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateOpen
}

func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attempts reports how many reconnects have been scheduled since the
// last successful open.
func (c *Channel) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn, err)
			return
		}
		msg, ok := DecodeFrame(data)
		if !ok {
			c.log.Debug("Discarding non-chat frame",
				slog.String("channel", c.id.String()))
			continue
		}
		if err := c.sink.Consume(ctx, msg); err != nil {
			c.log.Warn("Message sink rejected frame",
				slog.Int64("message", msg.ID),
				slog.String("error", err.Error()))
		}
	}
}

func (c *Channel) handleClose(conn *websocket.Conn, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != conn {
		// A stale read loop from an earlier connection; the current
		// session already moved on.
		return
	}
	c.conn = nil
	if c.closed {
		c.state = StateClosedIntentional
		return
	}
	c.log.Warn("Live channel dropped",
		slog.String("channel", c.id.String()),
		slog.String("error", err.Error()))
	c.state = StateClosedUnexpected
	c.scheduleReconnectLocked()
}

// scheduleReconnectLocked arms the retry timer. Retries happen only for
// channels that have been open at least once and only up to the policy
// ceiling; past that the channel stays CLOSED_UNEXPECTED until the
// owning screen builds a fresh session.
func (c *Channel) scheduleReconnectLocked() {
	if c.closed || !c.hasConnected {
		return
	}
	if c.retry.Exhausted(c.attempts) {
		c.log.Warn("Reconnect attempts exhausted",
			slog.String("channel", c.id.String()),
			slog.Int("attempts", c.attempts))
		return
	}
	c.attempts++
	attempt := c.attempts
	ctx := c.ctx
	c.timer = time.AfterFunc(c.retry.Delay(attempt), func() {
		c.log.Info("Reconnecting live channel",
			slog.String("channel", c.id.String()),
			slog.Int("attempt", attempt))
		c.Connect(ctx)
	})
}

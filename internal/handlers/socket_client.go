package handlers

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/realtime"

	"github.com/gorilla/websocket"
)

const (
	stateConnecting int32 = iota
	stateOpen
	stateClosed
)

// SocketOptions tunes every socket connection the server accepts.
type SocketOptions struct {
	SendBuffer     int
	WriteWait      time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
}

func (o SocketOptions) withDefaults() SocketOptions {
	if o.SendBuffer < 1 {
		o.SendBuffer = 256
	}
	if o.WriteWait <= 0 {
		o.WriteWait = 10 * time.Second
	}
	if o.PongWait <= 0 {
		o.PongWait = 60 * time.Second
	}
	if o.MaxMessageSize <= 0 {
		o.MaxMessageSize = 64 * 1024
	}
	return o
}

func (o SocketOptions) pingPeriod() time.Duration {
	return (o.PongWait * 9) / 10
}

// SocketClient is a realtime.Connection over a gorilla websocket. Frames
// are queued on send and written by a single writer goroutine.
type SocketClient struct {
	id    string
	room  realtime.Room
	ws    *websocket.Conn
	relay *realtime.Relay
	opts  SocketOptions

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	state     atomic.Int32
}

func NewSocketClient(id string, room realtime.Room, ws *websocket.Conn, relay *realtime.Relay, opts SocketOptions) *SocketClient {
	opts = opts.withDefaults()
	return &SocketClient{
		id:    id,
		room:  room,
		ws:    ws,
		relay: relay,
		opts:  opts,
		send:  make(chan []byte, opts.SendBuffer),
		done:  make(chan struct{}),
	}
}

func (c *SocketClient) ID() string { return c.id }

// Send queues frame without blocking. A full queue counts as a failed
// send so one slow client cannot stall the room.
func (c *SocketClient) Send(frame []byte) error {
	if c.state.Load() == stateClosed {
		return errs.ErrConnectionClosed
	}
	select {
	case <-c.done:
		return errs.ErrConnectionClosed
	default:
	}
	select {
	case c.send <- frame:
		return nil
	default:
		return errs.ErrSendBufferFull
	}
}

// Close marks the connection closed and stops the writer, which sends a
// close frame and releases the socket. Safe to call more than once.
func (c *SocketClient) Close() error {
	c.closeOnce.Do(func() {
		c.state.Store(stateClosed)
		close(c.done)
	})
	return nil
}

// Run joins the room and serves the connection until it closes.
func (c *SocketClient) Run(ctx context.Context) {
	if !c.state.CompareAndSwap(stateConnecting, stateOpen) {
		return
	}
	c.relay.OnConnect(c, c.room)
	go c.writePump()
	c.readPump(ctx)
}

func (c *SocketClient) readPump(ctx context.Context) {
	defer func() {
		c.relay.OnDisconnect(c, c.room)
		_ = c.Close()
	}()

	c.ws.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				slog.Warn("socket read failed", "room", c.room.String(), "connectionId", c.id, "error", err)
			}
			return
		}
		c.relay.OnClientMessage(ctx, c, c.room, data)
	}
}

func (c *SocketClient) writePump() {
	ticker := time.NewTicker(c.opts.pingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				slog.Debug("socket write failed", "room", c.room.String(), "connectionId", c.id, "error", err)
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		case <-c.done:
			_ = c.ws.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.opts.WriteWait),
			)
			return
		}
	}
}

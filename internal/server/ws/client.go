package ws

import (
	"context"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	readLimit    = 4096
	sendBufSize  = 64
)

// Client is one websocket connection.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn

	send chan []byte
	done chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	conn.SetReadLimit(readLimit)
	return &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufSize),
		done: make(chan struct{}),
	}
}

// ReadPump reads client events until the connection closes.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.leave(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var event Event
		if err := wsjson.Read(ctx, c.conn, &event); err != nil {
			if websocket.CloseStatus(err) == -1 {
				c.hub.logger.Debug(ctx, "read failed", "client", c.id, "err", err)
			}
			return
		}
		c.handleEvent(ctx, &event)
	}
}

// WritePump writes queued messages and keeps the connection alive.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			wctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(wctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				c.hub.logger.Debug(ctx, "write failed", "client", c.id, "err", err)
				return
			}

		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pctx)
			cancel()
			if err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// handleEvent answers a client event directly on the connection; only the
// hub writes to send.
func (c *Client) handleEvent(ctx context.Context, event *Event) {
	reply := &Event{Type: EventTypePong}
	if event.Type != EventTypePing {
		var err error
		reply, err = NewEvent(EventTypeError, ErrorPayload{Code: "UNKNOWN_EVENT", Message: "unknown event type: " + event.Type})
		if err != nil {
			return
		}
	}

	wctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	if err := wsjson.Write(wctx, c.conn, reply); err != nil {
		c.hub.logger.Debug(ctx, "reply failed", "client", c.id, "err", err)
	}
}

package ws

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// ServeWS upgrades the request and streams hub events to it.
func ServeWS(ctx context.Context, hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			hub.logger.Warn(r.Context(), "websocket accept failed", "err", err)
			return
		}

		client := NewClient(hub, conn, uuid.NewString())
		if !hub.join(client) {
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		}

		go client.WritePump(ctx)
		go client.ReadPump(ctx)
	}
}

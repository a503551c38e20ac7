package ws

import (
	"context"

	"github.com/dmitrijs2005/artspace/internal/gallery"
)

// HubNotifier publishes gallery events through the Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(ctx context.Context, e gallery.Event) {
	evt, err := NewEvent(e.Type, e)
	if err != nil {
		n.hub.logger.Error(ctx, "marshal gallery event", "type", e.Type, "err", err)
		return
	}
	n.hub.Broadcast(evt)
}

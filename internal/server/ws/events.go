package ws

import (
	"encoding/json"
	"time"
)

// Event types, client to server.
const (
	EventTypePing = "ping"
)

// Event types, server to client.
const (
	EventTypePong  = "pong"
	EventTypeError = "error"
)

// Event is the envelope of every websocket message.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server to client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}

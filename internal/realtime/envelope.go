package realtime

import (
	"encoding/json"
	"fmt"

	"eventPlanner/internal/enums"
)

// Envelope is a control frame sent to a single client.
type Envelope struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Update is the frame fanned out to a room. Data is always present, a nil
// payload encodes as null.
type Update struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func encodeUpdate(kind string, payload any) ([]byte, error) {
	frame, err := json.Marshal(Update{Type: kind, Data: payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s update: %w", kind, err)
	}
	return frame, nil
}

func connectionEstablishedFrame(room Room) []byte {
	frame, _ := json.Marshal(Envelope{
		Type:    enums.SOCKET_EVENT_CONNECTION_ESTABLISHED,
		Message: fmt.Sprintf("Connected to %s %s", room.Domain, room.EventID),
	})
	return frame
}

func invalidJSONFrame() []byte {
	frame, _ := json.Marshal(Envelope{
		Type:    enums.SOCKET_EVENT_ERROR,
		Message: enums.SOCKET_MESSAGE_INVALID_JSON,
	})
	return frame
}

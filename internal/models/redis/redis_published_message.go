package models

import "encoding/json"

const REDIS_CHANNEL_EVENT_UPDATES = "event_updates"

// RedisPublishedMessage carries one already-encoded frame to every server
// process subscribed to the updates channel.
type RedisPublishedMessage struct {
	Domain  string          `json:"domain"`
	EventID string          `json:"event_id"`
	Frame   json.RawMessage `json:"frame"`
}

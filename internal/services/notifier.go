package services

import (
	"context"
	"strconv"

	"eventPlanner/internal/realtime"
)

// Notifier hands a typed update to the event's live room.
type Notifier interface {
	Publish(ctx context.Context, room realtime.Room, kind string, payload any) error
}

// EventRoom is the live room of a persisted event.
func EventRoom(domain realtime.Domain, eventID uint) realtime.Room {
	return realtime.NewRoom(domain, strconv.FormatUint(uint64(eventID), 10))
}

// notify publishes {"action": action, key: entity}. Delivery is best effort,
// so a failure never fails the mutation that triggered it.
func notify(ctx context.Context, n Notifier, domain realtime.Domain, eventID uint, kind, action, key string, entity any) {
	if n == nil {
		return
	}
	payload := map[string]any{
		"action": action,
		key:      entity,
	}
	_ = n.Publish(ctx, EventRoom(domain, eventID), kind, payload)
}

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"eventPlanner/internal/enums"
)

// Relay fans update messages out to the members of a room. It is the single
// entry point for both REST mutations and client-originated messages.
type Relay struct {
	layer Layer
}

func NewRelay(layer Layer) *Relay {
	return &Relay{layer: layer}
}

// Publish frames payload as {"type": kind, "data": payload} and delivers it
// to every connection currently in room. Per-connection failures never
// surface here; an error means nothing was handed to the layer.
func (r *Relay) Publish(ctx context.Context, room Room, kind string, payload any) error {
	frame, err := encodeUpdate(kind, payload)
	if err != nil {
		slog.Error("encoding update", "room", room.String(), "kind", kind, "error", err)
		return err
	}
	if err := r.layer.SendTo(ctx, room, frame); err != nil {
		slog.Error("publishing update", "room", room.String(), "kind", kind, "error", err)
		return err
	}
	return nil
}

// OnConnect registers conn in room and greets it. The greeting is queued
// before the join so it is always the first frame the client sees.
func (r *Relay) OnConnect(conn Connection, room Room) {
	if err := conn.Send(connectionEstablishedFrame(room)); err != nil {
		slog.Warn("sending connection greeting", "room", room.String(), "connectionId", conn.ID(), "error", err)
	}
	r.layer.Join(room, conn)
}

func (r *Relay) OnDisconnect(conn Connection, room Room) {
	r.layer.Leave(room, conn)
}

// OnClientMessage echoes a client's JSON message to the whole room, sender
// included, as a broadcast_update. Anything that is not JSON earns the
// sender an error frame and nothing else.
func (r *Relay) OnClientMessage(ctx context.Context, conn Connection, room Room, raw []byte) {
	if !json.Valid(raw) {
		if err := conn.Send(invalidJSONFrame()); err != nil {
			slog.Warn("sending invalid json notice", "room", room.String(), "connectionId", conn.ID(), "error", err)
		}
		return
	}
	// Publish logs its own failures.
	r.Publish(ctx, room, enums.SOCKET_EVENT_BROADCAST_UPDATE, json.RawMessage(raw))
}

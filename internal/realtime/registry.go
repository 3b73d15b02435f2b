package realtime

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
)

// Registry is the in-process Layer: room -> connection id -> connection.
type Registry struct {
	mu    sync.RWMutex
	rooms map[Room]map[string]Connection
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[Room]map[string]Connection),
	}
}

func (r *Registry) Join(room Room, conn Connection) {
	r.mu.Lock()
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[string]Connection)
		r.rooms[room] = members
	}
	members[conn.ID()] = conn
	count := len(members)
	r.mu.Unlock()

	slog.Debug("connection joined room", "room", room.String(), "connectionId", conn.ID(), "members", count)
}

func (r *Registry) Leave(room Room, conn Connection) {
	r.mu.Lock()
	members, ok := r.rooms[room]
	if !ok {
		r.mu.Unlock()
		return
	}
	if current, ok := members[conn.ID()]; !ok || !sameConnection(current, conn) {
		r.mu.Unlock()
		return
	}
	delete(members, conn.ID())
	count := len(members)
	if count == 0 {
		delete(r.rooms, room)
	}
	r.mu.Unlock()

	slog.Debug("connection left room", "room", room.String(), "connectionId", conn.ID(), "members", count)
}

// Members returns a copy of the room's current members.
func (r *Registry) Members(room Room) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[room]
	snapshot := make([]Connection, 0, len(members))
	for _, conn := range members {
		snapshot = append(snapshot, conn)
	}
	return snapshot
}

// SendTo delivers frame to every current member of room. A member whose
// send fails is removed from the room and closed; the others still receive it.
func (r *Registry) SendTo(_ context.Context, room Room, frame []byte) error {
	for _, conn := range r.Members(room) {
		if err := conn.Send(frame); err != nil {
			slog.Warn("dropping connection after failed send", "room", room.String(), "connectionId", conn.ID(), "error", err)
			r.Leave(room, conn)
			if err := conn.Close(); err != nil {
				slog.Debug("closing dropped connection", "connectionId", conn.ID(), "error", err)
			}
		}
	}
	return nil
}

// Stats reports the number of routable rooms and member connections.
func (r *Registry) Stats() (rooms, connections int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms = len(r.rooms)
	for _, members := range r.rooms {
		connections += len(members)
	}
	return rooms, connections
}

// CloseAll closes every member connection and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	rooms := r.rooms
	r.rooms = make(map[Room]map[string]Connection)
	r.mu.Unlock()

	for _, members := range rooms {
		for _, conn := range members {
			if err := conn.Close(); err != nil {
				slog.Debug("closing connection on shutdown", "connectionId", conn.ID(), "error", err)
			}
		}
	}
}

// sameConnection reports whether a and b are the same session. Non-comparable
// implementations cannot be told apart from a reconnect, so the ID decides.
func sameConnection(a, b Connection) bool {
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return a.ID() == b.ID()
	}
	return a == b
}

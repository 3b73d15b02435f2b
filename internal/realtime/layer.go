package realtime

import "context"

// Connection is one live client session as seen by the relay.
// Send must not block and must fail once the connection is closed.
// Implementations should be pointer types: Leave tells a session from a
// reconnect with the same ID by identity.
type Connection interface {
	ID() string
	Send(frame []byte) error
	Close() error
}

// Layer owns room membership and group delivery. The in-memory Registry
// serves a single process; RedisLayer shares delivery across processes.
type Layer interface {
	Join(room Room, conn Connection)
	Leave(room Room, conn Connection)
	Members(room Room) []Connection
	SendTo(ctx context.Context, room Room, frame []byte) error
}

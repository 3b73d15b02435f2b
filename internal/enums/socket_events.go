package enums

// Update kinds published into event rooms.
const (
	SOCKET_EVENT_ELEMENT_UPDATE   = "element_update"
	SOCKET_EVENT_GUEST_UPDATE     = "guest_update"
	SOCKET_EVENT_GROUP_UPDATE     = "group_update"
	SOCKET_EVENT_EVENT_UPDATE     = "event_update"
	SOCKET_EVENT_BOOTH_UPDATE     = "booth_update"
	SOCKET_EVENT_VENDOR_UPDATE    = "vendor_update"
	SOCKET_EVENT_SESSION_UPDATE   = "session_update"
	SOCKET_EVENT_ROUTE_UPDATE     = "route_update"
	SOCKET_EVENT_BROADCAST_UPDATE = "broadcast_update"
)

// Control kinds sent to a single connection.
const (
	SOCKET_EVENT_CONNECTION_ESTABLISHED = "connection_established"
	SOCKET_EVENT_ERROR                  = "error"
)

const SOCKET_MESSAGE_INVALID_JSON = "Invalid JSON"

package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrUserNotFound       = Error("user not found")
	ErrWrongPassword      = Error("wrong password")
	ErrInvalidToken       = Error("invalid token")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidPassword    = Error("invalid password")
	ErrInvalidUser        = Error("invalid user")
	ErrFirstName          = Error("first name is empty or too short")
	ErrLastName           = Error("last name is empty or too short")

	ErrNotFound         = Error("record not found")
	ErrInvalidParams    = Error("invalid params")
	ErrInvalidDomain    = Error("invalid event domain")
	ErrInvalidEventId   = Error("invalid event id")
	ErrEventName        = Error("event name is required")
	ErrEventTimeRange   = Error("event end time is before start time")
	ErrElementType      = Error("element type is required")
	ErrElementSize      = Error("element width and height must be positive")
	ErrElementCapacity  = Error("element capacity must not be negative")
	ErrGroupName        = Error("group name is required")
	ErrGuestName        = Error("guest name is required")
	ErrBoothLabel       = Error("booth label is required")
	ErrBoothSize        = Error("booth width and height must be positive")
	ErrBoothStatus      = Error("booth status must be available, reserved or occupied")
	ErrVendorCompany    = Error("vendor company name is required")
	ErrSearchQuery      = Error("query parameter required")
	ErrUpdateKind       = Error("update kind is required")
	ErrEmptyFile        = Error("uploaded file is empty")
	ErrBoothAlreadyUsed = Error("booth is already assigned to another vendor")
	ErrBoothOccupied    = Error("booth already has a vendor")
	ErrSeatTaken        = Error("seat is already taken")
	ErrSeatNumber       = Error("seat number is outside the element capacity")
	ErrNotSeated        = Error("guest has no seat assignment")
	ErrNoVendor         = Error("booth has no vendor")
	ErrBulkEmpty        = Error("at least one item is required")
	ErrSessionTitle     = Error("session title is required")
	ErrSessionDate      = Error("session date must be YYYY-MM-DD")
	ErrSessionTime      = Error("session times must be HH:MM")
	ErrSessionTimeRange = Error("session end time is before start time")
	ErrSessionCapacity  = Error("session capacity must not be negative")
	ErrRouteName        = Error("route name is required")
	ErrRouteBooths      = Error("route must list at least one booth")

	ErrConnectionClosed = Error("connection is closed")
	ErrSendBufferFull   = Error("connection send buffer is full")
)

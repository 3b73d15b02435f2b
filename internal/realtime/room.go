package realtime

import (
	"eventPlanner/internal/errs"
)

// Domain is the planner an event belongs to.
type Domain string

const (
	DomainConference Domain = "conference"
	DomainTradeshow  Domain = "tradeshow"
)

// DefaultEventID is used when a client connects without naming an event.
const DefaultEventID = "default"

func ParseDomain(value string) (Domain, error) {
	switch Domain(value) {
	case DomainConference, DomainTradeshow:
		return Domain(value), nil
	default:
		return "", errs.ErrInvalidDomain
	}
}

// Room addresses the set of connections following one event.
type Room struct {
	Domain  Domain
	EventID string
}

func NewRoom(domain Domain, eventID string) Room {
	if eventID == "" {
		eventID = DefaultEventID
	}
	return Room{Domain: domain, EventID: eventID}
}

// String renders the room as "{domain}_{event_id}".
func (r Room) String() string {
	return string(r.Domain) + "_" + r.EventID
}

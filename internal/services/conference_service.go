package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventPlanner/internal/enums"
	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/validators"
)

type ConferenceService struct {
	events   EventStore
	store    ConferenceStore
	notifier Notifier
	now      func() time.Time
}

func NewConferenceService(events EventStore, store ConferenceStore, notifier Notifier) *ConferenceService {
	return &ConferenceService{
		events:   events,
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

func (cs *ConferenceService) ownedEvent(ctx context.Context, userID, eventID uint) (*models.Event, error) {
	return cs.events.FindOwnedEvent(ctx, eventID, userID, string(realtime.DomainConference))
}

func (cs *ConferenceService) notify(ctx context.Context, eventID uint, kind, action, key string, entity any) {
	notify(ctx, cs.notifier, realtime.DomainConference, eventID, kind, action, key, entity)
}

func (cs *ConferenceService) ListElements(ctx context.Context, userID, eventID uint) ([]models.ConferenceElement, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return cs.store.ListElements(ctx, eventID)
}

func (cs *ConferenceService) CreateElement(ctx context.Context, userID, eventID uint, req *models.ConferenceElementRequest) (*models.ConferenceElement, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	element := &models.ConferenceElement{EventID: eventID}
	req.Apply(element)
	if err := validators.ValidateElement(element); err != nil {
		return nil, err
	}
	if err := cs.store.SaveElement(ctx, element); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_ELEMENT_UPDATE, enums.UPDATE_ACTION_CREATED, "element", element)
	return element, nil
}

// CreateElements places a batch of elements in one transaction. Nothing is
// saved when any element is invalid.
func (cs *ConferenceService) CreateElements(ctx context.Context, userID, eventID uint, reqs []models.ConferenceElementRequest) ([]*models.ConferenceElement, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, validators.ValidationErrors{errs.ErrBulkEmpty}
	}
	elements := make([]*models.ConferenceElement, 0, len(reqs))
	for i := range reqs {
		element := &models.ConferenceElement{EventID: eventID}
		reqs[i].Apply(element)
		if err := validators.ValidateElement(element); err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	if err := cs.store.CreateElements(ctx, elements); err != nil {
		return nil, err
	}
	for _, element := range elements {
		cs.notify(ctx, eventID, enums.SOCKET_EVENT_ELEMENT_UPDATE, enums.UPDATE_ACTION_CREATED, "element", element)
	}
	return elements, nil
}

func (cs *ConferenceService) UpdateElement(ctx context.Context, userID, eventID, elementID uint, req *models.ConferenceElementRequest) (*models.ConferenceElement, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	element, err := cs.store.FindElement(ctx, eventID, elementID)
	if err != nil {
		return nil, err
	}
	req.Apply(element)
	if err := validators.ValidateElement(element); err != nil {
		return nil, err
	}
	if err := cs.store.SaveElement(ctx, element); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_ELEMENT_UPDATE, enums.UPDATE_ACTION_UPDATED, "element", element)
	return element, nil
}

func (cs *ConferenceService) DeleteElement(ctx context.Context, userID, eventID, elementID uint) error {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := cs.store.DeleteElement(ctx, eventID, elementID); err != nil {
		return err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_ELEMENT_UPDATE, enums.UPDATE_ACTION_DELETED, "element", map[string]uint{"id": elementID})
	return nil
}

func (cs *ConferenceService) ListGroups(ctx context.Context, userID, eventID uint) ([]models.ConferenceGroup, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return cs.store.ListGroups(ctx, eventID)
}

func (cs *ConferenceService) CreateGroup(ctx context.Context, userID, eventID uint, req *models.ConferenceGroupRequest) (*models.ConferenceGroup, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	group := &models.ConferenceGroup{EventID: eventID}
	req.Apply(group)
	if err := validators.ValidateGroup(group); err != nil {
		return nil, err
	}
	if err := cs.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GROUP_UPDATE, enums.UPDATE_ACTION_CREATED, "group", group)
	return group, nil
}

func (cs *ConferenceService) UpdateGroup(ctx context.Context, userID, eventID, groupID uint, req *models.ConferenceGroupRequest) (*models.ConferenceGroup, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	group, err := cs.store.FindGroup(ctx, eventID, groupID)
	if err != nil {
		return nil, err
	}
	req.Apply(group)
	if err := validators.ValidateGroup(group); err != nil {
		return nil, err
	}
	if err := cs.store.SaveGroup(ctx, group); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GROUP_UPDATE, enums.UPDATE_ACTION_UPDATED, "group", group)
	return group, nil
}

func (cs *ConferenceService) DeleteGroup(ctx context.Context, userID, eventID, groupID uint) error {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := cs.store.DeleteGroup(ctx, eventID, groupID); err != nil {
		return err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GROUP_UPDATE, enums.UPDATE_ACTION_DELETED, "group", map[string]uint{"id": groupID})
	return nil
}

func (cs *ConferenceService) ListGuests(ctx context.Context, userID, eventID uint) ([]models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return cs.store.ListGuests(ctx, eventID)
}

func (cs *ConferenceService) CreateGuest(ctx context.Context, userID, eventID uint, req *models.ConferenceGuestRequest) (*models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guest := &models.ConferenceGuest{EventID: eventID}
	req.Apply(guest)
	if err := cs.validateGuest(ctx, guest); err != nil {
		return nil, err
	}
	if err := cs.store.SaveGuest(ctx, guest); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_CREATED, "guest", guest)
	return guest, nil
}

func (cs *ConferenceService) UpdateGuest(ctx context.Context, userID, eventID, guestID uint, req *models.ConferenceGuestRequest) (*models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guest, err := cs.store.FindGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}
	req.Apply(guest)
	if err := cs.validateGuest(ctx, guest); err != nil {
		return nil, err
	}
	if err := cs.store.SaveGuest(ctx, guest); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_UPDATED, "guest", guest)
	return guest, nil
}

// validateGuest checks the guest fields and that a seat assignment points
// at an element of the same event, within its capacity, on a free seat.
func (cs *ConferenceService) validateGuest(ctx context.Context, guest *models.ConferenceGuest) error {
	if err := validators.ValidateGuest(guest); err != nil {
		return err
	}
	if guest.ElementID == nil {
		return nil
	}
	element, err := cs.store.FindElement(ctx, guest.EventID, *guest.ElementID)
	if err != nil {
		return err
	}
	if err := validators.ValidateSeat(element, guest.SeatNumber); err != nil {
		return err
	}
	if guest.SeatNumber == nil {
		return nil
	}
	holder, err := cs.store.FindGuestBySeat(ctx, guest.EventID, element.ID, *guest.SeatNumber)
	switch {
	case err == nil && holder.ID != guest.ID:
		return errs.ErrSeatTaken
	case err != nil && !errors.Is(err, errs.ErrNotFound):
		return err
	}
	return nil
}

func (cs *ConferenceService) DeleteGuest(ctx context.Context, userID, eventID, guestID uint) error {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := cs.store.DeleteGuest(ctx, eventID, guestID); err != nil {
		return err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_DELETED, "guest", map[string]uint{"id": guestID})
	return nil
}

// SearchGuests is the public kiosk lookup by name or email.
func (cs *ConferenceService) SearchGuests(ctx context.Context, eventID uint, query string) ([]models.ConferenceGuest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validators.ValidationErrors{errs.ErrSearchQuery}
	}
	if _, err := cs.events.FindEvent(ctx, eventID, string(realtime.DomainConference)); err != nil {
		return nil, err
	}
	return cs.store.SearchGuests(ctx, eventID, query)
}

// GuestBadge returns what a badge scan shows, without checking in.
func (cs *ConferenceService) GuestBadge(ctx context.Context, eventID, guestID uint) (*models.Event, *models.ConferenceGuest, error) {
	event, err := cs.events.FindEvent(ctx, eventID, string(realtime.DomainConference))
	if err != nil {
		return nil, nil, err
	}
	guest, err := cs.store.FindGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, nil, err
	}
	return event, guest, nil
}

// ListSeatAssignments returns the guests currently seated at an element.
func (cs *ConferenceService) ListSeatAssignments(ctx context.Context, userID, eventID uint) ([]models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return cs.store.ListSeatedGuests(ctx, eventID)
}

// AssignSeat moves a guest to an element, optionally to a numbered seat.
// A guest holds at most one seat, so assigning again moves them.
func (cs *ConferenceService) AssignSeat(ctx context.Context, userID, eventID uint, req *models.SeatAssignmentRequest) (*models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guest, err := cs.store.FindGuest(ctx, eventID, req.GuestID)
	if err != nil {
		return nil, err
	}
	req.Apply(guest)
	if err := cs.validateGuest(ctx, guest); err != nil {
		return nil, err
	}
	if err := cs.store.SaveGuest(ctx, guest); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_ASSIGNED, "guest", guest)
	return guest, nil
}

func (cs *ConferenceService) UnassignSeat(ctx context.Context, userID, eventID, guestID uint) (*models.ConferenceGuest, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	guest, err := cs.store.FindGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}
	if guest.ElementID == nil {
		return nil, errs.ErrNotSeated
	}
	guest.ElementID = nil
	guest.SeatNumber = nil
	if err := cs.store.SaveGuest(ctx, guest); err != nil {
		return nil, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_UNASSIGNED, "guest", guest)
	return guest, nil
}

func (cs *ConferenceService) CheckInGuest(ctx context.Context, userID, eventID, guestID uint) (*models.ConferenceGuest, bool, error) {
	if _, err := cs.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, false, err
	}
	return cs.checkIn(ctx, eventID, guestID)
}

// PublicCheckInGuest is the kiosk flow: no ownership check, only the event
// has to exist. The bool reports whether the guest was already checked in.
func (cs *ConferenceService) PublicCheckInGuest(ctx context.Context, eventID, guestID uint) (*models.ConferenceGuest, bool, error) {
	if _, err := cs.events.FindEvent(ctx, eventID, string(realtime.DomainConference)); err != nil {
		return nil, false, err
	}
	return cs.checkIn(ctx, eventID, guestID)
}

func (cs *ConferenceService) checkIn(ctx context.Context, eventID, guestID uint) (*models.ConferenceGuest, bool, error) {
	guest, err := cs.store.FindGuest(ctx, eventID, guestID)
	if err != nil {
		return nil, false, err
	}
	if guest.CheckedIn {
		return guest, true, nil
	}
	now := cs.now()
	guest.CheckedIn = true
	guest.CheckInTime = &now
	if err := cs.store.SaveGuest(ctx, guest); err != nil {
		return nil, false, err
	}
	cs.notify(ctx, eventID, enums.SOCKET_EVENT_GUEST_UPDATE, enums.UPDATE_ACTION_CHECKED_IN, "guest", guest)
	return guest, false, nil
}

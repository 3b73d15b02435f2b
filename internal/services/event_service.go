package services

import (
	"context"

	"eventPlanner/internal/enums"
	"eventPlanner/internal/models"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/utils"
	"eventPlanner/internal/validators"
)

// EventService manages event metadata for both planners.
type EventService struct {
	events   EventStore
	notifier Notifier
}

func NewEventService(events EventStore, notifier Notifier) *EventService {
	return &EventService{
		events:   events,
		notifier: notifier,
	}
}

func (es *EventService) ListEvents(ctx context.Context, userID uint, domain realtime.Domain) ([]models.Event, error) {
	return es.events.ListOwnedEvents(ctx, userID, string(domain))
}

func (es *EventService) CreateEvent(ctx context.Context, userID uint, domain realtime.Domain, req *models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		UserID:       userID,
		Domain:       string(domain),
		CanvasWidth:  1200,
		CanvasHeight: 800,
	}
	req.Apply(event)
	if err := validators.ValidateEvent(event); err != nil {
		return nil, err
	}
	if err := es.events.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (es *EventService) GetEvent(ctx context.Context, userID uint, domain realtime.Domain, eventID uint) (*models.Event, error) {
	return es.events.FindOwnedEvent(ctx, eventID, userID, string(domain))
}

func (es *EventService) UpdateEvent(ctx context.Context, userID uint, domain realtime.Domain, eventID uint, req *models.EventRequest) (*models.Event, error) {
	event, err := es.events.FindOwnedEvent(ctx, eventID, userID, string(domain))
	if err != nil {
		return nil, err
	}
	req.Apply(event)
	if err := validators.ValidateEvent(event); err != nil {
		return nil, err
	}
	if err := es.events.SaveEvent(ctx, event); err != nil {
		return nil, err
	}
	notify(ctx, es.notifier, domain, event.ID, enums.SOCKET_EVENT_EVENT_UPDATE, enums.UPDATE_ACTION_UPDATED, "event", event)
	return event, nil
}

func (es *EventService) DeleteEvent(ctx context.Context, userID uint, domain realtime.Domain, eventID uint) error {
	event, err := es.events.FindOwnedEvent(ctx, eventID, userID, string(domain))
	if err != nil {
		return err
	}
	if err := es.events.DeleteEvent(ctx, event); err != nil {
		return err
	}
	notify(ctx, es.notifier, domain, eventID, enums.SOCKET_EVENT_EVENT_UPDATE, enums.UPDATE_ACTION_DELETED, "event", map[string]uint{"id": eventID})
	return nil
}

// ShareEvent returns the event's share token, creating one on first use.
func (es *EventService) ShareEvent(ctx context.Context, userID uint, domain realtime.Domain, eventID uint) (string, error) {
	event, err := es.events.FindOwnedEvent(ctx, eventID, userID, string(domain))
	if err != nil {
		return "", err
	}
	if event.ShareToken != nil && *event.ShareToken != "" {
		return *event.ShareToken, nil
	}
	token := utils.NewShareToken()
	event.ShareToken = &token
	if err := es.events.SaveEvent(ctx, event); err != nil {
		return "", err
	}
	notify(ctx, es.notifier, domain, event.ID, enums.SOCKET_EVENT_EVENT_UPDATE, enums.UPDATE_ACTION_SHARED, "event", event)
	return token, nil
}

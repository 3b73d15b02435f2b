package services

import (
	"context"

	"eventPlanner/internal/enums"
	"eventPlanner/internal/models"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/validators"
)

// SessionService manages the schedule of an event in either planner.
type SessionService struct {
	events   EventStore
	store    SessionStore
	notifier Notifier
}

func NewSessionService(events EventStore, store SessionStore, notifier Notifier) *SessionService {
	return &SessionService{
		events:   events,
		store:    store,
		notifier: notifier,
	}
}

func (ss *SessionService) ownedEvent(ctx context.Context, userID uint, domain realtime.Domain, eventID uint) error {
	_, err := ss.events.FindOwnedEvent(ctx, eventID, userID, string(domain))
	return err
}

// ListSessions returns the schedule ordered by date then start time.
func (ss *SessionService) ListSessions(ctx context.Context, userID uint, domain realtime.Domain, eventID uint) ([]models.EventSession, error) {
	if err := ss.ownedEvent(ctx, userID, domain, eventID); err != nil {
		return nil, err
	}
	return ss.store.ListSessions(ctx, eventID)
}

func (ss *SessionService) GetSession(ctx context.Context, userID uint, domain realtime.Domain, eventID, sessionID uint) (*models.EventSession, error) {
	if err := ss.ownedEvent(ctx, userID, domain, eventID); err != nil {
		return nil, err
	}
	return ss.store.FindSession(ctx, eventID, sessionID)
}

func (ss *SessionService) CreateSession(ctx context.Context, userID uint, domain realtime.Domain, eventID uint, req *models.EventSessionRequest) (*models.EventSession, error) {
	if err := ss.ownedEvent(ctx, userID, domain, eventID); err != nil {
		return nil, err
	}
	session := &models.EventSession{EventID: eventID}
	req.Apply(session)
	if err := validators.ValidateSession(session); err != nil {
		return nil, err
	}
	if err := ss.store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	notify(ctx, ss.notifier, domain, eventID, enums.SOCKET_EVENT_SESSION_UPDATE, enums.UPDATE_ACTION_CREATED, "session", session)
	return session, nil
}

func (ss *SessionService) UpdateSession(ctx context.Context, userID uint, domain realtime.Domain, eventID, sessionID uint, req *models.EventSessionRequest) (*models.EventSession, error) {
	if err := ss.ownedEvent(ctx, userID, domain, eventID); err != nil {
		return nil, err
	}
	session, err := ss.store.FindSession(ctx, eventID, sessionID)
	if err != nil {
		return nil, err
	}
	req.Apply(session)
	if err := validators.ValidateSession(session); err != nil {
		return nil, err
	}
	if err := ss.store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	notify(ctx, ss.notifier, domain, eventID, enums.SOCKET_EVENT_SESSION_UPDATE, enums.UPDATE_ACTION_UPDATED, "session", session)
	return session, nil
}

func (ss *SessionService) DeleteSession(ctx context.Context, userID uint, domain realtime.Domain, eventID, sessionID uint) error {
	if err := ss.ownedEvent(ctx, userID, domain, eventID); err != nil {
		return err
	}
	if err := ss.store.DeleteSession(ctx, eventID, sessionID); err != nil {
		return err
	}
	notify(ctx, ss.notifier, domain, eventID, enums.SOCKET_EVENT_SESSION_UPDATE, enums.UPDATE_ACTION_DELETED, "session", map[string]uint{"id": sessionID})
	return nil
}

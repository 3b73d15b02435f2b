package services

import (
	"context"

	"eventPlanner/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	ListOwnedEvents(ctx context.Context, userID uint, domain string) ([]models.Event, error)
	FindOwnedEvent(ctx context.Context, id, userID uint, domain string) (*models.Event, error)
	FindEvent(ctx context.Context, id uint, domain string) (*models.Event, error)
	SaveEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, event *models.Event) error
}

type ConferenceStore interface {
	ListElements(ctx context.Context, eventID uint) ([]models.ConferenceElement, error)
	FindElement(ctx context.Context, eventID, elementID uint) (*models.ConferenceElement, error)
	SaveElement(ctx context.Context, element *models.ConferenceElement) error
	CreateElements(ctx context.Context, elements []*models.ConferenceElement) error
	DeleteElement(ctx context.Context, eventID, elementID uint) error
	ListGroups(ctx context.Context, eventID uint) ([]models.ConferenceGroup, error)
	FindGroup(ctx context.Context, eventID, groupID uint) (*models.ConferenceGroup, error)
	CreateGroup(ctx context.Context, group *models.ConferenceGroup) error
	SaveGroup(ctx context.Context, group *models.ConferenceGroup) error
	DeleteGroup(ctx context.Context, eventID, groupID uint) error
	ListGuests(ctx context.Context, eventID uint) ([]models.ConferenceGuest, error)
	FindGuest(ctx context.Context, eventID, guestID uint) (*models.ConferenceGuest, error)
	SaveGuest(ctx context.Context, guest *models.ConferenceGuest) error
	DeleteGuest(ctx context.Context, eventID, guestID uint) error
	SearchGuests(ctx context.Context, eventID uint, query string) ([]models.ConferenceGuest, error)
	ListSeatedGuests(ctx context.Context, eventID uint) ([]models.ConferenceGuest, error)
	FindGuestBySeat(ctx context.Context, eventID, elementID uint, seatNumber int) (*models.ConferenceGuest, error)
}

type TradeshowStore interface {
	ListBooths(ctx context.Context, eventID uint) ([]models.TradeshowBooth, error)
	FindBooth(ctx context.Context, eventID, boothID uint) (*models.TradeshowBooth, error)
	FindBoothByVendor(ctx context.Context, eventID, vendorID uint) (*models.TradeshowBooth, error)
	SaveBooth(ctx context.Context, booth *models.TradeshowBooth) error
	SaveBooths(ctx context.Context, booths []*models.TradeshowBooth) error
	DeleteBooth(ctx context.Context, eventID, boothID uint) error
	ListAssignedBooths(ctx context.Context, eventID uint) ([]models.TradeshowBooth, error)
	ListVendors(ctx context.Context, eventID uint) ([]models.TradeshowVendor, error)
	FindVendor(ctx context.Context, eventID, vendorID uint) (*models.TradeshowVendor, error)
	SaveVendor(ctx context.Context, vendor *models.TradeshowVendor) error
	DeleteVendor(ctx context.Context, eventID, vendorID uint) error
	SearchVendors(ctx context.Context, eventID uint, query string) ([]models.TradeshowVendor, error)
	ListRoutes(ctx context.Context, eventID uint) ([]models.TradeshowRoute, error)
	FindRoute(ctx context.Context, eventID, routeID uint) (*models.TradeshowRoute, error)
	SaveRoute(ctx context.Context, route *models.TradeshowRoute) error
	DeleteRoute(ctx context.Context, eventID, routeID uint) error
}

type SessionStore interface {
	ListSessions(ctx context.Context, eventID uint) ([]models.EventSession, error)
	FindSession(ctx context.Context, eventID, sessionID uint) (*models.EventSession, error)
	SaveSession(ctx context.Context, session *models.EventSession) error
	DeleteSession(ctx context.Context, eventID, sessionID uint) error
}

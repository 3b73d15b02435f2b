package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"eventPlanner/internal/enums"
	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/validators"
)

type TradeshowService struct {
	events   EventStore
	store    TradeshowStore
	files    *FileManagerService
	notifier Notifier
	now      func() time.Time
}

func NewTradeshowService(events EventStore, store TradeshowStore, files *FileManagerService, notifier Notifier) *TradeshowService {
	return &TradeshowService{
		events:   events,
		store:    store,
		files:    files,
		notifier: notifier,
		now:      time.Now,
	}
}

func (ts *TradeshowService) ownedEvent(ctx context.Context, userID, eventID uint) (*models.Event, error) {
	return ts.events.FindOwnedEvent(ctx, eventID, userID, string(realtime.DomainTradeshow))
}

func (ts *TradeshowService) notify(ctx context.Context, eventID uint, kind, action, key string, entity any) {
	notify(ctx, ts.notifier, realtime.DomainTradeshow, eventID, kind, action, key, entity)
}

func (ts *TradeshowService) ListBooths(ctx context.Context, userID, eventID uint) ([]models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return ts.store.ListBooths(ctx, eventID)
}

func (ts *TradeshowService) CreateBooth(ctx context.Context, userID, eventID uint, req *models.TradeshowBoothRequest) (*models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	booth := &models.TradeshowBooth{EventID: eventID, Status: models.BoothStatusAvailable}
	req.Apply(booth)
	if err := ts.prepareBooth(ctx, booth); err != nil {
		return nil, err
	}
	if err := ts.store.SaveBooth(ctx, booth); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, enums.UPDATE_ACTION_CREATED, "booth", booth)
	return booth, nil
}

func (ts *TradeshowService) UpdateBooth(ctx context.Context, userID, eventID, boothID uint, req *models.TradeshowBoothRequest) (*models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	booth, err := ts.store.FindBooth(ctx, eventID, boothID)
	if err != nil {
		return nil, err
	}
	req.Apply(booth)
	if err := ts.prepareBooth(ctx, booth); err != nil {
		return nil, err
	}
	if err := ts.store.SaveBooth(ctx, booth); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, enums.UPDATE_ACTION_UPDATED, "booth", booth)
	return booth, nil
}

// SaveBooths creates or updates a batch of booths in one transaction. A
// request with a known ID updates that booth. Nothing is saved when any
// booth is invalid.
func (ts *TradeshowService) SaveBooths(ctx context.Context, userID, eventID uint, reqs []models.TradeshowBoothRequest) ([]*models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, validators.ValidationErrors{errs.ErrBulkEmpty}
	}
	booths := make([]*models.TradeshowBooth, 0, len(reqs))
	created := make([]bool, 0, len(reqs))
	vendors := make(map[uint]bool)
	for i := range reqs {
		booth := &models.TradeshowBooth{EventID: eventID, Status: models.BoothStatusAvailable}
		if reqs[i].ID != nil {
			existing, err := ts.store.FindBooth(ctx, eventID, *reqs[i].ID)
			if err != nil {
				return nil, err
			}
			booth = existing
		}
		reqs[i].Apply(booth)
		if err := ts.prepareBooth(ctx, booth); err != nil {
			return nil, err
		}
		if booth.VendorID != nil {
			if vendors[*booth.VendorID] {
				return nil, errs.ErrBoothAlreadyUsed
			}
			vendors[*booth.VendorID] = true
		}
		booths = append(booths, booth)
		created = append(created, booth.ID == 0)
	}
	if err := ts.store.SaveBooths(ctx, booths); err != nil {
		return nil, err
	}
	for i, booth := range booths {
		action := enums.UPDATE_ACTION_UPDATED
		if created[i] {
			action = enums.UPDATE_ACTION_CREATED
		}
		ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, action, "booth", booth)
	}
	return booths, nil
}

// prepareBooth validates the booth and, when a vendor is assigned, checks the
// vendor belongs to the event, holds no other booth, and marks it occupied.
func (ts *TradeshowService) prepareBooth(ctx context.Context, booth *models.TradeshowBooth) error {
	if err := validators.ValidateBooth(booth); err != nil {
		return err
	}
	if booth.VendorID == nil {
		return nil
	}
	if _, err := ts.store.FindVendor(ctx, booth.EventID, *booth.VendorID); err != nil {
		return err
	}
	current, err := ts.store.FindBoothByVendor(ctx, booth.EventID, *booth.VendorID)
	switch {
	case err == nil && current.ID != booth.ID:
		return errs.ErrBoothAlreadyUsed
	case err != nil && !errors.Is(err, errs.ErrNotFound):
		return err
	}
	booth.Status = models.BoothStatusOccupied
	return nil
}

func (ts *TradeshowService) DeleteBooth(ctx context.Context, userID, eventID, boothID uint) error {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := ts.store.DeleteBooth(ctx, eventID, boothID); err != nil {
		return err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, enums.UPDATE_ACTION_DELETED, "booth", map[string]uint{"id": boothID})
	return nil
}

// ListBoothAssignments returns the booths that currently have a vendor.
func (ts *TradeshowService) ListBoothAssignments(ctx context.Context, userID, eventID uint) ([]models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return ts.store.ListAssignedBooths(ctx, eventID)
}

// AssignBooth gives a free booth to a vendor that holds no other booth.
func (ts *TradeshowService) AssignBooth(ctx context.Context, userID, eventID uint, req *models.BoothAssignmentRequest) (*models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	booth, err := ts.store.FindBooth(ctx, eventID, req.BoothID)
	if err != nil {
		return nil, err
	}
	if booth.VendorID != nil && *booth.VendorID != req.VendorID {
		return nil, errs.ErrBoothOccupied
	}
	vendorID := req.VendorID
	booth.VendorID = &vendorID
	if err := ts.prepareBooth(ctx, booth); err != nil {
		return nil, err
	}
	if err := ts.store.SaveBooth(ctx, booth); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, enums.UPDATE_ACTION_ASSIGNED, "booth", booth)
	return booth, nil
}

func (ts *TradeshowService) UnassignBooth(ctx context.Context, userID, eventID, boothID uint) (*models.TradeshowBooth, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	booth, err := ts.store.FindBooth(ctx, eventID, boothID)
	if err != nil {
		return nil, err
	}
	if booth.VendorID == nil {
		return nil, errs.ErrNoVendor
	}
	booth.VendorID = nil
	booth.Status = models.BoothStatusAvailable
	if err := ts.store.SaveBooth(ctx, booth); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_BOOTH_UPDATE, enums.UPDATE_ACTION_UNASSIGNED, "booth", booth)
	return booth, nil
}

func (ts *TradeshowService) ListVendors(ctx context.Context, userID, eventID uint) ([]models.TradeshowVendor, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return ts.store.ListVendors(ctx, eventID)
}

func (ts *TradeshowService) CreateVendor(ctx context.Context, userID, eventID uint, req *models.TradeshowVendorRequest) (*models.TradeshowVendor, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	vendor := &models.TradeshowVendor{EventID: eventID}
	req.Apply(vendor)
	if err := validators.ValidateVendor(vendor); err != nil {
		return nil, err
	}
	if err := ts.store.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_VENDOR_UPDATE, enums.UPDATE_ACTION_CREATED, "vendor", vendor)
	return vendor, nil
}

func (ts *TradeshowService) UpdateVendor(ctx context.Context, userID, eventID, vendorID uint, req *models.TradeshowVendorRequest) (*models.TradeshowVendor, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	vendor, err := ts.store.FindVendor(ctx, eventID, vendorID)
	if err != nil {
		return nil, err
	}
	req.Apply(vendor)
	if err := validators.ValidateVendor(vendor); err != nil {
		return nil, err
	}
	if err := ts.store.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_VENDOR_UPDATE, enums.UPDATE_ACTION_UPDATED, "vendor", vendor)
	return vendor, nil
}

func (ts *TradeshowService) DeleteVendor(ctx context.Context, userID, eventID, vendorID uint) error {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := ts.store.DeleteVendor(ctx, eventID, vendorID); err != nil {
		return err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_VENDOR_UPDATE, enums.UPDATE_ACTION_DELETED, "vendor", map[string]uint{"id": vendorID})
	return nil
}

// SearchVendors is the public kiosk lookup by company name.
func (ts *TradeshowService) SearchVendors(ctx context.Context, eventID uint, query string) ([]models.TradeshowVendor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validators.ValidationErrors{errs.ErrSearchQuery}
	}
	if _, err := ts.events.FindEvent(ctx, eventID, string(realtime.DomainTradeshow)); err != nil {
		return nil, err
	}
	return ts.store.SearchVendors(ctx, eventID, query)
}

// VendorBadge returns what a badge scan shows, without checking in.
func (ts *TradeshowService) VendorBadge(ctx context.Context, eventID, vendorID uint) (*models.Event, *models.TradeshowVendor, error) {
	event, err := ts.events.FindEvent(ctx, eventID, string(realtime.DomainTradeshow))
	if err != nil {
		return nil, nil, err
	}
	vendor, err := ts.store.FindVendor(ctx, eventID, vendorID)
	if err != nil {
		return nil, nil, err
	}
	return event, vendor, nil
}

func (ts *TradeshowService) UploadVendorLogo(ctx context.Context, userID, eventID, vendorID uint, fileName string, file io.Reader, fileSize int64, contentType string) (*models.TradeshowVendor, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	vendor, err := ts.store.FindVendor(ctx, eventID, vendorID)
	if err != nil {
		return nil, err
	}
	url, err := ts.files.UploadVendorLogo(ctx, eventID, vendorID, fileName, file, fileSize, contentType)
	if err != nil {
		return nil, err
	}
	vendor.LogoURL = &url
	if err := ts.store.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_VENDOR_UPDATE, enums.UPDATE_ACTION_UPDATED, "vendor", vendor)
	return vendor, nil
}

func (ts *TradeshowService) CheckInVendor(ctx context.Context, userID, eventID, vendorID uint) (*models.TradeshowVendor, bool, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, false, err
	}
	return ts.checkIn(ctx, eventID, vendorID)
}

func (ts *TradeshowService) PublicCheckInVendor(ctx context.Context, eventID, vendorID uint) (*models.TradeshowVendor, bool, error) {
	if _, err := ts.events.FindEvent(ctx, eventID, string(realtime.DomainTradeshow)); err != nil {
		return nil, false, err
	}
	return ts.checkIn(ctx, eventID, vendorID)
}

func (ts *TradeshowService) checkIn(ctx context.Context, eventID, vendorID uint) (*models.TradeshowVendor, bool, error) {
	vendor, err := ts.store.FindVendor(ctx, eventID, vendorID)
	if err != nil {
		return nil, false, err
	}
	if vendor.CheckedIn {
		return vendor, true, nil
	}
	now := ts.now()
	vendor.CheckedIn = true
	vendor.CheckInTime = &now
	if err := ts.store.SaveVendor(ctx, vendor); err != nil {
		return nil, false, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_VENDOR_UPDATE, enums.UPDATE_ACTION_CHECKED_IN, "vendor", vendor)
	return vendor, false, nil
}

// ListRoutes returns the event's visitor routes, newest first.
func (ts *TradeshowService) ListRoutes(ctx context.Context, userID, eventID uint) ([]models.TradeshowRoute, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return ts.store.ListRoutes(ctx, eventID)
}

func (ts *TradeshowService) GetRoute(ctx context.Context, userID, eventID, routeID uint) (*models.TradeshowRoute, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return ts.store.FindRoute(ctx, eventID, routeID)
}

func (ts *TradeshowService) CreateRoute(ctx context.Context, userID, eventID uint, req *models.TradeshowRouteRequest) (*models.TradeshowRoute, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	route := &models.TradeshowRoute{EventID: eventID, CreatedBy: userID}
	req.Apply(route)
	if err := ts.validateRoute(ctx, route); err != nil {
		return nil, err
	}
	if err := ts.store.SaveRoute(ctx, route); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_ROUTE_UPDATE, enums.UPDATE_ACTION_CREATED, "route", route)
	return route, nil
}

func (ts *TradeshowService) UpdateRoute(ctx context.Context, userID, eventID, routeID uint, req *models.TradeshowRouteRequest) (*models.TradeshowRoute, error) {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	route, err := ts.store.FindRoute(ctx, eventID, routeID)
	if err != nil {
		return nil, err
	}
	req.Apply(route)
	if err := ts.validateRoute(ctx, route); err != nil {
		return nil, err
	}
	if err := ts.store.SaveRoute(ctx, route); err != nil {
		return nil, err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_ROUTE_UPDATE, enums.UPDATE_ACTION_UPDATED, "route", route)
	return route, nil
}

func (ts *TradeshowService) DeleteRoute(ctx context.Context, userID, eventID, routeID uint) error {
	if _, err := ts.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}
	if err := ts.store.DeleteRoute(ctx, eventID, routeID); err != nil {
		return err
	}
	ts.notify(ctx, eventID, enums.SOCKET_EVENT_ROUTE_UPDATE, enums.UPDATE_ACTION_DELETED, "route", map[string]uint{"id": routeID})
	return nil
}

// validateRoute checks the route fields and that every stop is a booth of
// the same event.
func (ts *TradeshowService) validateRoute(ctx context.Context, route *models.TradeshowRoute) error {
	if err := validators.ValidateRoute(route); err != nil {
		return err
	}
	for _, boothID := range route.BoothOrder {
		if _, err := ts.store.FindBooth(ctx, route.EventID, boothID); err != nil {
			return err
		}
	}
	return nil
}

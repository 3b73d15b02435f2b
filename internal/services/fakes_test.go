package services

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/realtime"
)

type published struct {
	room    realtime.Room
	kind    string
	payload map[string]any
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []published
}

func (n *recordingNotifier) Publish(_ context.Context, room realtime.Room, kind string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	p, _ := payload.(map[string]any)
	n.calls = append(n.calls, published{room: room, kind: kind, payload: p})
	return nil
}

func (n *recordingNotifier) last() published {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return published{}
	}
	return n.calls[len(n.calls)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type fakeUsers struct {
	byEmail map[string]*models.User
	nextID  uint
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*models.User{}} }

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

type fakeEvents struct {
	events map[uint]*models.Event
	nextID uint
}

func newFakeEvents() *fakeEvents { return &fakeEvents{events: map[uint]*models.Event{}} }

func (f *fakeEvents) add(userID uint, domain realtime.Domain, name string) *models.Event {
	f.nextID++
	e := &models.Event{UserID: userID, Domain: string(domain), Name: name}
	e.ID = f.nextID
	f.events[e.ID] = e
	return e
}

func (f *fakeEvents) CreateEvent(_ context.Context, event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = event
	return nil
}

func (f *fakeEvents) ListOwnedEvents(_ context.Context, userID uint, domain string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if e.UserID == userID && e.Domain == domain {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEvents) FindOwnedEvent(_ context.Context, id, userID uint, domain string) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok || e.UserID != userID || e.Domain != domain {
		return nil, errs.ErrNotFound
	}
	return e, nil
}

func (f *fakeEvents) FindEvent(_ context.Context, id uint, domain string) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok || e.Domain != domain {
		return nil, errs.ErrNotFound
	}
	return e, nil
}

func (f *fakeEvents) SaveEvent(_ context.Context, event *models.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEvents) DeleteEvent(_ context.Context, event *models.Event) error {
	delete(f.events, event.ID)
	return nil
}

type fakeConference struct {
	elements map[uint]*models.ConferenceElement
	groups   map[uint]*models.ConferenceGroup
	guests   map[uint]*models.ConferenceGuest
	nextID   uint
}

func newFakeConference() *fakeConference {
	return &fakeConference{
		elements: map[uint]*models.ConferenceElement{},
		groups:   map[uint]*models.ConferenceGroup{},
		guests:   map[uint]*models.ConferenceGuest{},
	}
}

func (f *fakeConference) id() uint { f.nextID++; return f.nextID }

func (f *fakeConference) ListElements(_ context.Context, eventID uint) ([]models.ConferenceElement, error) {
	var out []models.ConferenceElement
	for _, e := range f.elements {
		if e.EventID == eventID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeConference) FindElement(_ context.Context, eventID, elementID uint) (*models.ConferenceElement, error) {
	e, ok := f.elements[elementID]
	if !ok || e.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	return e, nil
}

func (f *fakeConference) SaveElement(_ context.Context, element *models.ConferenceElement) error {
	if element.ID == 0 {
		element.ID = f.id()
	}
	f.elements[element.ID] = element
	return nil
}

func (f *fakeConference) CreateElements(ctx context.Context, elements []*models.ConferenceElement) error {
	for _, element := range elements {
		if err := f.SaveElement(ctx, element); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeConference) DeleteElement(_ context.Context, eventID, elementID uint) error {
	if e, ok := f.elements[elementID]; !ok || e.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.elements, elementID)
	return nil
}

func (f *fakeConference) ListGroups(_ context.Context, eventID uint) ([]models.ConferenceGroup, error) {
	var out []models.ConferenceGroup
	for _, g := range f.groups {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeConference) FindGroup(_ context.Context, eventID, groupID uint) (*models.ConferenceGroup, error) {
	g, ok := f.groups[groupID]
	if !ok || g.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeConference) SaveGroup(_ context.Context, group *models.ConferenceGroup) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeConference) CreateGroup(_ context.Context, group *models.ConferenceGroup) error {
	group.ID = f.id()
	f.groups[group.ID] = group
	return nil
}

func (f *fakeConference) DeleteGroup(_ context.Context, eventID, groupID uint) error {
	if g, ok := f.groups[groupID]; !ok || g.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.groups, groupID)
	return nil
}

func (f *fakeConference) ListGuests(_ context.Context, eventID uint) ([]models.ConferenceGuest, error) {
	var out []models.ConferenceGuest
	for _, g := range f.guests {
		if g.EventID == eventID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeConference) FindGuest(_ context.Context, eventID, guestID uint) (*models.ConferenceGuest, error) {
	g, ok := f.guests[guestID]
	if !ok || g.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeConference) SaveGuest(_ context.Context, guest *models.ConferenceGuest) error {
	if guest.ID == 0 {
		guest.ID = f.id()
	}
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeConference) DeleteGuest(_ context.Context, eventID, guestID uint) error {
	if g, ok := f.guests[guestID]; !ok || g.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.guests, guestID)
	return nil
}

func (f *fakeConference) SearchGuests(_ context.Context, eventID uint, query string) ([]models.ConferenceGuest, error) {
	var out []models.ConferenceGuest
	query = strings.ToLower(query)
	for _, g := range f.guests {
		if g.EventID != eventID {
			continue
		}
		if strings.Contains(strings.ToLower(g.Name), query) || strings.Contains(strings.ToLower(g.Email), query) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeConference) ListSeatedGuests(_ context.Context, eventID uint) ([]models.ConferenceGuest, error) {
	var out []models.ConferenceGuest
	for _, g := range f.guests {
		if g.EventID == eventID && g.ElementID != nil {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeConference) FindGuestBySeat(_ context.Context, eventID, elementID uint, seatNumber int) (*models.ConferenceGuest, error) {
	for _, g := range f.guests {
		if g.EventID == eventID && g.ElementID != nil && *g.ElementID == elementID &&
			g.SeatNumber != nil && *g.SeatNumber == seatNumber {
			return g, nil
		}
	}
	return nil, errs.ErrNotFound
}

type fakeTradeshow struct {
	booths  map[uint]*models.TradeshowBooth
	vendors map[uint]*models.TradeshowVendor
	routes  map[uint]*models.TradeshowRoute
	nextID  uint
}

func newFakeTradeshow() *fakeTradeshow {
	return &fakeTradeshow{
		booths:  map[uint]*models.TradeshowBooth{},
		vendors: map[uint]*models.TradeshowVendor{},
		routes:  map[uint]*models.TradeshowRoute{},
	}
}

func (f *fakeTradeshow) id() uint { f.nextID++; return f.nextID }

func (f *fakeTradeshow) ListBooths(_ context.Context, eventID uint) ([]models.TradeshowBooth, error) {
	var out []models.TradeshowBooth
	for _, b := range f.booths {
		if b.EventID == eventID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeTradeshow) FindBooth(_ context.Context, eventID, boothID uint) (*models.TradeshowBooth, error) {
	b, ok := f.booths[boothID]
	if !ok || b.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeTradeshow) FindBoothByVendor(_ context.Context, eventID, vendorID uint) (*models.TradeshowBooth, error) {
	for _, b := range f.booths {
		if b.EventID == eventID && b.VendorID != nil && *b.VendorID == vendorID {
			return b, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeTradeshow) SaveBooth(_ context.Context, booth *models.TradeshowBooth) error {
	if booth.ID == 0 {
		booth.ID = f.id()
	}
	f.booths[booth.ID] = booth
	return nil
}

func (f *fakeTradeshow) SaveBooths(ctx context.Context, booths []*models.TradeshowBooth) error {
	for _, booth := range booths {
		if err := f.SaveBooth(ctx, booth); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTradeshow) ListAssignedBooths(_ context.Context, eventID uint) ([]models.TradeshowBooth, error) {
	var out []models.TradeshowBooth
	for _, b := range f.booths {
		if b.EventID == eventID && b.VendorID != nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeTradeshow) DeleteBooth(_ context.Context, eventID, boothID uint) error {
	if b, ok := f.booths[boothID]; !ok || b.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.booths, boothID)
	return nil
}

func (f *fakeTradeshow) ListVendors(_ context.Context, eventID uint) ([]models.TradeshowVendor, error) {
	var out []models.TradeshowVendor
	for _, v := range f.vendors {
		if v.EventID == eventID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeTradeshow) FindVendor(_ context.Context, eventID, vendorID uint) (*models.TradeshowVendor, error) {
	v, ok := f.vendors[vendorID]
	if !ok || v.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	return v, nil
}

func (f *fakeTradeshow) SaveVendor(_ context.Context, vendor *models.TradeshowVendor) error {
	if vendor.ID == 0 {
		vendor.ID = f.id()
	}
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeTradeshow) DeleteVendor(_ context.Context, eventID, vendorID uint) error {
	if v, ok := f.vendors[vendorID]; !ok || v.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.vendors, vendorID)
	return nil
}

func (f *fakeTradeshow) SearchVendors(_ context.Context, eventID uint, query string) ([]models.TradeshowVendor, error) {
	var out []models.TradeshowVendor
	for _, v := range f.vendors {
		if v.EventID == eventID && strings.Contains(strings.ToLower(v.CompanyName), strings.ToLower(query)) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeTradeshow) ListRoutes(_ context.Context, eventID uint) ([]models.TradeshowRoute, error) {
	var out []models.TradeshowRoute
	for _, r := range f.routes {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeTradeshow) FindRoute(_ context.Context, eventID, routeID uint) (*models.TradeshowRoute, error) {
	r, ok := f.routes[routeID]
	if !ok || r.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeTradeshow) SaveRoute(_ context.Context, route *models.TradeshowRoute) error {
	if route.ID == 0 {
		route.ID = f.id()
	}
	f.routes[route.ID] = route
	return nil
}

func (f *fakeTradeshow) DeleteRoute(_ context.Context, eventID, routeID uint) error {
	if r, ok := f.routes[routeID]; !ok || r.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.routes, routeID)
	return nil
}

type fakeSessions struct {
	sessions map[uint]*models.EventSession
	nextID   uint
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[uint]*models.EventSession{}}
}

func (f *fakeSessions) ListSessions(_ context.Context, eventID uint) ([]models.EventSession, error) {
	var out []models.EventSession
	for _, s := range f.sessions {
		if s.EventID == eventID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SessionDate != out[j].SessionDate {
			return out[i].SessionDate < out[j].SessionDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (f *fakeSessions) FindSession(_ context.Context, eventID, sessionID uint) (*models.EventSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok || s.EventID != eventID {
		return nil, errs.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessions) SaveSession(_ context.Context, session *models.EventSession) error {
	if session.ID == 0 {
		f.nextID++
		session.ID = f.nextID
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, eventID, sessionID uint) error {
	if s, ok := f.sessions[sessionID]; !ok || s.EventID != eventID {
		return errs.ErrNotFound
	}
	delete(f.sessions, sessionID)
	return nil
}

type fakeFileManager struct {
	uploaded []string
}

func (f *fakeFileManager) UploadFile(_ context.Context, fileName string, file io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	f.uploaded = append(f.uploaded, fileName)
	return "http://files.test/" + fileName, nil
}

func ptr[T any](v T) *T { return &v }

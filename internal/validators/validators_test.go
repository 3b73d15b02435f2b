package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		wantErr []error
	}{
		{
			name: "valid",
			user: &models.User{FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", Password: "Secret123!"},
		},
		{
			name:    "nil user",
			user:    nil,
			wantErr: []error{errs.ErrInvalidUser},
		},
		{
			name:    "everything wrong",
			user:    &models.User{FirstName: "A", Email: "nope", Password: "short"},
			wantErr: []error{errs.ErrInvalidEmail, errs.ErrInvalidPassword, errs.ErrFirstName, errs.ErrLastName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.user)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	assert.NoError(t, ValidateEvent(&models.Event{Name: "Summit"}))
	err := ValidateEvent(&models.Event{Name: " ", StartTime: &start, EndTime: &end})
	assert.ErrorIs(t, err, errs.ErrEventName)
	assert.ErrorIs(t, err, errs.ErrEventTimeRange)
}

func TestValidateElement(t *testing.T) {
	assert.NoError(t, ValidateElement(&models.ConferenceElement{ElementType: "table_round", Width: 80, Height: 80, Capacity: 8}))
	err := ValidateElement(&models.ConferenceElement{Capacity: -1})
	assert.ErrorIs(t, err, errs.ErrElementType)
	assert.ErrorIs(t, err, errs.ErrElementSize)
	assert.ErrorIs(t, err, errs.ErrElementCapacity)
}

func TestValidateBooth(t *testing.T) {
	assert.NoError(t, ValidateBooth(&models.TradeshowBooth{Label: "A1", Width: 3, Height: 3}))
	err := ValidateBooth(&models.TradeshowBooth{Label: "A1", Width: 3, Height: 3, Status: "sold"})
	assert.ErrorIs(t, err, errs.ErrBoothStatus)
}

func TestValidateGuestAndVendor(t *testing.T) {
	assert.ErrorIs(t, ValidateGuest(&models.ConferenceGuest{Name: "Bo", Email: "bad"}), errs.ErrInvalidEmail)
	assert.ErrorIs(t, ValidateVendor(&models.TradeshowVendor{}), errs.ErrVendorCompany)
	assert.ErrorIs(t, ValidateGroup(&models.ConferenceGroup{}), errs.ErrGroupName)
}

func TestValidationErrors_Message(t *testing.T) {
	err := ValidationErrors{errs.ErrEventName, errs.ErrEventTimeRange}
	assert.Equal(t, "event name is required; event end time is before start time", err.Error())
	assert.Nil(t, ValidationErrors(nil).Err())
}

func TestValidateSession(t *testing.T) {
	valid := &models.EventSession{Title: "Keynote", SessionDate: "2026-03-15", StartTime: "09:00", EndTime: "10:30"}
	assert.NoError(t, ValidateSession(valid))

	tests := []struct {
		name    string
		session *models.EventSession
		wantErr error
	}{
		{"missing title", &models.EventSession{SessionDate: "2026-03-15", StartTime: "09:00", EndTime: "10:00"}, errs.ErrSessionTitle},
		{"bad date", &models.EventSession{Title: "Lunch", SessionDate: "15/03/2026", StartTime: "12:00", EndTime: "13:00"}, errs.ErrSessionDate},
		{"bad time", &models.EventSession{Title: "Lunch", SessionDate: "2026-03-15", StartTime: "noon", EndTime: "13:00"}, errs.ErrSessionTime},
		{"ends before start", &models.EventSession{Title: "Panel", SessionDate: "2026-03-15", StartTime: "15:00", EndTime: "14:00"}, errs.ErrSessionTimeRange},
		{"negative capacity", &models.EventSession{Title: "Demo", SessionDate: "2026-03-15", StartTime: "15:00", EndTime: "16:00", Capacity: -5}, errs.ErrSessionCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateSession(tt.session), tt.wantErr)
		})
	}
}

func TestValidateSeat(t *testing.T) {
	table := &models.ConferenceElement{Capacity: 8}
	seat := func(n int) *int { return &n }

	assert.NoError(t, ValidateSeat(table, nil))
	assert.NoError(t, ValidateSeat(table, seat(8)))
	assert.ErrorIs(t, ValidateSeat(table, seat(9)), errs.ErrSeatNumber)
	assert.ErrorIs(t, ValidateSeat(table, seat(0)), errs.ErrSeatNumber)
	assert.NoError(t, ValidateSeat(&models.ConferenceElement{}, seat(40)))
}

func TestValidateRoute(t *testing.T) {
	assert.NoError(t, ValidateRoute(&models.TradeshowRoute{Name: "Highlights", BoothOrder: models.IDList{3, 1}}))
	err := ValidateRoute(&models.TradeshowRoute{})
	assert.ErrorIs(t, err, errs.ErrRouteName)
	assert.ErrorIs(t, err, errs.ErrRouteBooths)
}

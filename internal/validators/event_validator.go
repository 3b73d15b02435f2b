package validators

import (
	"strings"
	"time"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
)

func ValidateEvent(event *models.Event) error {
	var errors ValidationErrors
	if strings.TrimSpace(event.Name) == "" {
		errors = append(errors, errs.ErrEventName)
	}
	if event.StartTime != nil && event.EndTime != nil && event.EndTime.Before(*event.StartTime) {
		errors = append(errors, errs.ErrEventTimeRange)
	}
	return errors.Err()
}

func ValidateElement(element *models.ConferenceElement) error {
	var errors ValidationErrors
	if strings.TrimSpace(element.ElementType) == "" {
		errors = append(errors, errs.ErrElementType)
	}
	if element.Width <= 0 || element.Height <= 0 {
		errors = append(errors, errs.ErrElementSize)
	}
	if element.Capacity < 0 {
		errors = append(errors, errs.ErrElementCapacity)
	}
	return errors.Err()
}

func ValidateGroup(group *models.ConferenceGroup) error {
	if strings.TrimSpace(group.Name) == "" {
		return ValidationErrors{errs.ErrGroupName}
	}
	return nil
}

func ValidateGuest(guest *models.ConferenceGuest) error {
	var errors ValidationErrors
	if strings.TrimSpace(guest.Name) == "" {
		errors = append(errors, errs.ErrGuestName)
	}
	if guest.Email != "" && !ValidateEmail(guest.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	return errors.Err()
}

func ValidateBooth(booth *models.TradeshowBooth) error {
	var errors ValidationErrors
	if strings.TrimSpace(booth.Label) == "" {
		errors = append(errors, errs.ErrBoothLabel)
	}
	if booth.Width <= 0 || booth.Height <= 0 {
		errors = append(errors, errs.ErrBoothSize)
	}
	switch booth.Status {
	case "", models.BoothStatusAvailable, models.BoothStatusReserved, models.BoothStatusOccupied:
	default:
		errors = append(errors, errs.ErrBoothStatus)
	}
	return errors.Err()
}

func ValidateVendor(vendor *models.TradeshowVendor) error {
	var errors ValidationErrors
	if strings.TrimSpace(vendor.CompanyName) == "" {
		errors = append(errors, errs.ErrVendorCompany)
	}
	if vendor.Email != "" && !ValidateEmail(vendor.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}
	return errors.Err()
}

// ValidateSeat checks a seat number against the element it belongs to. An
// element without capacity takes any positive seat number.
func ValidateSeat(element *models.ConferenceElement, seatNumber *int) error {
	if seatNumber == nil {
		return nil
	}
	if *seatNumber < 1 || (element.Capacity > 0 && *seatNumber > element.Capacity) {
		return ValidationErrors{errs.ErrSeatNumber}
	}
	return nil
}

func ValidateSession(session *models.EventSession) error {
	var errors ValidationErrors
	if strings.TrimSpace(session.Title) == "" {
		errors = append(errors, errs.ErrSessionTitle)
	}
	if _, err := time.Parse(models.SessionDateLayout, session.SessionDate); err != nil {
		errors = append(errors, errs.ErrSessionDate)
	}
	start, startErr := time.Parse(models.SessionTimeLayout, session.StartTime)
	end, endErr := time.Parse(models.SessionTimeLayout, session.EndTime)
	switch {
	case startErr != nil || endErr != nil:
		errors = append(errors, errs.ErrSessionTime)
	case end.Before(start):
		errors = append(errors, errs.ErrSessionTimeRange)
	}
	if session.Capacity < 0 {
		errors = append(errors, errs.ErrSessionCapacity)
	}
	return errors.Err()
}

func ValidateRoute(route *models.TradeshowRoute) error {
	var errors ValidationErrors
	if strings.TrimSpace(route.Name) == "" {
		errors = append(errors, errs.ErrRouteName)
	}
	if len(route.BoothOrder) == 0 {
		errors = append(errors, errs.ErrRouteBooths)
	}
	return errors.Err()
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// ConferenceElement is a spatial item on the conference canvas: a table,
// a door, a stage, a bar.
type ConferenceElement struct {
	gorm.Model
	EventID     uint    `gorm:"index;not null" json:"event_id"`
	ElementType string  `gorm:"not null" json:"element_type"`
	Label       string  `json:"label"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Rotation    float64 `json:"rotation"`
	Capacity    int     `json:"capacity"`
	Properties  JSONMap `gorm:"type:jsonb" json:"properties"`
}

type ConferenceElementsBulkRequest struct {
	Elements []ConferenceElementRequest `json:"elements"`
}

type ConferenceElementRequest struct {
	ElementType *string  `json:"element_type"`
	Label       *string  `json:"label"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	Rotation    *float64 `json:"rotation"`
	Capacity    *int     `json:"capacity"`
	Properties  JSONMap  `json:"properties"`
}

func (req *ConferenceElementRequest) Apply(element *ConferenceElement) {
	if req.ElementType != nil {
		element.ElementType = *req.ElementType
	}
	if req.Label != nil {
		element.Label = *req.Label
	}
	if req.X != nil {
		element.X = *req.X
	}
	if req.Y != nil {
		element.Y = *req.Y
	}
	if req.Width != nil {
		element.Width = *req.Width
	}
	if req.Height != nil {
		element.Height = *req.Height
	}
	if req.Rotation != nil {
		element.Rotation = *req.Rotation
	}
	if req.Capacity != nil {
		element.Capacity = *req.Capacity
	}
	if req.Properties != nil {
		element.Properties = req.Properties
	}
}

type ConferenceGroup struct {
	gorm.Model
	EventID uint   `gorm:"index;not null" json:"event_id"`
	Name    string `gorm:"not null" json:"name"`
	Color   string `json:"color"`
}

type ConferenceGroupRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (req *ConferenceGroupRequest) Apply(group *ConferenceGroup) {
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Color != nil {
		group.Color = *req.Color
	}
}

// ConferenceGuest is one attendee, optionally seated at an element.
type ConferenceGuest struct {
	gorm.Model
	EventID     uint       `gorm:"index;not null" json:"event_id"`
	GroupID     *uint      `json:"group_id"`
	ElementID   *uint      `json:"element_id"`
	SeatNumber  *int       `json:"seat_number"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `json:"email"`
	Company     string     `json:"company"`
	Dietary     string     `json:"dietary"`
	CheckedIn   bool       `gorm:"default:false" json:"checked_in"`
	CheckInTime *time.Time `json:"check_in_time"`
}

type ConferenceGuestRequest struct {
	GroupID    *uint   `json:"group_id"`
	ElementID  *uint   `json:"element_id"`
	SeatNumber *int    `json:"seat_number" binding:"omitempty,min=1"`
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Company    *string `json:"company"`
	Dietary    *string `json:"dietary"`
}

func (req *ConferenceGuestRequest) Apply(guest *ConferenceGuest) {
	if req.GroupID != nil {
		guest.GroupID = req.GroupID
	}
	if req.ElementID != nil {
		guest.ElementID = req.ElementID
	}
	if req.SeatNumber != nil {
		guest.SeatNumber = req.SeatNumber
	}
	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Company != nil {
		guest.Company = *req.Company
	}
	if req.Dietary != nil {
		guest.Dietary = *req.Dietary
	}
}

// SeatAssignmentRequest seats a guest at an element. SeatNumber is 1-based
// and optional.
type SeatAssignmentRequest struct {
	GuestID    uint `json:"guest_id" binding:"required"`
	ElementID  uint `json:"element_id" binding:"required"`
	SeatNumber *int `json:"seat_number" binding:"omitempty,min=1"`
}

func (req *SeatAssignmentRequest) Apply(guest *ConferenceGuest) {
	elementID := req.ElementID
	guest.ElementID = &elementID
	guest.SeatNumber = req.SeatNumber
}

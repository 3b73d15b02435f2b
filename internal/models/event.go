package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a conference or tradeshow plan owned by one user.
type Event struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	Domain       string     `gorm:"index;not null" json:"domain"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	Venue        string     `json:"venue"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	CanvasWidth  int        `gorm:"default:1200" json:"canvas_width"`
	CanvasHeight int        `gorm:"default:800" json:"canvas_height"`
	IsPublic     bool       `gorm:"default:false" json:"is_public"`
	ShareToken   *string    `gorm:"uniqueIndex" json:"share_token,omitempty"`
}

type EventRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Venue        *string    `json:"venue"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	CanvasWidth  *int       `json:"canvas_width" binding:"omitempty,min=1"`
	CanvasHeight *int       `json:"canvas_height" binding:"omitempty,min=1"`
	IsPublic     *bool      `json:"is_public"`
}

// Apply copies every field present in the request onto event.
func (req *EventRequest) Apply(event *Event) {
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.StartTime != nil {
		event.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.CanvasWidth != nil {
		event.CanvasWidth = *req.CanvasWidth
	}
	if req.CanvasHeight != nil {
		event.CanvasHeight = *req.CanvasHeight
	}
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}
}

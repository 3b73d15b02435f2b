package models

import "gorm.io/gorm"

const (
	SessionDateLayout = "2006-01-02"
	SessionTimeLayout = "15:04"
)

// EventSession is one slot on an event's schedule. Dates and times are kept
// as the wall-clock strings the planner edits.
type EventSession struct {
	gorm.Model
	EventID      uint   `gorm:"index;not null" json:"event_id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	Speaker      string `json:"speaker"`
	SpeakerTitle string `json:"speaker_title"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Capacity     int    `json:"capacity"`
	SessionDate  string `gorm:"index" json:"session_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type EventSessionRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Speaker      *string `json:"speaker"`
	SpeakerTitle *string `json:"speaker_title"`
	Location     *string `json:"location"`
	Category     *string `json:"category"`
	Capacity     *int    `json:"capacity"`
	SessionDate  *string `json:"session_date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

func (req *EventSessionRequest) Apply(session *EventSession) {
	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Description != nil {
		session.Description = *req.Description
	}
	if req.Speaker != nil {
		session.Speaker = *req.Speaker
	}
	if req.SpeakerTitle != nil {
		session.SpeakerTitle = *req.SpeakerTitle
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.Category != nil {
		session.Category = *req.Category
	}
	if req.Capacity != nil {
		session.Capacity = *req.Capacity
	}
	if req.SessionDate != nil {
		session.SessionDate = *req.SessionDate
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = *req.EndTime
	}
}

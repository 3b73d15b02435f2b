package models

type CheckInResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Guest   any    `json:"guest,omitempty"`
	Vendor  any    `json:"vendor,omitempty"`
}

// BadgeInfoResponse is what a badge scan shows before anyone checks in.
type BadgeInfoResponse struct {
	Success bool         `json:"success"`
	Guest   any          `json:"guest,omitempty"`
	Vendor  any          `json:"vendor,omitempty"`
	Event   EventSummary `json:"event"`
}

type EventSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

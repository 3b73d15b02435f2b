package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BoothStatusAvailable = "available"
	BoothStatusReserved  = "reserved"
	BoothStatusOccupied  = "occupied"
)

type TradeshowBooth struct {
	gorm.Model
	EventID  uint    `gorm:"index;not null" json:"event_id"`
	Label    string  `gorm:"not null" json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Category string  `json:"category"`
	Status   string  `gorm:"default:available" json:"status"`
	VendorID *uint   `gorm:"uniqueIndex" json:"vendor_id"`
}

type TradeshowBoothsBulkRequest struct {
	Booths []TradeshowBoothRequest `json:"booths"`
}

// TradeshowBoothRequest carries an ID only in bulk saves, where a known ID
// updates that booth instead of creating one.
type TradeshowBoothRequest struct {
	ID       *uint    `json:"id"`
	Label    *string  `json:"label"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Category *string  `json:"category"`
	Status   *string  `json:"status"`
	VendorID *uint    `json:"vendor_id"`
}

func (req *TradeshowBoothRequest) Apply(booth *TradeshowBooth) {
	if req.Label != nil {
		booth.Label = *req.Label
	}
	if req.X != nil {
		booth.X = *req.X
	}
	if req.Y != nil {
		booth.Y = *req.Y
	}
	if req.Width != nil {
		booth.Width = *req.Width
	}
	if req.Height != nil {
		booth.Height = *req.Height
	}
	if req.Category != nil {
		booth.Category = *req.Category
	}
	if req.Status != nil {
		booth.Status = *req.Status
	}
	if req.VendorID != nil {
		booth.VendorID = req.VendorID
	}
}

type TradeshowVendor struct {
	gorm.Model
	EventID     uint       `gorm:"index;not null" json:"event_id"`
	CompanyName string     `gorm:"not null" json:"company_name"`
	ContactName string     `json:"contact_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Category    string     `json:"category"`
	LogoURL     *string    `json:"logo_url"`
	CheckedIn   bool       `gorm:"default:false" json:"checked_in"`
	CheckInTime *time.Time `json:"check_in_time"`
}

type TradeshowVendorRequest struct {
	CompanyName *string `json:"company_name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`
}

func (req *TradeshowVendorRequest) Apply(vendor *TradeshowVendor) {
	if req.CompanyName != nil {
		vendor.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		vendor.ContactName = *req.ContactName
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
}

type BoothAssignmentRequest struct {
	BoothID  uint `json:"booth_id" binding:"required"`
	VendorID uint `json:"vendor_id" binding:"required"`
}

// TradeshowRoute is a suggested walk across the floor, an ordered list of
// booth IDs.
type TradeshowRoute struct {
	gorm.Model
	EventID    uint   `gorm:"index;not null" json:"event_id"`
	Name       string `gorm:"not null" json:"name"`
	RouteType  string `json:"route_type"`
	BoothOrder IDList `gorm:"type:jsonb" json:"booth_order"`
	CreatedBy  uint   `json:"created_by"`
}

type TradeshowRouteRequest struct {
	Name       *string `json:"name"`
	RouteType  *string `json:"route_type"`
	BoothOrder IDList  `json:"booth_order"`
}

func (req *TradeshowRouteRequest) Apply(route *TradeshowRoute) {
	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.RouteType != nil {
		route.RouteType = *req.RouteType
	}
	if req.BoothOrder != nil {
		route.BoothOrder = req.BoothOrder
	}
}

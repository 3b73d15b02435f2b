package handlers

import (
	"net/http"

	"eventPlanner/internal/models"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

// QRCheckInHandler serves the unauthenticated kiosk check-in links encoded
// in guest and vendor badges.
type QRCheckInHandler struct {
	conferenceService *services.ConferenceService
	tradeshowService  *services.TradeshowService
}

func NewQRCheckInHandler(conferenceService *services.ConferenceService, tradeshowService *services.TradeshowService) *QRCheckInHandler {
	return &QRCheckInHandler{
		conferenceService: conferenceService,
		tradeshowService:  tradeshowService,
	}
}

// CheckInGuest godoc
// @Summary      Check a guest in from a badge QR code
// @Tags         qr
// @Produce      json
// @Param        eventId  path      int  true  "Event id"
// @Param        guestId  path      int  true  "Guest id"
// @Success      200      {object}  models.CheckInResponse
// @Failure      404      {object}  models.Response
// @Router       /api/qr/conference/{eventId}/guests/{guestId}/checkin [post]
func (qh *QRCheckInHandler) CheckInGuest(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	guest, already, err := qh.conferenceService.PublicCheckInGuest(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, guestCheckInResponse(guest, already))
}

// CheckInVendor godoc
// @Summary      Check a vendor in from a badge QR code
// @Tags         qr
// @Produce      json
// @Param        eventId   path      int  true  "Event id"
// @Param        vendorId  path      int  true  "Vendor id"
// @Success      200       {object}  models.CheckInResponse
// @Failure      404       {object}  models.Response
// @Router       /api/qr/tradeshow/{eventId}/vendors/{vendorId}/checkin [post]
func (qh *QRCheckInHandler) CheckInVendor(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	vendor, already, err := qh.tradeshowService.PublicCheckInVendor(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vendorCheckInResponse(vendor, already))
}

// GuestBadge godoc
// @Summary      Show the guest behind a badge QR code
// @Tags         qr
// @Produce      json
// @Param        eventId  path      int  true  "Event id"
// @Param        guestId  path      int  true  "Guest id"
// @Success      200      {object}  models.BadgeInfoResponse
// @Failure      404      {object}  models.Response
// @Router       /api/qr/conference/{eventId}/guests/{guestId} [get]
func (qh *QRCheckInHandler) GuestBadge(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	event, guest, err := qh.conferenceService.GuestBadge(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.BadgeInfoResponse{
		Success: true,
		Guest:   guest,
		Event:   eventSummary(event),
	})
}

// VendorBadge godoc
// @Summary      Show the vendor behind a badge QR code
// @Tags         qr
// @Produce      json
// @Param        eventId   path      int  true  "Event id"
// @Param        vendorId  path      int  true  "Vendor id"
// @Success      200       {object}  models.BadgeInfoResponse
// @Failure      404       {object}  models.Response
// @Router       /api/qr/tradeshow/{eventId}/vendors/{vendorId} [get]
func (qh *QRCheckInHandler) VendorBadge(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	event, vendor, err := qh.tradeshowService.VendorBadge(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, models.BadgeInfoResponse{
		Success: true,
		Vendor:  vendor,
		Event:   eventSummary(event),
	})
}

func eventSummary(event *models.Event) models.EventSummary {
	return models.EventSummary{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
	}
}

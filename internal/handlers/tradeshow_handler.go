package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

const vendorLogoFormField = "logo"

// TradeshowHandler serves the floor planner: booths, vendors, booth
// assignments and visitor routes of a tradeshow event.
type TradeshowHandler struct {
	tradeshowService *services.TradeshowService
}

func NewTradeshowHandler(tradeshowService *services.TradeshowService) *TradeshowHandler {
	return &TradeshowHandler{
		tradeshowService: tradeshowService,
	}
}

func (th *TradeshowHandler) ListBooths(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	booths, err := th.tradeshowService.ListBooths(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, booths)
}

// CreateBooth godoc
// @Summary      Add a booth to the floor plan
// @Tags         tradeshow
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                           true  "Event id"
// @Param        body     body      models.TradeshowBoothRequest  true  "Booth"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Failure      409      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/tradeshow/events/{eventId}/booths [post]
func (th *TradeshowHandler) CreateBooth(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.TradeshowBoothRequest
	if !bindJSON(ctx, &req) {
		return
	}
	booth, err := th.tradeshowService.CreateBooth(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, booth)
}

// SaveBooths godoc
// @Summary      Create or update several booths at once
// @Description  A booth with a known id is updated. All booths are saved in one transaction or none are.
// @Tags         tradeshow
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                                true  "Event id"
// @Param        body     body      models.TradeshowBoothsBulkRequest  true  "Booths"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Failure      409      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/tradeshow/events/{eventId}/booths/bulk [post]
func (th *TradeshowHandler) SaveBooths(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.TradeshowBoothsBulkRequest
	if !bindJSON(ctx, &req) {
		return
	}
	booths, err := th.tradeshowService.SaveBooths(ctx.Request.Context(), userIDFromContext(ctx), ids[0], req.Booths)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, booths)
}

func (th *TradeshowHandler) UpdateBooth(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "boothId")
	if !ok {
		return
	}
	var req models.TradeshowBoothRequest
	if !bindJSON(ctx, &req) {
		return
	}
	booth, err := th.tradeshowService.UpdateBooth(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, booth)
}

func (th *TradeshowHandler) DeleteBooth(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "boothId")
	if !ok {
		return
	}
	if err := th.tradeshowService.DeleteBooth(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

func (th *TradeshowHandler) ListBoothAssignments(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	booths, err := th.tradeshowService.ListBoothAssignments(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, booths)
}

// AssignBooth godoc
// @Summary      Give a booth to a vendor
// @Tags         tradeshow
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                            true  "Event id"
// @Param        body     body      models.BoothAssignmentRequest  true  "Assignment"
// @Success      200      {object}  models.Response
// @Failure      404      {object}  models.Response
// @Failure      409      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/tradeshow/events/{eventId}/booth-assignments [post]
func (th *TradeshowHandler) AssignBooth(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.BoothAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	booth, err := th.tradeshowService.AssignBooth(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, booth)
}

func (th *TradeshowHandler) UnassignBooth(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "boothId")
	if !ok {
		return
	}
	booth, err := th.tradeshowService.UnassignBooth(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, booth)
}

func (th *TradeshowHandler) ListVendors(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	vendors, err := th.tradeshowService.ListVendors(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, vendors)
}

func (th *TradeshowHandler) CreateVendor(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.TradeshowVendorRequest
	if !bindJSON(ctx, &req) {
		return
	}
	vendor, err := th.tradeshowService.CreateVendor(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, vendor)
}

func (th *TradeshowHandler) UpdateVendor(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	var req models.TradeshowVendorRequest
	if !bindJSON(ctx, &req) {
		return
	}
	vendor, err := th.tradeshowService.UpdateVendor(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, vendor)
}

func (th *TradeshowHandler) DeleteVendor(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	if err := th.tradeshowService.DeleteVendor(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

// SearchVendors godoc
// @Summary      Find vendors by company name
// @Description  Public kiosk lookup, case-insensitive, at most 10 results.
// @Tags         tradeshow
// @Produce      json
// @Param        eventId  path      int     true  "Event id"
// @Param        q        query     string  true  "Company name fragment"
// @Success      200      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Router       /api/tradeshow/events/{eventId}/vendors/search [get]
func (th *TradeshowHandler) SearchVendors(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	vendors, err := th.tradeshowService.SearchVendors(ctx.Request.Context(), ids[0], ctx.Query("q"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, vendors)
}

// UploadVendorLogo godoc
// @Summary      Upload a vendor logo
// @Tags         tradeshow
// @Accept       multipart/form-data
// @Produce      json
// @Param        eventId   path      int   true  "Event id"
// @Param        vendorId  path      int   true  "Vendor id"
// @Param        logo      formData  file  true  "Logo image"
// @Success      200       {object}  models.Response
// @Failure      400       {object}  models.Response
// @Security     BearerAuth
// @Router       /api/tradeshow/events/{eventId}/vendors/{vendorId}/logo [post]
func (th *TradeshowHandler) UploadVendorLogo(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	file, err := ctx.FormFile(vendorLogoFormField)
	if err != nil {
		respondError(ctx, errs.ErrEmptyFile)
		return
	}
	src, err := file.Open()
	if err != nil {
		respondError(ctx, fmt.Errorf("open uploaded logo: %w", err))
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			slog.Debug("closing uploaded logo", "error", err)
		}
	}()

	vendor, err := th.tradeshowService.UploadVendorLogo(
		ctx.Request.Context(),
		userIDFromContext(ctx),
		ids[0],
		ids[1],
		file.Filename,
		src,
		file.Size,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, vendor)
}

func (th *TradeshowHandler) CheckInVendor(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "vendorId")
	if !ok {
		return
	}
	vendor, already, err := th.tradeshowService.CheckInVendor(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, vendorCheckInResponse(vendor, already))
}

func (th *TradeshowHandler) ListRoutes(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	routes, err := th.tradeshowService.ListRoutes(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, routes)
}

// CreateRoute godoc
// @Summary      Add a visitor route
// @Tags         tradeshow
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                           true  "Event id"
// @Param        body     body      models.TradeshowRouteRequest  true  "Route"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/tradeshow/events/{eventId}/routes [post]
func (th *TradeshowHandler) CreateRoute(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.TradeshowRouteRequest
	if !bindJSON(ctx, &req) {
		return
	}
	route, err := th.tradeshowService.CreateRoute(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, route)
}

func (th *TradeshowHandler) GetRoute(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "routeId")
	if !ok {
		return
	}
	route, err := th.tradeshowService.GetRoute(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, route)
}

func (th *TradeshowHandler) UpdateRoute(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "routeId")
	if !ok {
		return
	}
	var req models.TradeshowRouteRequest
	if !bindJSON(ctx, &req) {
		return
	}
	route, err := th.tradeshowService.UpdateRoute(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, route)
}

func (th *TradeshowHandler) DeleteRoute(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "routeId")
	if !ok {
		return
	}
	if err := th.tradeshowService.DeleteRoute(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

func vendorCheckInResponse(vendor *models.TradeshowVendor, already bool) models.CheckInResponse {
	if already {
		return models.CheckInResponse{
			Success: false,
			Message: fmt.Sprintf(msgs.MsgAlreadyCheckedIn, vendor.CompanyName),
			Vendor:  vendor,
		}
	}
	return models.CheckInResponse{
		Success: true,
		Message: fmt.Sprintf(msgs.MsgCheckedIn, vendor.CompanyName),
		Vendor:  vendor,
	}
}

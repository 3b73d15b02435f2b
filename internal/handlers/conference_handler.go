package handlers

import (
	"fmt"
	"net/http"

	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

// ConferenceHandler serves the seating planner: canvas elements, guest
// groups, guests and seat assignments of a conference event.
type ConferenceHandler struct {
	conferenceService *services.ConferenceService
}

func NewConferenceHandler(conferenceService *services.ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{
		conferenceService: conferenceService,
	}
}

// ListElements godoc
// @Summary      List canvas elements
// @Tags         conference
// @Produce      json
// @Param        eventId  path      int  true  "Event id"
// @Success      200      {object}  models.Response
// @Failure      404      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/conference/events/{eventId}/elements [get]
func (ch *ConferenceHandler) ListElements(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	elements, err := ch.conferenceService.ListElements(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, elements)
}

// CreateElement godoc
// @Summary      Place an element on the canvas
// @Tags         conference
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                              true  "Event id"
// @Param        body     body      models.ConferenceElementRequest  true  "Element"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/conference/events/{eventId}/elements [post]
func (ch *ConferenceHandler) CreateElement(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.ConferenceElementRequest
	if !bindJSON(ctx, &req) {
		return
	}
	element, err := ch.conferenceService.CreateElement(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, element)
}

// CreateElements godoc
// @Summary      Place several elements at once
// @Description  All elements are saved in one transaction or none are.
// @Tags         conference
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                                   true  "Event id"
// @Param        body     body      models.ConferenceElementsBulkRequest  true  "Elements"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/conference/events/{eventId}/elements/bulk [post]
func (ch *ConferenceHandler) CreateElements(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.ConferenceElementsBulkRequest
	if !bindJSON(ctx, &req) {
		return
	}
	elements, err := ch.conferenceService.CreateElements(ctx.Request.Context(), userIDFromContext(ctx), ids[0], req.Elements)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, elements)
}

func (ch *ConferenceHandler) UpdateElement(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "elementId")
	if !ok {
		return
	}
	var req models.ConferenceElementRequest
	if !bindJSON(ctx, &req) {
		return
	}
	element, err := ch.conferenceService.UpdateElement(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, element)
}

func (ch *ConferenceHandler) DeleteElement(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "elementId")
	if !ok {
		return
	}
	if err := ch.conferenceService.DeleteElement(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

func (ch *ConferenceHandler) ListGroups(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	groups, err := ch.conferenceService.ListGroups(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, groups)
}

func (ch *ConferenceHandler) CreateGroup(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.ConferenceGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}
	group, err := ch.conferenceService.CreateGroup(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, group)
}

func (ch *ConferenceHandler) UpdateGroup(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "groupId")
	if !ok {
		return
	}
	var req models.ConferenceGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}
	group, err := ch.conferenceService.UpdateGroup(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, group)
}

func (ch *ConferenceHandler) DeleteGroup(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "groupId")
	if !ok {
		return
	}
	if err := ch.conferenceService.DeleteGroup(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

func (ch *ConferenceHandler) ListGuests(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	guests, err := ch.conferenceService.ListGuests(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guests)
}

func (ch *ConferenceHandler) CreateGuest(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.ConferenceGuestRequest
	if !bindJSON(ctx, &req) {
		return
	}
	guest, err := ch.conferenceService.CreateGuest(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, guest)
}

func (ch *ConferenceHandler) UpdateGuest(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	var req models.ConferenceGuestRequest
	if !bindJSON(ctx, &req) {
		return
	}
	guest, err := ch.conferenceService.UpdateGuest(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guest)
}

func (ch *ConferenceHandler) DeleteGuest(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	if err := ch.conferenceService.DeleteGuest(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

// SearchGuests godoc
// @Summary      Find guests by name or email
// @Description  Public kiosk lookup, case-insensitive, at most 10 results.
// @Tags         conference
// @Produce      json
// @Param        eventId  path      int     true  "Event id"
// @Param        q        query     string  true  "Name or email fragment"
// @Success      200      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Router       /api/conference/events/{eventId}/guests/search [get]
func (ch *ConferenceHandler) SearchGuests(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	guests, err := ch.conferenceService.SearchGuests(ctx.Request.Context(), ids[0], ctx.Query("q"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guests)
}

func (ch *ConferenceHandler) ListSeatAssignments(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	guests, err := ch.conferenceService.ListSeatAssignments(ctx.Request.Context(), userIDFromContext(ctx), ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guests)
}

// AssignSeat godoc
// @Summary      Seat a guest at an element
// @Tags         conference
// @Accept       json
// @Produce      json
// @Param        eventId  path      int                           true  "Event id"
// @Param        body     body      models.SeatAssignmentRequest  true  "Assignment"
// @Success      200      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Failure      409      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/conference/events/{eventId}/seat-assignments [post]
func (ch *ConferenceHandler) AssignSeat(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.SeatAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	guest, err := ch.conferenceService.AssignSeat(ctx.Request.Context(), userIDFromContext(ctx), ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guest)
}

func (ch *ConferenceHandler) UnassignSeat(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	guest, err := ch.conferenceService.UnassignSeat(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, guest)
}

// CheckInGuest godoc
// @Summary      Check a guest in from the planner
// @Tags         conference
// @Produce      json
// @Param        eventId  path      int  true  "Event id"
// @Param        guestId  path      int  true  "Guest id"
// @Success      200      {object}  models.CheckInResponse
// @Failure      404      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/conference/events/{eventId}/guests/{guestId}/checkin [post]
func (ch *ConferenceHandler) CheckInGuest(ctx *gin.Context) {
	ids, ok := paramIDs(ctx, "eventId", "guestId")
	if !ok {
		return
	}
	guest, already, err := ch.conferenceService.CheckInGuest(ctx.Request.Context(), userIDFromContext(ctx), ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, guestCheckInResponse(guest, already))
}

func guestCheckInResponse(guest *models.ConferenceGuest, already bool) models.CheckInResponse {
	if already {
		return models.CheckInResponse{
			Success: false,
			Message: fmt.Sprintf(msgs.MsgAlreadyCheckedIn, guest.Name),
			Guest:   guest,
		}
	}
	return models.CheckInResponse{
		Success: true,
		Message: fmt.Sprintf(msgs.MsgCheckedIn, guest.Name),
		Guest:   guest,
	}
}

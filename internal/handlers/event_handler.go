package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/models"
	"eventPlanner/internal/msgs"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *services.EventService
	notifier     services.Notifier
}

func NewEventHandler(eventService *services.EventService, notifier services.Notifier) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		notifier:     notifier,
	}
}

// ListEvents godoc
// @Summary      List the caller's events
// @Tags         events
// @Produce      json
// @Param        domain  path      string  true  "conference or tradeshow"
// @Success      200     {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events [get]
func (eh *EventHandler) ListEvents(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	events, err := eh.eventService.ListEvents(ctx.Request.Context(), userIDFromContext(ctx), domain)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        domain  path      string               true  "conference or tradeshow"
// @Param        body    body      models.EventRequest  true  "Event"
// @Success      201     {object}  models.Response
// @Failure      400     {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events [post]
func (eh *EventHandler) CreateEvent(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	var req models.EventRequest
	if !bindJSON(ctx, &req) {
		return
	}
	event, err := eh.eventService.CreateEvent(ctx.Request.Context(), userIDFromContext(ctx), domain, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, event)
}

func (eh *EventHandler) GetEvent(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	event, err := eh.eventService.GetEvent(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, event)
}

func (eh *EventHandler) UpdateEvent(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.EventRequest
	if !bindJSON(ctx, &req) {
		return
	}
	event, err := eh.eventService.UpdateEvent(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, event)
}

func (eh *EventHandler) DeleteEvent(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	if err := eh.eventService.DeleteEvent(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

// ShareEvent godoc
// @Summary      Get or create the event's share token
// @Tags         events
// @Produce      json
// @Param        domain   path      string  true  "conference or tradeshow"
// @Param        eventId  path      int     true  "Event id"
// @Success      200      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events/{eventId}/share [post]
func (eh *EventHandler) ShareEvent(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	token, err := eh.eventService.ShareEvent(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, gin.H{"share_token": token})
}

// Notify godoc
// @Summary      Publish an update to the event's live room
// @Description  Frames {"type": kind, "data": data} and delivers it to every socket in {domain}_{eventId}.
// @Tags         realtime
// @Accept       json
// @Produce      json
// @Param        domain   path      string                true  "conference or tradeshow"
// @Param        eventId  path      string                true  "Event id"
// @Param        body     body      models.NotifyRequest  true  "Update"
// @Success      202      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events/{eventId}/notify [post]
func (eh *EventHandler) Notify(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	eventID := strings.TrimSpace(ctx.Param("eventId"))
	var req models.NotifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Kind) == "" {
		respondError(ctx, errs.ErrUpdateKind)
		return
	}

	var payload any
	if len(req.Data) > 0 {
		payload = json.RawMessage(req.Data)
	}
	room := realtime.NewRoom(domain, eventID)
	if err := eh.notifier.Publish(ctx.Request.Context(), room, req.Kind, payload); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, models.Response{
		Success: true,
		Message: msgs.MsgUpdateQueued,
	})
}

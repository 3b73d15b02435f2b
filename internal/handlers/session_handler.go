package handlers

import (
	"net/http"

	"eventPlanner/internal/models"
	"eventPlanner/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the schedule of an event in either planner.
type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// ListSessions godoc
// @Summary      List an event's schedule
// @Tags         sessions
// @Produce      json
// @Param        domain   path      string  true  "conference or tradeshow"
// @Param        eventId  path      int     true  "Event id"
// @Success      200      {object}  models.Response
// @Failure      404      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events/{eventId}/sessions [get]
func (sh *SessionHandler) ListSessions(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	sessions, err := sh.sessionService.ListSessions(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Add a session to the schedule
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        domain   path      string                      true  "conference or tradeshow"
// @Param        eventId  path      int                         true  "Event id"
// @Param        body     body      models.EventSessionRequest  true  "Session"
// @Success      201      {object}  models.Response
// @Failure      400      {object}  models.Response
// @Security     BearerAuth
// @Router       /api/{domain}/events/{eventId}/sessions [post]
func (sh *SessionHandler) CreateSession(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId")
	if !ok {
		return
	}
	var req models.EventSessionRequest
	if !bindJSON(ctx, &req) {
		return
	}
	session, err := sh.sessionService.CreateSession(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusCreated, session)
}

func (sh *SessionHandler) GetSession(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId", "sessionId")
	if !ok {
		return
	}
	session, err := sh.sessionService.GetSession(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0], ids[1])
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, session)
}

func (sh *SessionHandler) UpdateSession(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId", "sessionId")
	if !ok {
		return
	}
	var req models.EventSessionRequest
	if !bindJSON(ctx, &req) {
		return
	}
	session, err := sh.sessionService.UpdateSession(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0], ids[1], &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, session)
}

func (sh *SessionHandler) DeleteSession(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	ids, ok := paramIDs(ctx, "eventId", "sessionId")
	if !ok {
		return
	}
	if err := sh.sessionService.DeleteSession(ctx.Request.Context(), userIDFromContext(ctx), domain, ids[0], ids[1]); err != nil {
		respondError(ctx, err)
		return
	}
	respondOK(ctx, http.StatusOK, nil)
}

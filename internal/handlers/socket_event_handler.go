package handlers

import (
	"log/slog"
	"net/http"

	"eventPlanner/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SocketEventHandler upgrades /ws/:domain[/:eventId] requests and hands
// each connection to the relay for the event's room.
type SocketEventHandler struct {
	relay    *realtime.Relay
	upgrader websocket.Upgrader
	opts     SocketOptions
}

func NewSocketEventHandler(relay *realtime.Relay, opts SocketOptions) *SocketEventHandler {
	return &SocketEventHandler{
		relay: relay,
		opts:  opts.withDefaults(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleSocketEventRoute godoc
// @Summary      Subscribe to live event updates
// @Description  Upgrades to a WebSocket joined to the {domain}_{eventId} room. Without an event id the "default" room is used.
// @Tags         realtime
// @Param        domain   path  string  true   "conference or tradeshow"
// @Param        eventId  path  string  false  "Event id"
// @Success      101
// @Failure      400  {object}  models.Response
// @Router       /ws/{domain}/{eventId} [get]
func (seh *SocketEventHandler) HandleSocketEventRoute(ctx *gin.Context) {
	domain, ok := domainParam(ctx)
	if !ok {
		return
	}
	room := realtime.NewRoom(domain, ctx.Param("eventId"))

	ws, err := seh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Warn("upgrading socket", "room", room.String(), "error", err)
		return
	}

	client := NewSocketClient(uuid.NewString(), room, ws, seh.relay, seh.opts)
	slog.Info("socket connected", "room", room.String(), "connectionId", client.ID(), "remote", ctx.ClientIP())
	client.Run(ctx.Request.Context())
	slog.Info("socket disconnected", "room", room.String(), "connectionId", client.ID())
}

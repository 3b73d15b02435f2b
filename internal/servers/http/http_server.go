package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "eventPlanner/docs"
	"eventPlanner/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Rest         *handlers.RestHandler
	Events       *handlers.EventHandler
	Conference   *handlers.ConferenceHandler
	Tradeshow    *handlers.TradeshowHandler
	Sessions     *handlers.SessionHandler
	QRCheckIn    *handlers.QRCheckInHandler
	Socket       *handlers.SocketEventHandler
	Health       *handlers.HealthHandler
	Authenticate gin.HandlerFunc
}

type HttpServer struct {
	port            int
	shutdownTimeout time.Duration
	router          *gin.Engine
	handlers        Handlers
	onShutdown      []func()
}

func NewHttpServer(port int, shutdownTimeout time.Duration, h Handlers, onShutdown ...func()) *HttpServer {
	hs := &HttpServer{
		port:            port,
		shutdownTimeout: shutdownTimeout,
		handlers:        h,
		onShutdown:      onShutdown,
	}
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()
	return hs
}

func (hs *HttpServer) Router() http.Handler {
	return hs.router
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.New()
	hs.router.Use(gin.Recovery(), requestLogger())
}

func (hs *HttpServer) setupRestfulRoutes() {
	h := hs.handlers

	hs.router.GET("/health", h.Health.Health)
	hs.router.GET("/ready", h.Health.Ready)
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := hs.router.Group("/auth")
	{
		auth.POST("/register", h.Rest.Register)
		auth.POST("/login", h.Rest.Login)
	}

	api := hs.router.Group("/api")
	{
		api.GET("/realtime/stats", h.Health.Stats)

		api.GET("/:domain/events/:eventId/vendors/search", h.Tradeshow.SearchVendors)
		api.GET("/:domain/events/:eventId/guests/search", h.Conference.SearchGuests)
		api.GET("/qr/conference/:eventId/guests/:guestId", h.QRCheckIn.GuestBadge)
		api.POST("/qr/conference/:eventId/guests/:guestId/checkin", h.QRCheckIn.CheckInGuest)
		api.GET("/qr/tradeshow/:eventId/vendors/:vendorId", h.QRCheckIn.VendorBadge)
		api.POST("/qr/tradeshow/:eventId/vendors/:vendorId/checkin", h.QRCheckIn.CheckInVendor)
	}

	events := api.Group("/:domain/events", h.Authenticate)
	{
		events.GET("", h.Events.ListEvents)
		events.POST("", h.Events.CreateEvent)
		events.GET("/:eventId", h.Events.GetEvent)
		events.PUT("/:eventId", h.Events.UpdateEvent)
		events.DELETE("/:eventId", h.Events.DeleteEvent)
		events.POST("/:eventId/share", h.Events.ShareEvent)
		events.POST("/:eventId/notify", h.Events.Notify)

		events.GET("/:eventId/sessions", h.Sessions.ListSessions)
		events.POST("/:eventId/sessions", h.Sessions.CreateSession)
		events.GET("/:eventId/sessions/:sessionId", h.Sessions.GetSession)
		events.PATCH("/:eventId/sessions/:sessionId", h.Sessions.UpdateSession)
		events.DELETE("/:eventId/sessions/:sessionId", h.Sessions.DeleteSession)

		events.GET("/:eventId/elements", h.Conference.ListElements)
		events.POST("/:eventId/elements", h.Conference.CreateElement)
		events.POST("/:eventId/elements/bulk", h.Conference.CreateElements)
		events.PUT("/:eventId/elements/:elementId", h.Conference.UpdateElement)
		events.DELETE("/:eventId/elements/:elementId", h.Conference.DeleteElement)
		events.GET("/:eventId/groups", h.Conference.ListGroups)
		events.POST("/:eventId/groups", h.Conference.CreateGroup)
		events.PATCH("/:eventId/groups/:groupId", h.Conference.UpdateGroup)
		events.DELETE("/:eventId/groups/:groupId", h.Conference.DeleteGroup)
		events.GET("/:eventId/guests", h.Conference.ListGuests)
		events.POST("/:eventId/guests", h.Conference.CreateGuest)
		events.PUT("/:eventId/guests/:guestId", h.Conference.UpdateGuest)
		events.DELETE("/:eventId/guests/:guestId", h.Conference.DeleteGuest)
		events.POST("/:eventId/guests/:guestId/checkin", h.Conference.CheckInGuest)
		events.GET("/:eventId/seat-assignments", h.Conference.ListSeatAssignments)
		events.POST("/:eventId/seat-assignments", h.Conference.AssignSeat)
		events.DELETE("/:eventId/seat-assignments/:guestId", h.Conference.UnassignSeat)

		events.GET("/:eventId/booths", h.Tradeshow.ListBooths)
		events.POST("/:eventId/booths", h.Tradeshow.CreateBooth)
		events.POST("/:eventId/booths/bulk", h.Tradeshow.SaveBooths)
		events.PUT("/:eventId/booths/:boothId", h.Tradeshow.UpdateBooth)
		events.DELETE("/:eventId/booths/:boothId", h.Tradeshow.DeleteBooth)
		events.GET("/:eventId/vendors", h.Tradeshow.ListVendors)
		events.POST("/:eventId/vendors", h.Tradeshow.CreateVendor)
		events.PUT("/:eventId/vendors/:vendorId", h.Tradeshow.UpdateVendor)
		events.DELETE("/:eventId/vendors/:vendorId", h.Tradeshow.DeleteVendor)
		events.POST("/:eventId/vendors/:vendorId/logo", h.Tradeshow.UploadVendorLogo)
		events.POST("/:eventId/vendors/:vendorId/checkin", h.Tradeshow.CheckInVendor)
		events.GET("/:eventId/booth-assignments", h.Tradeshow.ListBoothAssignments)
		events.POST("/:eventId/booth-assignments", h.Tradeshow.AssignBooth)
		events.DELETE("/:eventId/booth-assignments/:boothId", h.Tradeshow.UnassignBooth)
		events.GET("/:eventId/routes", h.Tradeshow.ListRoutes)
		events.POST("/:eventId/routes", h.Tradeshow.CreateRoute)
		events.GET("/:eventId/routes/:routeId", h.Tradeshow.GetRoute)
		events.PATCH("/:eventId/routes/:routeId", h.Tradeshow.UpdateRoute)
		events.DELETE("/:eventId/routes/:routeId", h.Tradeshow.DeleteRoute)
	}
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/:domain", hs.handlers.Socket.HandleSocketEventRoute)
	hs.router.GET("/ws/:domain/:eventId", hs.handlers.Socket.HandleSocketEventRoute)
}

// Run serves until SIGINT/SIGTERM or ctx is cancelled, then shuts down.
func (hs *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", hs.port),
		Handler:           hs.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	return hs.shutdown(server)
}

func (hs *HttpServer) shutdown(server *http.Server) error {
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), hs.shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	// Hijacked websocket connections are not tracked by Shutdown.
	for _, fn := range hs.onShutdown {
		fn()
	}
	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exiting")
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		slog.Debug("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

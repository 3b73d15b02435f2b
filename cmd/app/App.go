package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"eventPlanner/configs"
	"eventPlanner/internal/handlers"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/repositories"
	"eventPlanner/internal/servers/database"
	"eventPlanner/internal/servers/http"
	"eventPlanner/internal/services"

	"github.com/redis/go-redis/v9"
)

const (
	layerMemory = "memory"
	layerRedis  = "redis"
)

type App struct {
	configs  *configs.Config
	redis    *redis.Client
	registry *realtime.Registry
	layer    realtime.Layer
	closers  []func()
}

func NewApp(config *configs.Config) *App {
	return &App{configs: config}
}

// LetsGo wires every component and serves until the process is signalled.
func (app *App) LetsGo(ctx context.Context) error {
	app.initializeLogger()
	defer app.close()

	db, err := database.Open(app.configs)
	if err != nil {
		return err
	}
	app.closers = append(app.closers, func() {
		if err := database.Close(db); err != nil {
			slog.Warn("closing database", "error", err)
		}
	})

	if err := app.initializeRealtime(ctx); err != nil {
		return err
	}
	relay := realtime.NewRelay(app.layer)

	minioService, err := services.NewMinioService(ctx, app.configs)
	if err != nil {
		return err
	}
	fileManagerService := services.NewFileManagerService(minioService)

	authRepo := repositories.NewAuthenticationRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	conferenceRepo := repositories.NewConferenceRepository(db)
	tradeshowRepo := repositories.NewTradeshowRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	authService := services.NewAuthenticationService(
		authRepo,
		app.configs.JwtKey(),
		time.Duration(app.configs.Viper.GetInt("jwt.expiration_time"))*time.Second,
	)
	eventService := services.NewEventService(eventRepo, relay)
	conferenceService := services.NewConferenceService(eventRepo, conferenceRepo, relay)
	tradeshowService := services.NewTradeshowService(eventRepo, tradeshowRepo, fileManagerService, relay)
	sessionService := services.NewSessionService(eventRepo, sessionRepo, relay)

	checks := []handlers.ReadinessCheck{
		{Name: "database", Check: func(ctx context.Context) error { return database.Ping(ctx, db) }},
	}
	if app.redis != nil {
		checks = append(checks, handlers.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return app.redis.Ping(ctx).Err() },
		})
	}

	server := http.NewHttpServer(
		app.configs.Viper.GetInt("server.port"),
		app.configs.Viper.GetDuration("server.shutdown_timeout"),
		http.Handlers{
			Rest:       handlers.NewRestHandler(authService),
			Events:     handlers.NewEventHandler(eventService, relay),
			Conference: handlers.NewConferenceHandler(conferenceService),
			Tradeshow:  handlers.NewTradeshowHandler(tradeshowService),
			Sessions:   handlers.NewSessionHandler(sessionService),
			QRCheckIn:  handlers.NewQRCheckInHandler(conferenceService, tradeshowService),
			Socket: handlers.NewSocketEventHandler(relay, handlers.SocketOptions{
				SendBuffer:     app.configs.Viper.GetInt("realtime.send_buffer"),
				WriteWait:      app.configs.Viper.GetDuration("realtime.write_wait"),
				PongWait:       app.configs.Viper.GetDuration("realtime.pong_wait"),
				MaxMessageSize: app.configs.Viper.GetInt64("realtime.max_message_size"),
			}),
			Health:       handlers.NewHealthHandler(app.registry, checks...),
			Authenticate: handlers.MustAuthenticateMiddleware(authService),
		},
		app.registry.CloseAll,
	)
	return server.Run(ctx)
}

func (app *App) initializeLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: app.configs.LogLevel(),
	}))
	slog.SetDefault(logger)
}

// initializeRealtime builds the room layer: a process-local registry, or
// the registry fronted by a Redis channel shared by every instance.
func (app *App) initializeRealtime(ctx context.Context) error {
	app.registry = realtime.NewRegistry()

	switch layer := app.configs.Viper.GetString("realtime.layer"); layer {
	case layerMemory:
		app.layer = app.registry
	case layerRedis:
		app.initializeRedis()
		redisLayer := realtime.NewRedisLayer(app.redis, app.configs.Viper.GetString("redis.channel"), app.registry)
		if err := redisLayer.Start(ctx); err != nil {
			return err
		}
		app.closers = append(app.closers, func() {
			if err := redisLayer.Close(); err != nil {
				slog.Warn("closing redis layer", "error", err)
			}
		})
		app.layer = redisLayer
	default:
		return fmt.Errorf("unknown realtime.layer %q", layer)
	}
	slog.Info("realtime layer ready", "layer", app.configs.Viper.GetString("realtime.layer"))
	return nil
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr:     app.configs.Viper.GetString("redis.addr"),
		Password: app.configs.Viper.GetString("redis.password"),
		DB:       app.configs.Viper.GetInt("redis.db"),
	})
	app.closers = append(app.closers, func() {
		if err := app.redis.Close(); err != nil {
			slog.Warn("closing redis client", "error", err)
		}
	})
}

// close releases resources in reverse order of acquisition.
func (app *App) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
}

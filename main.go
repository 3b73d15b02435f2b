package main

import (
	"context"
	"log/slog"
	"os"

	"eventPlanner/cmd/app"
	"eventPlanner/configs"
)

// @title           Event Planner API
// @version         1.0
// @description     Conference and tradeshow layout planner with live event rooms.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config, err := configs.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	if err := app.NewApp(config).LetsGo(context.Background()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

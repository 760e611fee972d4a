// Package main is the entry point for the packing service.
//
// @title           Packing Service API
// @version         1.0.0
// @description     Wardrobe catalog and trip packing assistant.
//
//	Keeps a clothing catalog, plans trips with daily forecasts and recommends what to pack in each bag.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/packing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Clothing
// @tag.description Clothing catalog
//
// @tag.name        Trips
// @tag.description Trips, bags and packing recommendations
//
// @tag.name        Weather
// @tag.description Forecast previews
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/packing-service/docs" // swagger docs

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithWriteTimeout(cfg.Server.RequestTimeout+5*time.Second),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

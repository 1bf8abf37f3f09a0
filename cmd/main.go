// Package main is the entry point for the trailer-loading-service application.
//
// @title           Trailer Loading Optimizer API
// @version         1.0.0
// @description     API for computing 3D trailer loading plans from box inventories.
//
//	This service packs boxes into layered placements and reports fill statistics.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/trailer-loading-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Loading
// @tag.description Loading plan optimization operations
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/trailer-loading-service/docs" // swagger docs

	"github.com/guttosm/trailer-loading-service/config"
	"github.com/guttosm/trailer-loading-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

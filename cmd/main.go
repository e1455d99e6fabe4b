// Package main is the entry point for the kit-service application.
//
// @title           Kit Service API
// @version         1.0.0
// @description     API for configuring custom team polo kits and deriving orders.
//
//	Sessions hold the customization state: garment color, emblem, artwork
//	placements, back print, team binding, and per-size quantities. The
//	service derives the preview layer stack and order pricing from that
//	state and places orders against the fulfillment collaborator.
//
// @contact.name   API Support
// @contact.url    https://github.com/tribelet/kit-service
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
// @tag.name        Sessions
// @tag.description Customization session lifecycle
//
// @tag.name        Kit
// @tag.description Garment customization operations
//
// @tag.name        BackPrint
// @tag.description Back-print text operations
//
// @tag.name        Preview
// @tag.description Layer stack derivation
//
// @tag.name        Orders
// @tag.description Quantities, pricing, and order placement
//
// @tag.name        Wizard
// @tag.description Kit and team creation flow control
//
// @tag.name        TeamDraft
// @tag.description Team creation draft operations
//
// @tag.name        Teams
// @tag.description Team directory
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/tribelet/kit-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/tribelet/kit-service/config"
	"github.com/tribelet/kit-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

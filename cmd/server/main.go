package main

import (
	"github.com/rs/zerolog/log"

	"b2fy-web/internal/api"
	"b2fy-web/internal/config"
	"b2fy-web/internal/logger"
	"b2fy-web/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuração inválida")
	}

	logg := logger.New(cfg.AppEnv, cfg.LogLevel)

	client := api.New(cfg.APIBaseURL)
	r := server.NewRouter(cfg, client, logg, "web")

	addr := ":" + cfg.ServerPort
	logg.Info().Str("addr", addr).Str("api", cfg.APIBaseURL).Msg("starting server")
	if err := r.Run(addr); err != nil {
		logg.Fatal().Err(err).Msg("server error")
	}
}

package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/marketlens/marketlens/infra/config"
	"github.com/marketlens/marketlens/internal/server"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := flag.String("config", "", "path to the config file, empty for defaults")
	flag.Parse()

	cfg := config.MustLoad(*path)

	if err := server.New(cfg.Server.Port, cfg.Server.CacheTTL.Value()).Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

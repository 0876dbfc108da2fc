package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/cmd/tronrelic-indexer/cli"
	"github.com/tronrelic/tronrelic-indexer/pkg"
)

func init() {
	if err := godotenv.Load(pkg.Getenv("TRONRELIC_ENV_FILE", ".env")); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	if err := cli.Setup(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

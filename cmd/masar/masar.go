package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/masar-transit/masar/pkg/api"
	"github.com/masar-transit/masar/pkg/reconciler"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("MASAR_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("MASAR_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "masar",
		Description: "Single binary of truth for Masar - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			reconciler.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

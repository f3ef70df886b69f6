package api

import (
	"github.com/urfave/cli/v2"

	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/database"
	"github.com/masar-transit/masar/pkg/redis_client"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yml",
						Usage: "path to the config file",
					},
				},
				Action: func(c *cli.Context) error {
					if err := config.Load(c.String("config")); err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}

package reconciler

import (
	"encoding/json"
	"os"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/masar-transit/masar/pkg/arrivals"
	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/database"
	"github.com/masar-transit/masar/pkg/terminus"
	"github.com/masar-transit/masar/pkg/transit"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "Reconcile a planned journey against the live arrival feeds",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "reconcile a plan JSON file once and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "plan",
						Usage:    "path to the plan JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yml",
						Usage: "path to the config file",
					},
					&cli.StringFlag{
						Name:  "lang",
						Usage: "language code for feed localisation",
					},
				},
				Action: func(c *cli.Context) error {
					if err := config.Load(c.String("config")); err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}

					planBytes, err := os.ReadFile(c.String("plan"))
					if err != nil {
						return err
					}

					var plan transit.Plan
					if err := json.Unmarshal(planBytes, &plan); err != nil {
						return err
					}

					lang := c.String("lang")
					if lang == "" {
						lang = config.Config.DefaultLanguage
					}

					engine := &Engine{
						Arrivals:       arrivals.NewClient(config.Config.Feeds),
						Terminus:       terminus.DatabaseResolver{},
						MaxWaitMinutes: config.Config.Reconciler.MaxWaitMinutes,
					}

					updated, totalMinutes, err := engine.Reconcile(c.Context, plan, lang)
					if err != nil {
						return err
					}

					pretty.Println(updated)
					pretty.Println("total minutes:", totalMinutes)

					return nil
				},
			},
		},
	}
}

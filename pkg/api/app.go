package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/masar-transit/masar/pkg/api/routes"
	"github.com/masar-transit/masar/pkg/arrivals"
	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/linedirectory"
	"github.com/masar-transit/masar/pkg/reconciler"
	"github.com/masar-transit/masar/pkg/terminus"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	arrivalsClient := arrivals.NewClient(config.Config.Feeds)

	engine := &reconciler.Engine{
		Arrivals:       arrivalsClient,
		Terminus:       terminus.DatabaseResolver{},
		MaxWaitMinutes: config.Config.Reconciler.MaxWaitMinutes,
	}

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.JourneyRouter(group.Group("/journey"), engine)
	routes.ArrivalsRouter(group.Group("/arrivals"), arrivalsClient)
	routes.LinesRouter(group.Group("/lines"), linedirectory.NewDirectory())

	return webApp.Listen(listen)
}

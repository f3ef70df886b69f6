package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/masar-transit/masar/pkg/arrivals"
	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/transit"
)

func ArrivalsRouter(router fiber.Router, client *arrivals.Client) {
	router.Get("/:station", func(c *fiber.Ctx) error {
		return getStationArrivals(c, client)
	})
}

func getStationArrivals(c *fiber.Ctx, client *arrivals.Client) error {
	station := c.Params("station")
	lang := c.Query("lang", config.Config.DefaultLanguage)

	var mode transit.SegmentKind
	switch c.Query("mode", "metro") {
	case "bus":
		mode = transit.SegmentKindBus
	case "metro":
		mode = transit.SegmentKindMetro
	default:
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter mode should be bus or metro",
		})
	}

	liveArrivals, err := client.FetchArrivals(c.Context(), station, mode, lang)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"station":  station,
		"arrivals": liveArrivals,
	})
}

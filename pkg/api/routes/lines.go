package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/linedirectory"
)

func LinesRouter(router fiber.Router, directory *linedirectory.Directory) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getLines(c, directory)
	})
}

func getLines(c *fiber.Ctx, directory *linedirectory.Directory) error {
	lang := c.Query("lang", config.Config.DefaultLanguage)

	lines, err := directory.Get(c.Context(), lang)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"lines": lines,
	})
}

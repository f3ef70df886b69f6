package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/masar-transit/masar/pkg/config"
	"github.com/masar-transit/masar/pkg/reconciler"
	"github.com/masar-transit/masar/pkg/transit"
)

func JourneyRouter(router fiber.Router, engine *reconciler.Engine) {
	router.Post("/reconcile", func(c *fiber.Ctx) error {
		return reconcileJourney(c, engine)
	})
}

// reconcileJourney re-annotates a planned journey against live feeds. A
// plan with degraded (Hidden) legs is still a 200 - only a malformed
// request or a cancelled pass is an error.
func reconcileJourney(c *fiber.Ctx, engine *reconciler.Engine) error {
	var plan transit.Plan
	if err := c.BodyParser(&plan); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Body should be a journey plan",
		})
	}

	if len(plan.Segments) == 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Plan contains no segments",
		})
	}

	lang := c.Query("lang", config.Config.DefaultLanguage)

	updated, totalMinutes, err := engine.Reconcile(c.Context(), plan, lang)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"plan":          updated,
		"total_minutes": totalMinutes,
	})
}

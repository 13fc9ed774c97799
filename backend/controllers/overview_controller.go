package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/progress"
	"learnhub/backend/utils"
)

type OverviewController struct {
	Tracker *progress.Tracker
}

func NewOverviewController(tracker *progress.Tracker) *OverviewController {
	return &OverviewController{Tracker: tracker}
}

// GetOverview returns the home-page statistics: total, completed and
// in-progress course counts for the current user.
func (oc *OverviewController) GetOverview(c *fiber.Ctx) error {
	overview, err := oc.Tracker.Overview()
	if err != nil {
		return utils.InternalServerError(c, "Could not load overview")
	}
	return c.JSON(overview)
}

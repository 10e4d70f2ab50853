package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"MissionControl/Models"
)

// GetTeam returns the static team roster for the dashboard grid.
func GetTeam(c *fiber.Ctx) error {
	return c.JSON(Models.TeamData)
}

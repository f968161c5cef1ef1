// handlers/achievements.go
package handlers

import (
	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

type AchievementHandler struct {
	achievements *services.AchievementService
}

func NewAchievementHandler(achievements *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// Catalog lists every defined achievement. Public.
func (h *AchievementHandler) Catalog(c *fiber.Ctx) error {
	catalog, err := h.achievements.ListCatalog()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": catalog,
		"total":        len(catalog),
	})
}

// Mine lists the achievements the caller has earned.
func (h *AchievementHandler) Mine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	earned, err := h.achievements.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": earned,
		"earned":       len(earned),
	})
}

// handlers/avatar.go
package handlers

import (
	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

type AvatarHandler struct {
	avatars *services.AvatarService
}

func NewAvatarHandler(avatars *services.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

type PurchaseRequest struct {
	AvatarStyleID uint `json:"avatar_style_id"`
}

type UpdateAvatarRequest struct {
	AvatarStyle string `json:"avatar_style"`
	AvatarSeed  string `json:"avatar_seed"`
}

// ListStyles returns the style catalog annotated with what the caller
// owns.
func (h *AvatarHandler) ListStyles(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	styles, err := h.avatars.ListStyles(&userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"styles":  styles,
	})
}

// Purchase buys a style with points.
func (h *AvatarHandler) Purchase(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.AvatarStyleID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "avatar_style_id required"})
	}

	purchase, err := h.avatars.Purchase(userID, req.AvatarStyleID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"purchase": purchase,
	})
}

// Update equips a style the caller owns.
func (h *AvatarHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req UpdateAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.AvatarStyle == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "avatar_style required"})
	}

	user, err := h.avatars.Equip(userID, req.AvatarStyle, req.AvatarSeed)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

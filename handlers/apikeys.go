// handlers/apikeys.go
package handlers

import (
	"strconv"

	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

type APIKeyHandler struct {
	keys *services.APIKeyService
}

func NewAPIKeyHandler(keys *services.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{keys: keys}
}

type CreateKeyRequest struct {
	Name string `json:"name"`
}

// Issue creates a new API key for the logged-in user. The key string is
// only returned here, so clients must store it.
func (h *APIKeyHandler) Issue(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req CreateKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Key name required"})
	}

	key, err := h.keys.Issue(userID, req.Name)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"api_key": key,
	})
}

// List returns every key the user has issued.
func (h *APIKeyHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	keys, err := h.keys.List(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"api_keys": keys,
	})
}

// Revoke deactivates a key. Keys owned by other users look like they
// don't exist.
func (h *APIKeyHandler) Revoke(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	keyID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid key id"})
	}

	revoked, err := h.keys.Revoke(userID, uint(keyID))
	if err != nil {
		return fail(c, err)
	}
	if !revoked {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "API key not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "API key revoked",
	})
}

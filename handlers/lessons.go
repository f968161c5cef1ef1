// handlers/lessons.go
package handlers

import (
	"strconv"

	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

type LessonHandler struct {
	catalog *services.LessonCatalog
}

func NewLessonHandler(catalog *services.LessonCatalog) *LessonHandler {
	return &LessonHandler{catalog: catalog}
}

// List returns the full lesson catalog. Public.
func (h *LessonHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"lessons": h.catalog.All(),
	})
}

// Get returns a single lesson by ID.
func (h *LessonHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid lesson id"})
	}

	lesson, ok := h.catalog.Get(uint(id))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Lesson not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"lesson":  lesson,
	})
}

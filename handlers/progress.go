// handlers/progress.go
package handlers

import (
	"strconv"

	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	progress *services.ProgressService
}

func NewProgressHandler(progress *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// UpdateProgressRequest reports a lesson attempt. Score is a pointer so
// an absent score and a score of zero stay distinguishable.
type UpdateProgressRequest struct {
	LessonID  uint `json:"lesson_id"`
	Completed bool `json:"completed"`
	Score     *int `json:"score"`
}

// Update records a lesson attempt and reports any achievements it
// earned.
func (h *ProgressHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var req UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.LessonID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "lesson_id required"})
	}

	progress, newAchievements, err := h.progress.Record(userID, req.LessonID, req.Completed, req.Score)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"progress":         progress,
		"new_achievements": newAchievements,
	})
}

// List returns all progress records of the user.
func (h *ProgressHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	progress, err := h.progress.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"progress": progress,
	})
}

// GetLesson returns the record for a single lesson.
func (h *ProgressHandler) GetLesson(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	lessonID, err := strconv.ParseUint(c.Params("lessonId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid lesson id"})
	}

	progress, err := h.progress.GetLesson(userID, uint(lessonID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"progress": progress,
	})
}

// handlers/auth.go
package handlers

import (
	"errors"
	"strings"

	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/models"
	"github.com/thelonewolf39/Language-Learning-web/services"
	"github.com/thelonewolf39/Language-Learning-web/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db       *gorm.DB
	sessions *services.SessionRegistry
}

func NewAuthHandler(db *gorm.DB, sessions *services.SessionRegistry) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Username and password required"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail(c, err)
	}

	user := models.User{
		Username:    req.Username,
		Password:    hash,
		TotalPoints: 0,
		AvatarStyle: "avataaars",
		AvatarSeed:  uuid.New().String()[:8],
	}

	// The unique index on username is the source of truth, so two
	// racing registrations cannot both succeed. A pre-check would
	// leave a window between the read and the insert.
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fail(c, services.ErrUsernameTaken)
		}
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// Login verifies credentials and mints a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Username and password required"})
	}

	var user models.User
	err := h.db.Where("username = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, services.ErrInvalidCredentials)
	}
	if err != nil {
		return fail(c, err)
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return fail(c, services.ErrInvalidCredentials)
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Logout drops the session. Idempotent: an unknown or already revoked
// token still logs out successfully.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		h.sessions.Revoke(parts[1])
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, services.ErrNotFound)
		}
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thelonewolf39/Language-Learning-web/models"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *services.SessionRegistry) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sessions := services.NewSessionRegistry()
	h := NewAuthHandler(db, sessions)

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/logout", h.Logout)
	return app, sessions
}

func postJSON(t *testing.T, app *fiber.App, path, body string) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	payload["_status"] = resp.StatusCode
	return payload
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	app, _ := newAuthTestApp(t)

	first := postJSON(t, app, "/auth/register", `{"username":"ana","password":"secret1"}`)
	assert.Equal(t, 201, first["_status"])
	assert.Equal(t, true, first["success"])

	// The duplicate is rejected by the unique index, not a pre-check,
	// so concurrent registrations of the same name get the same 409.
	second := postJSON(t, app, "/auth/register", `{"username":"ana","password":"other99"}`)
	assert.Equal(t, 409, second["_status"])
	assert.Equal(t, false, second["success"])
	assert.Equal(t, "username already exists", second["error"])
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	app, sessions := newAuthTestApp(t)

	postJSON(t, app, "/auth/register", `{"username":"ana","password":"secret1"}`)

	login := postJSON(t, app, "/auth/login", `{"username":"ana","password":"secret1"}`)
	assert.Equal(t, 200, login["_status"])
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	_, ok := sessions.Resolve(token)
	assert.True(t, ok)

	wrong := postJSON(t, app, "/auth/login", `{"username":"ana","password":"nope"}`)
	assert.Equal(t, 401, wrong["_status"])
}

func TestLogoutIsIdempotent(t *testing.T) {
	app, sessions := newAuthTestApp(t)

	postJSON(t, app, "/auth/register", `{"username":"ana","password":"secret1"}`)
	login := postJSON(t, app, "/auth/login", `{"username":"ana","password":"secret1"}`)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode)
	}

	_, ok := sessions.Resolve(token)
	assert.False(t, ok)
}

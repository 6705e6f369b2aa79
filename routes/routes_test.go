package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetdesk/config"
	"fleetdesk/models"
	"fleetdesk/utils"
)

// newTestApp wires the full route table against an in-memory database. The
// package-level config.DB is also pointed at it because the auth middleware
// resolves offices through that handle.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.JWTExpiry = time.Hour
	config.AppConfig.RateLimitLogin = 100

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	config.DB = db

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRouteReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/no-such-route", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEventRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/event/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/event/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/event/", nil)
	req.Header.Set("Authorization", "garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenOfDeletedOfficeIsRejected(t *testing.T) {
	app, db := newTestApp(t)

	office := models.Office{OfficeID: 1, Branch: "Central", Email: "central@fleetdesk.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&office).Error)

	token, err := utils.GenerateOfficeToken(&office)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Office{}, office.OfficeID).Error)

	req := httptest.NewRequest("GET", "/event/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginAndCreateEvent(t *testing.T) {
	app, db := newTestApp(t)

	// Register an office through the public endpoint
	req := httptest.NewRequest("POST", "/office/", jsonBody(t, map[string]any{
		"officeID":     1,
		"officeBranch": "Central",
		"officePhone":  5550100,
		"officeEmail":  "central@fleetdesk.test",
		"password":     "hunter2hunter2",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Log in to get a bearer token
	req = httptest.NewRequest("POST", "/auth/login", jsonBody(t, map[string]any{
		"officeEmail": "central@fleetdesk.test",
		"password":    "hunter2hunter2",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	login := decodeBody(t, resp.Body)
	token, _ := login["access_token"].(string)
	require.NotEmpty(t, token)
	assert.EqualValues(t, 1, login["officeId"])

	// A team the event can point at
	team := models.Team{Name: "Alpha", Status: models.TeamStatusAvailable}
	require.NoError(t, db.Create(&team).Error)

	req = httptest.NewRequest("POST", "/event/", jsonBody(t, map[string]any{
		"eventTeamID":    team.TeamID,
		"eventName":      "Road closure",
		"eventStartDate": "2026-03-10T08:00:00Z",
		"eventEndDate":   "2026-03-12T18:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	event := decodeBody(t, resp.Body)
	assert.EqualValues(t, 1, event["eventOfficeID"])
	assert.Equal(t, "ACTIVE", event["status"])

	// The created event is visible through the guarded read path
	req = httptest.NewRequest("GET", "/event/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginWrongPasswordReturns401(t *testing.T) {
	app, db := newTestApp(t)

	office := models.Office{OfficeID: 1, Branch: "Central", Email: "central@fleetdesk.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&office).Error)

	req := httptest.NewRequest("POST", "/auth/login", jsonBody(t, map[string]any{
		"officeEmail": "central@fleetdesk.test",
		"password":    "wrong-password",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEventCreateUnknownTeamReturns400(t *testing.T) {
	app, db := newTestApp(t)

	office := models.Office{OfficeID: 1, Branch: "Central", Email: "central@fleetdesk.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&office).Error)

	token, err := utils.GenerateOfficeToken(&office)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/event/", jsonBody(t, map[string]any{
		"eventTeamID":    999,
		"eventName":      "Road closure",
		"eventStartDate": "2026-03-10T08:00:00Z",
		"eventEndDate":   "2026-03-12T18:00:00Z",
	}))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

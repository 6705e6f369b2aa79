package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/config"
	"fleetdesk/models"
	"fleetdesk/utils"
)

func TestAuthLogin(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.JWTExpiry = time.Hour

	db := newTestDB(t)
	offices := NewOfficeService(db, testLogger())
	auth := NewAuthService(db, testLogger())

	office := models.Office{
		OfficeID: 42,
		Branch:   "Central",
		Email:    "central@fleetdesk.test",
	}
	require.NoError(t, offices.Create(&office, "hunter2hunter2"))

	got, token, err := auth.Login("central@fleetdesk.test", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, 42, got.OfficeID)
	require.NotEmpty(t, token)

	claims, err := utils.ParseOfficeToken(token)
	require.NoError(t, err)

	officeID, err := claims.OfficeID()
	require.NoError(t, err)
	assert.Equal(t, 42, officeID)
	assert.Equal(t, "central@fleetdesk.test", claims.OfficeEmail)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, time.Hour.Seconds(), remaining.Seconds(), 60)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.JWTExpiry = time.Hour

	db := newTestDB(t)
	offices := NewOfficeService(db, testLogger())
	auth := NewAuthService(db, testLogger())

	require.NoError(t, offices.Create(&models.Office{
		OfficeID: 42, Branch: "Central", Email: "central@fleetdesk.test",
	}, "hunter2hunter2"))

	got, token, err := auth.Login("central@fleetdesk.test", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, got)
	assert.Empty(t, token)
}

func TestAuthLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testLogger())

	got, token, err := auth.Login("nobody@fleetdesk.test", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, got)
	assert.Empty(t, token)
}

package services

import (
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fleetdesk/config"
	"fleetdesk/models"
)

// newTestDB opens a fresh in-memory database with the full schema. The pool
// is pinned to one connection because every in-memory connection is its own
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))
	return db
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "test")
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func seedOffice(t *testing.T, db *gorm.DB, officeID int, email string) *models.Office {
	t.Helper()
	office := models.Office{
		OfficeID:     officeID,
		Branch:       "Central",
		Phone:        5550100,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&office).Error)
	return &office
}

func seedTeam(t *testing.T, db *gorm.DB, officeID *int) *models.Team {
	t.Helper()
	team := models.Team{
		OfficeID: officeID,
		Name:     "Alpha",
		Leader:   "Lena",
		Status:   models.TeamStatusAvailable,
	}
	require.NoError(t, db.Create(&team).Error)
	return &team
}

func seedDriver(t *testing.T, db *gorm.DB, driverID int) *models.Driver {
	t.Helper()
	driver := models.Driver{
		DriverID: driverID,
		Name:     "Marko",
		Number:   5550200,
		Region:   "North",
	}
	require.NoError(t, db.Create(&driver).Error)
	return &driver
}

func seedVehicle(t *testing.T, db *gorm.DB, regNum int, driverID *int) *models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		RegNum:   regNum,
		DriverID: driverID,
		Brand:    "Volvo",
		Model:    "FH",
		Type:     models.VehicleTypeVan,
		Capacity: 8,
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return &vehicle
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/models"
)

func eventInput(teamID int) EventCreate {
	return EventCreate{
		TeamID:      teamID,
		Name:        "Road closure",
		Description: "Bridge maintenance detour",
		StartDate:   time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 12, 18, 0, 0, 0, time.UTC),
	}
}

func TestEventCreateSnapshotsTeamOffice(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	caller := seedOffice(t, db, 1, "central@fleetdesk.test")
	teamOffice := seedOffice(t, db, 2, "north@fleetdesk.test")
	team := seedTeam(t, db, intPtr(teamOffice.OfficeID))

	event, err := svc.Create(eventInput(team.TeamID), caller.OfficeID)
	require.NoError(t, err)

	assert.Equal(t, caller.OfficeID, event.OfficeID)
	require.NotNil(t, event.TeamOfficeID)
	assert.Equal(t, teamOffice.OfficeID, *event.TeamOfficeID)
	assert.Equal(t, models.EventStatusActive, event.Status)
}

func TestEventSnapshotNotMaintained(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	seedOffice(t, db, 2, "north@fleetdesk.test")
	team := seedTeam(t, db, intPtr(2))

	event, err := svc.Create(eventInput(team.TeamID), 1)
	require.NoError(t, err)

	// Move the team to another office; the stored snapshot must stay stale
	require.NoError(t, db.Model(&models.Team{}).
		Where("team_id = ?", team.TeamID).
		Update("team_office_id", 1).Error)

	stored, err := svc.FindByID(event.EventID)
	require.NoError(t, err)
	require.NotNil(t, stored.TeamOfficeID)
	assert.Equal(t, 2, *stored.TeamOfficeID)
}

func TestEventCreateFallsBackToCallerOffice(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	caller := seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, nil)

	event, err := svc.Create(eventInput(team.TeamID), caller.OfficeID)
	require.NoError(t, err)
	require.NotNil(t, event.TeamOfficeID)
	assert.Equal(t, caller.OfficeID, *event.TeamOfficeID)
}

func TestEventCreateUnknownTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")

	_, err := svc.Create(eventInput(999), 1)
	require.ErrorIs(t, err, ErrInvalidReference)

	events, err := svc.FindAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventUpdateRecomputesSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	seedOffice(t, db, 2, "north@fleetdesk.test")
	oldTeam := seedTeam(t, db, intPtr(1))
	newTeam := seedTeam(t, db, intPtr(2))

	event, err := svc.Create(eventInput(oldTeam.TeamID), 1)
	require.NoError(t, err)

	updated, err := svc.Update(event.EventID, EventUpdate{TeamID: intPtr(newTeam.TeamID)})
	require.NoError(t, err)
	assert.Equal(t, newTeam.TeamID, updated.TeamID)
	require.NotNil(t, updated.TeamOfficeID)
	assert.Equal(t, 2, *updated.TeamOfficeID)
}

func TestEventUpdateUnknownTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, intPtr(1))

	event, err := svc.Create(eventInput(team.TeamID), 1)
	require.NoError(t, err)

	_, err = svc.Update(event.EventID, EventUpdate{TeamID: intPtr(999)})
	require.ErrorIs(t, err, ErrInvalidReference)

	stored, err := svc.FindByID(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, team.TeamID, stored.TeamID)
}

func TestEventReportProblem(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, intPtr(1))

	event, err := svc.Create(eventInput(team.TeamID), 1)
	require.NoError(t, err)

	reported, err := svc.ReportProblem(event.EventID, 3, "vehicle breakdown")
	require.NoError(t, err)
	assert.Equal(t, 3, reported.ProblemType)
	assert.Equal(t, "vehicle breakdown", reported.ProblemDescription)

	// Everything else stays as created
	assert.Equal(t, event.Name, reported.Name)
	assert.Equal(t, event.Status, reported.Status)
	assert.Equal(t, event.TeamID, reported.TeamID)
}

func TestEventFinish(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, intPtr(1))

	event, err := svc.Create(eventInput(team.TeamID), 1)
	require.NoError(t, err)

	finished, err := svc.Finish(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusFinished, finished.Status)

	_, err = svc.Finish(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	seedOffice(t, db, 2, "north@fleetdesk.test")
	teamA := seedTeam(t, db, intPtr(1))
	teamB := seedTeam(t, db, intPtr(2))

	early := eventInput(teamA.TeamID)
	_, err := svc.Create(early, 1)
	require.NoError(t, err)

	late := eventInput(teamB.TeamID)
	late.StartDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	late.EndDate = time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	late.ProblemType = 2
	lateEvent, err := svc.Create(late, 2)
	require.NoError(t, err)

	byTeam, err := svc.FindByTeam(teamB.TeamID)
	require.NoError(t, err)
	require.Len(t, byTeam, 1)
	assert.Equal(t, lateEvent.EventID, byTeam[0].EventID)

	byOffice, err := svc.FindByOffice(1)
	require.NoError(t, err)
	require.Len(t, byOffice, 1)
	assert.Equal(t, teamA.TeamID, byOffice[0].TeamID)

	inRange, err := svc.FindByDateRange(
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, lateEvent.EventID, inRange[0].EventID)

	byProblem, err := svc.FindByProblemType(2)
	require.NoError(t, err)
	require.Len(t, byProblem, 1)
	assert.Equal(t, lateEvent.EventID, byProblem[0].EventID)
}

func TestEventLookups(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	caller := seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, intPtr(1))

	event, err := svc.Create(eventInput(team.TeamID), caller.OfficeID)
	require.NoError(t, err)

	office, err := svc.OfficeFor(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, caller.OfficeID, office.OfficeID)

	got, err := svc.TeamFor(event.EventID)
	require.NoError(t, err)
	assert.Equal(t, team.TeamID, got.TeamID)

	_, err = svc.OfficeFor(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, testLogger())

	seedOffice(t, db, 1, "central@fleetdesk.test")
	team := seedTeam(t, db, intPtr(1))

	event, err := svc.Create(eventInput(team.TeamID), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(event.EventID))
	require.ErrorIs(t, svc.Delete(event.EventID), ErrNotFound)
}

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type EventService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewEventService(db *gorm.DB, logger *logrus.Entry) *EventService {
	return &EventService{db: db, logger: logger}
}

// EventCreate deliberately has no office or event ID field: the office is
// stamped from the authenticated caller and the event ID is generated.
type EventCreate struct {
	TeamID             int                `json:"eventTeamID" validate:"required"`
	Name               string             `json:"eventName" validate:"required,max=200"`
	Description        string             `json:"eventDescription"`
	StartDate          time.Time          `json:"eventStartDate" validate:"required"`
	EndDate            time.Time          `json:"eventEndDate" validate:"required"`
	ProblemType        int                `json:"eventProblemType" validate:"omitempty,min=0,max=4"`
	ProblemDescription string             `json:"eventProblemDescription"`
	Status             models.EventStatus `json:"status" validate:"omitempty,oneof=ACTIVE FINISHED"`
}

type EventUpdate struct {
	TeamID             *int                `json:"eventTeamID"`
	Name               *string             `json:"eventName"`
	Description        *string             `json:"eventDescription"`
	StartDate          *time.Time          `json:"eventStartDate"`
	EndDate            *time.Time          `json:"eventEndDate"`
	Status             *models.EventStatus `json:"status" validate:"omitempty,oneof=ACTIVE FINISHED"`
}

// Create stores a new event owned by officeID. The team's office is copied
// into TeamOfficeID at this instant; a team with no office falls back to
// the caller's office. The copy is not maintained afterwards.
func (s *EventService) Create(in EventCreate, officeID int) (*models.Event, error) {
	team, err := s.teamByID(in.TeamID)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		OfficeID:           officeID,
		TeamID:             in.TeamID,
		Name:               in.Name,
		Description:        in.Description,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		ProblemType:        in.ProblemType,
		ProblemDescription: in.ProblemDescription,
		Status:             in.Status,
	}
	if event.Status == "" {
		event.Status = models.EventStatusActive
	}
	if team.OfficeID != nil {
		event.TeamOfficeID = team.OfficeID
	} else {
		event.TeamOfficeID = &officeID
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event":  event.EventID,
		"team":   event.TeamID,
		"office": officeID,
	}).Info("event created")
	return &event, nil
}

func (s *EventService) FindAll() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) FindByID(eventID int) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) OfficeFor(eventID int) (*models.Office, error) {
	event, err := s.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	var office models.Office
	if err := s.db.First(&office, event.OfficeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("office %d: %w", event.OfficeID, ErrNotFound)
		}
		return nil, err
	}
	return &office, nil
}

func (s *EventService) TeamFor(eventID int) (*models.Team, error) {
	event, err := s.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	return s.teamLookup(event.TeamID)
}

func (s *EventService) FindByTeam(teamID int) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("event_team_id = ?", teamID).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) FindByOffice(officeID int) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("event_office_id = ?", officeID).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) FindByDateRange(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.
		Where("start_date >= ?", start).
		Where("end_date <= ?", end).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) FindByProblemType(problemType int) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("problem_type = ?", problemType).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update merges the provided fields. Changing the team recomputes the
// TeamOfficeID snapshot from the new team; events pointing at the old team
// are never revisited.
func (s *EventService) Update(eventID int, in EventUpdate) (*models.Event, error) {
	event, err := s.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	if in.TeamID != nil {
		team, err := s.teamByID(*in.TeamID)
		if err != nil {
			return nil, err
		}
		event.TeamID = *in.TeamID
		event.TeamOfficeID = team.OfficeID
	}
	if in.Name != nil {
		event.Name = *in.Name
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.StartDate != nil {
		event.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		event.EndDate = *in.EndDate
	}
	if in.Status != nil {
		event.Status = *in.Status
	}

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// ReportProblem records a problem on the event without touching any other
// field.
func (s *EventService) ReportProblem(eventID, problemType int, description string) (*models.Event, error) {
	event, err := s.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.ProblemType = problemType
	event.ProblemDescription = description

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Finish transitions the event to FINISHED. No transition out of FINISHED
// is offered here, though a generic update can still overwrite the status.
func (s *EventService) Finish(eventID int) (*models.Event, error) {
	event, err := s.FindByID(eventID)
	if err != nil {
		return nil, err
	}

	event.Status = models.EventStatusFinished

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(eventID int) error {
	res := s.db.Delete(&models.Event{}, eventID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	return nil
}

// teamByID is the write-path lookup: a missing team is an invalid reference
// because the caller is about to bind an event to it.
func (s *EventService) teamByID(teamID int) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %d: %w", teamID, ErrInvalidReference)
		}
		return nil, err
	}
	return &team, nil
}

// teamLookup is the read-path variant: a missing team is just NotFound.
func (s *EventService) teamLookup(teamID int) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		}
		return nil, err
	}
	return &team, nil
}

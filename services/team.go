package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type TeamService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewTeamService(db *gorm.DB, logger *logrus.Entry) *TeamService {
	return &TeamService{db: db, logger: logger}
}

type TeamUpdate struct {
	OfficeID models.OptionalInt `json:"teamOfficeID"`
	Name     *string            `json:"teamName"`
	Leader   *string            `json:"teamLeader"`
	Status   *models.TeamStatus `json:"teamStatus" validate:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
}

func (s *TeamService) Create(team *models.Team) error {
	if team.Status == "" {
		team.Status = models.TeamStatusAvailable
	}
	return s.db.Create(team).Error
}

func (s *TeamService) FindAll() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) FindByID(teamID int) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		}
		return nil, err
	}
	return &team, nil
}

// OfficeFor resolves the office that owns the team.
func (s *TeamService) OfficeFor(teamID int) (*models.Office, error) {
	team, err := s.FindByID(teamID)
	if err != nil {
		return nil, err
	}
	if team.OfficeID == nil {
		return nil, fmt.Errorf("team %d has no office: %w", teamID, ErrNotFound)
	}

	var office models.Office
	if err := s.db.First(&office, *team.OfficeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("office %d: %w", *team.OfficeID, ErrNotFound)
		}
		return nil, err
	}
	return &office, nil
}

func (s *TeamService) Update(teamID int, in TeamUpdate) (*models.Team, error) {
	team, err := s.FindByID(teamID)
	if err != nil {
		return nil, err
	}

	if in.OfficeID.Present {
		team.OfficeID = in.OfficeID.Value
	}
	if in.Name != nil {
		team.Name = *in.Name
	}
	if in.Leader != nil {
		team.Leader = *in.Leader
	}
	if in.Status != nil {
		team.Status = *in.Status
	}

	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// Delete refuses to remove a team that members or events still point at,
// instead of leaving their foreign keys dangling.
func (s *TeamService) Delete(teamID int) error {
	if _, err := s.FindByID(teamID); err != nil {
		return err
	}

	var members int64
	if err := s.db.Model(&models.Member{}).Where("team_id = ?", teamID).Count(&members).Error; err != nil {
		return err
	}
	if members > 0 {
		return fmt.Errorf("team %d still has %d member(s): %w", teamID, members, ErrConflict)
	}

	var events int64
	if err := s.db.Model(&models.Event{}).Where("event_team_id = ?", teamID).Count(&events).Error; err != nil {
		return err
	}
	if events > 0 {
		return fmt.Errorf("team %d is still referenced by %d event(s): %w", teamID, events, ErrConflict)
	}

	s.logger.WithField("team", teamID).Info("deleting team")
	return s.db.Delete(&models.Team{}, teamID).Error
}

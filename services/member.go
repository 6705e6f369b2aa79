package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type MemberService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewMemberService(db *gorm.DB, logger *logrus.Entry) *MemberService {
	return &MemberService{db: db, logger: logger}
}

type MemberUpdate struct {
	TeamID        models.OptionalInt `json:"memberTeamID"`
	VehicleRegNum models.OptionalInt `json:"memberVehicleRegNum"`
	DriverID      models.OptionalInt `json:"memberDriverID"`
	Name          *string            `json:"memberName"`
	Number        *int               `json:"memberNumber"`
}

func (s *MemberService) Create(member *models.Member) error {
	if err := s.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("member %d already exists: %w", member.MemberID, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *MemberService) FindAll() ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MemberService) FindByID(memberID int) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %d: %w", memberID, ErrNotFound)
		}
		return nil, err
	}
	return &member, nil
}

func (s *MemberService) TeamFor(memberID int) (*models.Team, error) {
	member, err := s.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.TeamID == nil {
		return nil, fmt.Errorf("member %d has no team: %w", memberID, ErrNotFound)
	}

	var team models.Team
	if err := s.db.First(&team, *member.TeamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %d: %w", *member.TeamID, ErrNotFound)
		}
		return nil, err
	}
	return &team, nil
}

// OfficeFor walks member -> team -> office.
func (s *MemberService) OfficeFor(memberID int) (*models.Office, error) {
	team, err := s.TeamFor(memberID)
	if err != nil {
		return nil, err
	}
	if team.OfficeID == nil {
		return nil, fmt.Errorf("team %d has no office: %w", team.TeamID, ErrNotFound)
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

func (s *MemberService) VehicleFor(memberID int) (*models.Vehicle, error) {
	member, err := s.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.VehicleRegNum == nil {
		return nil, fmt.Errorf("member %d has no vehicle: %w", memberID, ErrNotFound)
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, *member.VehicleRegNum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d: %w", *member.VehicleRegNum, ErrNotFound)
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *MemberService) DriverFor(memberID int) (*models.Driver, error) {
	member, err := s.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member.DriverID == nil {
		return nil, fmt.Errorf("member %d has no driver: %w", memberID, ErrNotFound)
	}

	var driver models.Driver
	if err := s.db.First(&driver, *member.DriverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("driver %d: %w", *member.DriverID, ErrNotFound)
		}
		return nil, err
	}
	return &driver, nil
}

func (s *MemberService) Update(memberID int, in MemberUpdate) (*models.Member, error) {
	member, err := s.FindByID(memberID)
	if err != nil {
		return nil, err
	}

	if in.TeamID.Present {
		member.TeamID = in.TeamID.Value
	}
	if in.VehicleRegNum.Present {
		member.VehicleRegNum = in.VehicleRegNum.Value
	}
	if in.DriverID.Present {
		member.DriverID = in.DriverID.Value
	}
	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Number != nil {
		member.Number = *in.Number
	}

	if err := s.db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Delete(memberID int) error {
	res := s.db.Delete(&models.Member{}, memberID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("member %d: %w", memberID, ErrNotFound)
	}
	return nil
}

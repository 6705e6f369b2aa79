package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type OfficeService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewOfficeService(db *gorm.DB, logger *logrus.Entry) *OfficeService {
	return &OfficeService{db: db, logger: logger}
}

type OfficeUpdate struct {
	Branch *string `json:"officeBranch"`
	Phone  *int    `json:"officePhone"`
	Email  *string `json:"officeEmail" validate:"omitempty,email"`
}

// Create stores a new office with a bcrypt hash of the supplied password.
// The plaintext never touches the model.
func (s *OfficeService) Create(office *models.Office, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	office.PasswordHash = string(hash)

	if err := s.db.Create(office).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("office %d or email %q already exists: %w", office.OfficeID, office.Email, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *OfficeService) FindAll() ([]models.Office, error) {
	var offices []models.Office
	if err := s.db.Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

func (s *OfficeService) FindByID(officeID int) (*models.Office, error) {
	var office models.Office
	if err := s.db.First(&office, officeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("office %d: %w", officeID, ErrNotFound)
		}
		return nil, err
	}
	return &office, nil
}

func (s *OfficeService) FindByEmail(email string) (*models.Office, error) {
	var office models.Office
	if err := s.db.Where("email = ?", email).First(&office).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("office %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &office, nil
}

// TeamFor is the derived reverse side of the office/team 1:1 link: a lookup
// on team.team_office_id rather than a stored relation.
func (s *OfficeService) TeamFor(officeID int) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("team_office_id = ?", officeID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no team for office %d: %w", officeID, ErrNotFound)
		}
		return nil, err
	}
	return &team, nil
}

func (s *OfficeService) Update(officeID int, in OfficeUpdate) (*models.Office, error) {
	office, err := s.FindByID(officeID)
	if err != nil {
		return nil, err
	}

	if in.Branch != nil {
		office.Branch = *in.Branch
	}
	if in.Phone != nil {
		office.Phone = *in.Phone
	}
	if in.Email != nil {
		office.Email = *in.Email
	}

	if err := s.db.Save(office).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("office email %q already taken: %w", office.Email, ErrConflict)
		}
		return nil, err
	}
	return office, nil
}

// Delete removes the office after clearing the owning team's reference to
// it, so the team is left officeless rather than dangling.
func (s *OfficeService) Delete(officeID int) error {
	if _, err := s.FindByID(officeID); err != nil {
		return err
	}

	if err := s.db.Model(&models.Team{}).
		Where("team_office_id = ?", officeID).
		Update("team_office_id", nil).Error; err != nil {
		return err
	}

	s.logger.WithField("office", officeID).Info("deleting office")
	return s.db.Delete(&models.Office{}, officeID).Error
}

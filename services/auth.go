package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetdesk/models"
	"fleetdesk/utils"
)

type AuthService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewAuthService(db *gorm.DB, logger *logrus.Entry) *AuthService {
	return &AuthService{db: db, logger: logger}
}

// Login verifies office credentials and mints a bearer token. Both an
// unknown email and a wrong password come back as ErrInvalidCredentials so
// the response does not reveal which one it was.
func (s *AuthService) Login(email, password string) (*models.Office, string, error) {
	var office models.Office
	if err := s.db.Where("email = ?", email).First(&office).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(office.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("office", office.OfficeID).Warn("failed login attempt")
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateOfficeToken(&office)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return &office, token, nil
}

package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type DriverService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewDriverService(db *gorm.DB, logger *logrus.Entry) *DriverService {
	return &DriverService{db: db, logger: logger}
}

type DriverUpdate struct {
	Name   *string `json:"driverName"`
	Number *int    `json:"driverNumber"`
	Region *string `json:"driverRegion"`
}

func (s *DriverService) Create(driver *models.Driver) error {
	if err := s.db.Create(driver).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("driver %d already exists: %w", driver.DriverID, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *DriverService) FindAll() ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.db.Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *DriverService) FindByID(driverID int) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("driver %d: %w", driverID, ErrNotFound)
		}
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) FindByRegion(region string) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.db.Where("region = ?", region).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *DriverService) Update(driverID int, in DriverUpdate) (*models.Driver, error) {
	driver, err := s.FindByID(driverID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		driver.Name = *in.Name
	}
	if in.Number != nil {
		driver.Number = *in.Number
	}
	if in.Region != nil {
		driver.Region = *in.Region
	}

	if err := s.db.Save(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

// Delete does not cascade: a vehicle still pointing at the driver keeps its
// dangling driver ID, matching the data model. Clients clear references
// first if they care.
func (s *DriverService) Delete(driverID int) error {
	res := s.db.Delete(&models.Driver{}, driverID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("driver %d: %w", driverID, ErrNotFound)
	}
	return nil
}

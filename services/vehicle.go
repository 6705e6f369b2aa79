package services

import (
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleetdesk/models"
)

type VehicleService struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewVehicleService(db *gorm.DB, logger *logrus.Entry) *VehicleService {
	return &VehicleService{db: db, logger: logger}
}

// VehicleUpdate carries the fields a PUT may change. DriverID is tri-state:
// absent keeps the current assignment, null clears it, a value reassigns.
type VehicleUpdate struct {
	DriverID models.OptionalInt `json:"vehicleDriverID"`
	Brand    *string            `json:"vehicleBrand"`
	Model    *string            `json:"vehicleModel"`
	Type     *int               `json:"vehicleType" validate:"omitempty,oneof=1 2 3"`
	Capacity *int               `json:"vehicleCapacity" validate:"omitempty,min=0"`
}

func (s *VehicleService) Create(vehicle *models.Vehicle) error {
	if vehicle.DriverID != nil {
		if err := s.claimDriver(*vehicle.DriverID, vehicle.RegNum); err != nil {
			return err
		}
	}

	if err := s.db.Create(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("vehicle %d already exists: %w", vehicle.RegNum, ErrConflict)
		}
		return err
	}
	return nil
}

func (s *VehicleService) FindAll() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) FindByRegNum(regNum int) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, regNum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d: %w", regNum, ErrNotFound)
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) FindByType(vehicleType int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Where("type = ?", vehicleType).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// DriverFor resolves the driver currently assigned to the vehicle.
func (s *VehicleService) DriverFor(regNum int) (*models.Driver, error) {
	vehicle, err := s.FindByRegNum(regNum)
	if err != nil {
		return nil, err
	}
	if vehicle.DriverID == nil {
		return nil, fmt.Errorf("vehicle %d has no driver: %w", regNum, ErrNotFound)
	}

	var driver models.Driver
	if err := s.db.First(&driver, *vehicle.DriverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("driver %d: %w", *vehicle.DriverID, ErrNotFound)
		}
		return nil, err
	}
	return &driver, nil
}

// Update merges the provided fields over the stored vehicle. A driver
// reassignment goes through claimDriver first so the at-most-one-vehicle-
// per-driver rule holds; if the final save still hits a duplicate despite
// the pre-check, the race surfaces as ErrConflict and the caller may retry.
func (s *VehicleService) Update(regNum int, in VehicleUpdate) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, regNum).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d: %w", regNum, ErrNotFound)
		}
		return nil, err
	}

	if in.DriverID.Present {
		newID := in.DriverID.Value
		changing := newID != nil && (vehicle.DriverID == nil || *newID != *vehicle.DriverID)
		if changing {
			if err := s.claimDriver(*newID, regNum); err != nil {
				return nil, err
			}
		}
		vehicle.DriverID = newID
	}
	if in.Brand != nil {
		vehicle.Brand = *in.Brand
	}
	if in.Model != nil {
		vehicle.Model = *in.Model
	}
	if in.Type != nil {
		vehicle.Type = *in.Type
	}
	if in.Capacity != nil {
		vehicle.Capacity = *in.Capacity
	}

	if err := s.db.Save(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.reportConflict(regNum, err)
			return nil, fmt.Errorf("vehicle %d: driver assignment raced, try again: %w", regNum, ErrConflict)
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Delete(regNum int) error {
	res := s.db.Delete(&models.Vehicle{}, regNum)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle %d: %w", regNum, ErrNotFound)
	}
	return nil
}

// claimDriver verifies that the driver exists and frees it from whichever
// vehicle currently holds it. The clear and the subsequent assignment are
// two independent writes with no transaction around them; a crash between
// the two leaves both vehicles unassigned.
func (s *VehicleService) claimDriver(driverID, regNum int) error {
	var driver models.Driver
	if err := s.db.First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("driver %d: %w", driverID, ErrInvalidReference)
		}
		return err
	}

	var holder models.Vehicle
	err := s.db.Where("driver_id = ?", driverID).First(&holder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.RegNum == regNum {
		return nil
	}

	s.logger.WithFields(logrus.Fields{
		"driver":  driverID,
		"vehicle": holder.RegNum,
	}).Info("driver already assigned, clearing previous vehicle")

	holder.DriverID = nil
	return s.db.Save(&holder).Error
}

func (s *VehicleService) reportConflict(regNum int, err error) {
	s.logger.WithFields(logrus.Fields{
		"vehicle": regNum,
		"error":   err.Error(),
	}).Warn("vehicle update rejected by store after pre-check")

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "vehicle")
		scope.SetExtra("vehicle_reg_num", regNum)
		sentry.CaptureException(err)
	})
}

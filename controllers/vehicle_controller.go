package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type VehicleController struct {
	Service *services.VehicleService
	Logger  *log.Logger
}

func NewVehicleController(service *services.VehicleService, logger *log.Logger) *VehicleController {
	return &VehicleController{Service: service, Logger: logger}
}

func (vc *VehicleController) CreateVehicle(c *fiber.Ctx) error {
	var input struct {
		RegNum   int    `json:"vehicleRegNum" validate:"required"`
		DriverID *int   `json:"vehicleDriverID"`
		Brand    string `json:"vehicleBrand"`
		Model    string `json:"vehicleModel"`
		Type     int    `json:"vehicleType" validate:"required,oneof=1 2 3"`
		Capacity int    `json:"vehicleCapacity" validate:"omitempty,min=0"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	vehicle := models.Vehicle{
		RegNum:   input.RegNum,
		DriverID: input.DriverID,
		Brand:    input.Brand,
		Model:    input.Model,
		Type:     input.Type,
		Capacity: input.Capacity,
	}
	if err := vc.Service.Create(&vehicle); err != nil {
		return serviceError(c, err, "Failed to create vehicle")
	}

	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

func (vc *VehicleController) GetVehicles(c *fiber.Ctx) error {
	vehicles, err := vc.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch vehicles")
	}
	return c.JSON(vehicles)
}

func (vc *VehicleController) GetVehicle(c *fiber.Ctx) error {
	regNum, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vehicle registration number", err)
	}

	vehicle, err := vc.Service.FindByRegNum(regNum)
	if err != nil {
		return serviceError(c, err, "Failed to fetch vehicle")
	}
	return c.JSON(vehicle)
}

func (vc *VehicleController) GetVehicleDriver(c *fiber.Ctx) error {
	regNum, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vehicle registration number", err)
	}

	driver, err := vc.Service.DriverFor(regNum)
	if err != nil {
		return serviceError(c, err, "Failed to fetch driver for vehicle")
	}
	return c.JSON(driver)
}

func (vc *VehicleController) GetVehiclesByType(c *fiber.Ctx) error {
	vehicleType, err := utils.ParamInt(c, "type")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vehicle type", err)
	}

	vehicles, err := vc.Service.FindByType(vehicleType)
	if err != nil {
		return serviceError(c, err, "Failed to fetch vehicles by type")
	}
	return c.JSON(vehicles)
}

// UpdateVehicle may reassign the vehicle's driver; the service clears the
// previous holder first so a driver never sits on two vehicles.
func (vc *VehicleController) UpdateVehicle(c *fiber.Ctx) error {
	regNum, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vehicle registration number", err)
	}

	var input services.VehicleUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	vehicle, err := vc.Service.Update(regNum, input)
	if err != nil {
		return serviceError(c, err, "Failed to update vehicle")
	}
	return c.JSON(vehicle)
}

func (vc *VehicleController) DeleteVehicle(c *fiber.Ctx) error {
	regNum, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vehicle registration number", err)
	}

	if err := vc.Service.Delete(regNum); err != nil {
		return serviceError(c, err, "Failed to delete vehicle")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

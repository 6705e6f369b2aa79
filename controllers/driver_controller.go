package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type DriverController struct {
	Service *services.DriverService
	Logger  *log.Logger
}

func NewDriverController(service *services.DriverService, logger *log.Logger) *DriverController {
	return &DriverController{Service: service, Logger: logger}
}

func (dc *DriverController) CreateDriver(c *fiber.Ctx) error {
	var input struct {
		DriverID int    `json:"driverID" validate:"required"`
		Name     string `json:"driverName" validate:"required,max=100"`
		Number   int    `json:"driverNumber"`
		Region   string `json:"driverRegion"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	driver := models.Driver{
		DriverID: input.DriverID,
		Name:     input.Name,
		Number:   input.Number,
		Region:   input.Region,
	}
	if err := dc.Service.Create(&driver); err != nil {
		return serviceError(c, err, "Failed to create driver")
	}

	return c.Status(fiber.StatusCreated).JSON(driver)
}

func (dc *DriverController) GetDrivers(c *fiber.Ctx) error {
	drivers, err := dc.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch drivers")
	}
	return c.JSON(drivers)
}

func (dc *DriverController) GetDriver(c *fiber.Ctx) error {
	driverID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid driver ID", err)
	}

	driver, err := dc.Service.FindByID(driverID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch driver")
	}
	return c.JSON(driver)
}

func (dc *DriverController) GetDriversByRegion(c *fiber.Ctx) error {
	drivers, err := dc.Service.FindByRegion(c.Params("region"))
	if err != nil {
		return serviceError(c, err, "Failed to fetch drivers by region")
	}
	return c.JSON(drivers)
}

func (dc *DriverController) UpdateDriver(c *fiber.Ctx) error {
	driverID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid driver ID", err)
	}

	var input services.DriverUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	driver, err := dc.Service.Update(driverID, input)
	if err != nil {
		return serviceError(c, err, "Failed to update driver")
	}
	return c.JSON(driver)
}

func (dc *DriverController) DeleteDriver(c *fiber.Ctx) error {
	driverID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid driver ID", err)
	}

	if err := dc.Service.Delete(driverID); err != nil {
		return serviceError(c, err, "Failed to delete driver")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

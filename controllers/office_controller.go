package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type OfficeController struct {
	Service *services.OfficeService
	Logger  *log.Logger
}

func NewOfficeController(service *services.OfficeService, logger *log.Logger) *OfficeController {
	return &OfficeController{Service: service, Logger: logger}
}

func (oc *OfficeController) CreateOffice(c *fiber.Ctx) error {
	var input struct {
		OfficeID int    `json:"officeID" validate:"required"`
		Branch   string `json:"officeBranch" validate:"required,max=100"`
		Phone    int    `json:"officePhone"`
		Email    string `json:"officeEmail" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	office := models.Office{
		OfficeID: input.OfficeID,
		Branch:   input.Branch,
		Phone:    input.Phone,
		Email:    input.Email,
	}
	if err := oc.Service.Create(&office, input.Password); err != nil {
		return serviceError(c, err, "Failed to create office")
	}

	return c.Status(fiber.StatusCreated).JSON(office)
}

func (oc *OfficeController) GetOffices(c *fiber.Ctx) error {
	offices, err := oc.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch offices")
	}
	return c.JSON(offices)
}

func (oc *OfficeController) GetOffice(c *fiber.Ctx) error {
	officeID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid office ID", err)
	}

	office, err := oc.Service.FindByID(officeID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch office")
	}
	return c.JSON(office)
}

// GetOfficeTeam returns the team owned by the office, the reverse side of
// the 1:1 link.
func (oc *OfficeController) GetOfficeTeam(c *fiber.Ctx) error {
	officeID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid office ID", err)
	}

	team, err := oc.Service.TeamFor(officeID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch team for office")
	}
	return c.JSON(team)
}

func (oc *OfficeController) UpdateOffice(c *fiber.Ctx) error {
	officeID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid office ID", err)
	}

	var input services.OfficeUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	office, err := oc.Service.Update(officeID, input)
	if err != nil {
		return serviceError(c, err, "Failed to update office")
	}
	return c.JSON(office)
}

func (oc *OfficeController) DeleteOffice(c *fiber.Ctx) error {
	officeID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid office ID", err)
	}

	if err := oc.Service.Delete(officeID); err != nil {
		return serviceError(c, err, "Failed to delete office")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type MemberController struct {
	Service *services.MemberService
	Logger  *log.Logger
}

func NewMemberController(service *services.MemberService, logger *log.Logger) *MemberController {
	return &MemberController{Service: service, Logger: logger}
}

func (mc *MemberController) CreateMember(c *fiber.Ctx) error {
	var input struct {
		MemberID      int    `json:"memberID" validate:"required"`
		TeamID        *int   `json:"memberTeamID"`
		VehicleRegNum *int   `json:"memberVehicleRegNum"`
		DriverID      *int   `json:"memberDriverID"`
		Name          string `json:"memberName" validate:"required,max=100"`
		Number        int    `json:"memberNumber"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	member := models.Member{
		MemberID:      input.MemberID,
		TeamID:        input.TeamID,
		VehicleRegNum: input.VehicleRegNum,
		DriverID:      input.DriverID,
		Name:          input.Name,
		Number:        input.Number,
	}
	if err := mc.Service.Create(&member); err != nil {
		return serviceError(c, err, "Failed to create member")
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func (mc *MemberController) GetMembers(c *fiber.Ctx) error {
	members, err := mc.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch members")
	}
	return c.JSON(members)
}

func (mc *MemberController) GetMember(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	member, err := mc.Service.FindByID(memberID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch member")
	}
	return c.JSON(member)
}

func (mc *MemberController) GetMemberTeam(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	team, err := mc.Service.TeamFor(memberID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch team for member")
	}
	return c.JSON(team)
}

func (mc *MemberController) GetMemberOffice(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	office, err := mc.Service.OfficeFor(memberID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch office for member")
	}
	return c.JSON(office)
}

func (mc *MemberController) GetMemberVehicle(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	vehicle, err := mc.Service.VehicleFor(memberID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch vehicle for member")
	}
	return c.JSON(vehicle)
}

func (mc *MemberController) GetMemberDriver(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	driver, err := mc.Service.DriverFor(memberID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch driver for member")
	}
	return c.JSON(driver)
}

func (mc *MemberController) UpdateMember(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	var input services.MemberUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	member, err := mc.Service.Update(memberID, input)
	if err != nil {
		return serviceError(c, err, "Failed to update member")
	}
	return c.JSON(member)
}

func (mc *MemberController) DeleteMember(c *fiber.Ctx) error {
	memberID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid member ID", err)
	}

	if err := mc.Service.Delete(memberID); err != nil {
		return serviceError(c, err, "Failed to delete member")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

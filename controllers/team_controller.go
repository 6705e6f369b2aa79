package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type TeamController struct {
	Service *services.TeamService
	Logger  *log.Logger
}

func NewTeamController(service *services.TeamService, logger *log.Logger) *TeamController {
	return &TeamController{Service: service, Logger: logger}
}

func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var input struct {
		OfficeID *int              `json:"teamOfficeID"`
		Name     string            `json:"teamName" validate:"required,max=100"`
		Leader   string            `json:"teamLeader"`
		Status   models.TeamStatus `json:"teamStatus" validate:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	team := models.Team{
		OfficeID: input.OfficeID,
		Name:     input.Name,
		Leader:   input.Leader,
		Status:   input.Status,
	}
	if err := tc.Service.Create(&team); err != nil {
		return serviceError(c, err, "Failed to create team")
	}

	return c.Status(fiber.StatusCreated).JSON(team)
}

func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	teams, err := tc.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch teams")
	}
	return c.JSON(teams)
}

func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	teamID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team ID", err)
	}

	team, err := tc.Service.FindByID(teamID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch team")
	}
	return c.JSON(team)
}

func (tc *TeamController) GetTeamOffice(c *fiber.Ctx) error {
	teamID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team ID", err)
	}

	office, err := tc.Service.OfficeFor(teamID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch office for team")
	}
	return c.JSON(office)
}

func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	teamID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team ID", err)
	}

	var input services.TeamUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	team, err := tc.Service.Update(teamID, input)
	if err != nil {
		return serviceError(c, err, "Failed to update team")
	}
	return c.JSON(team)
}

func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	teamID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team ID", err)
	}

	if err := tc.Service.Delete(teamID); err != nil {
		return serviceError(c, err, "Failed to delete team")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

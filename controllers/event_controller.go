package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/models"
	"fleetdesk/services"
	"fleetdesk/utils"
)

type EventController struct {
	Service *services.EventService
	Logger  *log.Logger
}

func NewEventController(service *services.EventService, logger *log.Logger) *EventController {
	return &EventController{Service: service, Logger: logger}
}

// CreateEvent stamps the event with the authenticated office. Any
// client-supplied eventOfficeID or eventID is ignored: the create payload
// simply has no field for them.
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	office := c.Locals("office").(*models.Office)

	var input services.EventCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	event, err := ec.Service.Create(input, office.OfficeID)
	if err != nil {
		return serviceError(c, err, "Failed to create event")
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	events, err := ec.Service.FindAll()
	if err != nil {
		return serviceError(c, err, "Failed to fetch events")
	}
	return c.JSON(events)
}

func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	event, err := ec.Service.FindByID(eventID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch event")
	}
	return c.JSON(event)
}

func (ec *EventController) GetEventOffice(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	office, err := ec.Service.OfficeFor(eventID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch office for event")
	}
	return c.JSON(office)
}

func (ec *EventController) GetEventTeam(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	team, err := ec.Service.TeamFor(eventID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch team for event")
	}
	return c.JSON(team)
}

func (ec *EventController) GetEventsByTeam(c *fiber.Ctx) error {
	teamID, err := utils.ParamInt(c, "teamID")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid team ID", err)
	}

	events, err := ec.Service.FindByTeam(teamID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch events for team")
	}
	return c.JSON(events)
}

func (ec *EventController) GetEventsByOffice(c *fiber.Ctx) error {
	officeID, err := utils.ParamInt(c, "officeID")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid office ID", err)
	}

	events, err := ec.Service.FindByOffice(officeID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch events for office")
	}
	return c.JSON(events)
}

func (ec *EventController) GetEventsByDateRange(c *fiber.Ctx) error {
	start, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid startDate", err)
	}
	end, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid endDate", err)
	}

	events, err := ec.Service.FindByDateRange(start, end)
	if err != nil {
		return serviceError(c, err, "Failed to fetch events by date range")
	}
	return c.JSON(events)
}

func (ec *EventController) GetEventsByProblemType(c *fiber.Ctx) error {
	problemType, err := utils.ParamInt(c, "type")
	if err != nil || problemType < 0 || problemType > models.MaxProblemType {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid problem type", err)
	}

	events, err := ec.Service.FindByProblemType(problemType)
	if err != nil {
		return serviceError(c, err, "Failed to fetch events by problem type")
	}
	return c.JSON(events)
}

func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	var input services.EventUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	event, err := ec.Service.Update(eventID, input)
	if err != nil {
		return serviceError(c, err, "Failed to update event")
	}
	return c.JSON(event)
}

func (ec *EventController) ReportProblem(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	var input struct {
		ProblemType        int    `json:"problemType" validate:"required,min=1,max=4"`
		ProblemDescription string `json:"problemDescription" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	event, err := ec.Service.ReportProblem(eventID, input.ProblemType, input.ProblemDescription)
	if err != nil {
		return serviceError(c, err, "Failed to report problem")
	}
	return c.JSON(event)
}

func (ec *EventController) FinishEvent(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	event, err := ec.Service.Finish(eventID)
	if err != nil {
		return serviceError(c, err, "Failed to finish event")
	}
	return c.JSON(event)
}

func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := utils.ParamInt(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid event ID", err)
	}

	if err := ec.Service.Delete(eventID); err != nil {
		return serviceError(c, err, "Failed to delete event")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDateParam accepts RFC3339 timestamps and plain dates; the frontend
// sends either depending on the picker.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/services"
	"fleetdesk/utils"
)

type AuthController struct {
	Service *services.AuthService
	Logger  *log.Logger
}

func NewAuthController(service *services.AuthService, logger *log.Logger) *AuthController {
	return &AuthController{Service: service, Logger: logger}
}

type LoginRequest struct {
	OfficeEmail string `json:"officeEmail" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

// Login checks office credentials and returns a bearer token plus the
// identity fields the frontend keeps in its session.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	office, token, err := ac.Service.Login(req.OfficeEmail, req.Password)
	if err != nil {
		return serviceError(c, err, "Invalid email or password")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"officeId":     office.OfficeID,
		"officeBranch": office.Branch,
		"officeEmail":  office.Email,
	})
}

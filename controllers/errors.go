package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/services"
	"fleetdesk/utils"
)

// serviceError maps the service sentinels onto HTTP statuses. Anything
// unrecognized is a 500.
func serviceError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidReference):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return utils.ErrorResponse(c, status, message, err)
}

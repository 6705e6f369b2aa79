package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fleetdesk/config"
	"fleetdesk/models"
	"fleetdesk/utils"
)

// Protected guards a route group with bearer-token auth. The office behind
// the token is re-resolved on every request, so a token whose office has
// been deleted stops working immediately.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization required",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization format",
			})
		}

		claims, err := utils.ParseOfficeToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		officeID, err := claims.OfficeID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token subject",
			})
		}

		var office models.Office
		if err := config.DB.First(&office, officeID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Office not found",
			})
		}

		// Request-scoped identity for guarded handlers
		c.Locals("office", &office)
		c.Locals("officeID", office.OfficeID)

		return c.Next()
	}
}

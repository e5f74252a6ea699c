package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vaulttube/internal/domain/dto"
)

// AdminGuard gates the write surface. Identity lives in an external service;
// all the pipeline ever sees is the opaque user ID stored in locals.
func AdminGuard(token, adminUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: "Admin API is not configured",
			})
		}

		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}

		c.Locals("userID", adminUserID)
		return c.Next()
	}
}

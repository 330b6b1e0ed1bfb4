// Package handler exposes the HTTP surface. Handlers translate between
// Fiber and the usecases; they hold no business rules of their own.
package handler

import (
	"errors"

	"github.com/brandlab/positioning-api/internal/usecase"
	"github.com/brandlab/positioning-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func currentUser(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals("userID").(uuid.UUID)
	return id
}

func currentIsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return isAdmin
}

// usecaseError maps the usecase sentinels onto status codes; anything else
// is a 500 with the given message.
func usecaseError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "Forbidden",
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}

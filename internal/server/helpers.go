package server

import (
	"strconv"

	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// paginationParams reads limit/offset query parameters with sane defaults.
func paginationParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 50)
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

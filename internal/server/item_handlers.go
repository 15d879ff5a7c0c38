package server

import (
	"stockroom/internal/models"
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// GetItems handles GET /api/items
func (s *Server) GetItems(c *fiber.Ctx) error {
	items, err := s.itemService.List(c.UserContext())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(items)
}

// GetItem handles GET /api/items/:id
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	item, err := s.itemService.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(item)
}

// CreateItem handles POST /api/items
func (s *Server) CreateItem(c *fiber.Ctx) error {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.Create(c.UserContext(), s.callerIdentity(c), service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles PUT /api/items/:id
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.Update(c.UserContext(), s.callerIdentity(c), id, service.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:id
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	if err := s.itemService.Delete(c.UserContext(), s.callerIdentity(c), id); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

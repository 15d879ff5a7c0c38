package server

import (
	"context"

	"stockroom/internal/auth"
	"stockroom/internal/models"
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createRequestBody struct {
	ItemID   uint   `json:"item_id"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

type resolveRequestBody struct {
	Comments string `json:"admin_comments"`
}

// CreateRequest handles POST /api/requests
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	var req createRequestBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.requestService.Create(c.UserContext(), s.callerIdentity(c), service.CreateRequestInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Reason:   req.Reason,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetAllRequests handles GET /api/requests
func (s *Server) GetAllRequests(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)

	requests, err := s.requestService.ListAll(c.UserContext(), s.callerIdentity(c), limit, offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(requests)
}

// GetUserRequests handles GET /api/requests/user/:id
func (s *Server) GetUserRequests(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	limit, offset := paginationParams(c)

	requests, err := s.requestService.ListByUser(c.UserContext(), s.callerIdentity(c), userID, limit, offset)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(requests)
}

// GetRequest handles GET /api/requests/:id
func (s *Server) GetRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	request, err := s.requestService.GetByID(c.UserContext(), s.callerIdentity(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(request)
}

// ApproveRequest handles PUT /api/requests/:id/approve
func (s *Server) ApproveRequest(c *fiber.Ctx) error {
	return s.resolveRequest(c, s.requestService.Approve)
}

// RejectRequest handles PUT /api/requests/:id/reject
func (s *Server) RejectRequest(c *fiber.Ctx) error {
	return s.resolveRequest(c, s.requestService.Reject)
}

func (s *Server) resolveRequest(c *fiber.Ctx, resolve func(ctx context.Context, caller auth.Identity, in service.ResolveInput) (*models.Request, error)) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req resolveRequestBody
	// A body is optional on resolutions, comments default to empty
	_ = c.BodyParser(&req)

	request, err := resolve(c.UserContext(), s.callerIdentity(c), service.ResolveInput{
		RequestID: id,
		Comments:  req.Comments,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(request)
}

// CancelRequest handles PUT /api/requests/:id/cancel
func (s *Server) CancelRequest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	request, err := s.requestService.Cancel(c.UserContext(), s.callerIdentity(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(request)
}

// GetRequestSummary handles GET /api/admin/requests/summary
func (s *Server) GetRequestSummary(c *fiber.Ctx) error {
	counts, err := s.requestService.CountByStatus(c.UserContext(), s.callerIdentity(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	summary := fiber.Map{}
	for status, count := range counts {
		summary[string(status)] = count
	}
	return c.JSON(summary)
}

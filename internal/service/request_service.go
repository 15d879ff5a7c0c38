// Package service implements the business rules on top of the repository layer.
package service

import (
	"context"
	"log/slog"

	"stockroom/internal/auth"
	"stockroom/internal/middleware"
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

const (
	maxReasonLen   = 500
	maxCommentsLen = 500
	defaultLimit   = 50
	maxLimit       = 200
)

// RequestService drives the inventory request lifecycle. Every operation takes
// the caller's identity explicitly; there is no ambient authentication state.
type RequestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
}

// CreateRequestInput carries the fields for submitting a new request.
type CreateRequestInput struct {
	ItemID   uint
	Quantity int
	Reason   string
}

// ResolveInput carries the admin's decision on a pending request.
type ResolveInput struct {
	RequestID uint
	Comments  string
}

func NewRequestService(requestRepo repository.RequestRepository, itemRepo repository.ItemRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo, itemRepo: itemRepo}
}

// Create submits a new pending request on behalf of the caller.
func (s *RequestService) Create(ctx context.Context, caller auth.Identity, in CreateRequestInput) (*models.Request, error) {
	if in.Quantity < 1 {
		return nil, models.NewValidationError("Quantity must be at least 1")
	}
	if len(in.Reason) > maxReasonLen {
		return nil, models.NewValidationError("Reason too long (max 500 characters)")
	}

	// The item must exist; requests never reference phantom inventory.
	if _, err := s.itemRepo.GetByID(ctx, in.ItemID); err != nil {
		return nil, err
	}

	request := &models.Request{
		UserID:   caller.UserID,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Status:   models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "request created",
		slog.Any("request_id", request.ID),
		slog.Any("user_id", caller.UserID),
		slog.Any("item_id", in.ItemID),
		slog.Int("quantity", in.Quantity),
	)

	return s.requestRepo.GetByID(ctx, request.ID)
}

// Approve resolves a pending request to APPROVED. Admin only.
func (s *RequestService) Approve(ctx context.Context, caller auth.Identity, in ResolveInput) (*models.Request, error) {
	return s.resolve(ctx, caller, in, models.RequestStatusApproved)
}

// Reject resolves a pending request to REJECTED. Admin only.
func (s *RequestService) Reject(ctx context.Context, caller auth.Identity, in ResolveInput) (*models.Request, error) {
	return s.resolve(ctx, caller, in, models.RequestStatusRejected)
}

func (s *RequestService) resolve(ctx context.Context, caller auth.Identity, in ResolveInput, to models.RequestStatus) (*models.Request, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("Admin role required")
	}
	if len(in.Comments) > maxCommentsLen {
		return nil, models.NewValidationError("Comments too long (max 500 characters)")
	}

	reviewer := caller.UserID
	request, err := s.requestRepo.TransitionFromPending(ctx, in.RequestID, repository.Transition{
		To:            to,
		ReviewedBy:    &reviewer,
		AdminComments: in.Comments,
	})
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "request resolved",
		slog.Any("request_id", request.ID),
		slog.String("status", string(to)),
		slog.Any("reviewed_by", caller.UserID),
	)

	return request, nil
}

// Cancel withdraws a pending request. Only the requester may cancel, admins
// included; an admin who wants a request gone rejects it instead.
func (s *RequestService) Cancel(ctx context.Context, caller auth.Identity, requestID uint) (*models.Request, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != caller.UserID {
		return nil, models.NewForbiddenError("Only the requester can cancel a request")
	}

	// The ownership check above cannot race: the requester never changes.
	cancelled, err := s.requestRepo.TransitionFromPending(ctx, requestID, repository.Transition{
		To: models.RequestStatusCancelled,
	})
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "request cancelled",
		slog.Any("request_id", requestID),
		slog.Any("user_id", caller.UserID),
	)

	return cancelled, nil
}

// GetByID returns one request. Admins see everything, employees only their own.
func (s *RequestService) GetByID(ctx context.Context, caller auth.Identity, requestID uint) (*models.Request, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && request.UserID != caller.UserID {
		return nil, models.NewForbiddenError("Cannot view another user's request")
	}
	return request, nil
}

// ListAll returns every request. Admin only.
func (s *RequestService) ListAll(ctx context.Context, caller auth.Identity, limit, offset int) ([]models.Request, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("Admin role required")
	}
	limit = clampLimit(limit)
	return s.requestRepo.ListAll(ctx, limit, offset)
}

// ListByUser returns a user's requests. Admins may list anyone's, employees
// only their own.
func (s *RequestService) ListByUser(ctx context.Context, caller auth.Identity, userID uint, limit, offset int) ([]models.Request, error) {
	if !caller.IsAdmin() && userID != caller.UserID {
		return nil, models.NewForbiddenError("Cannot view another user's requests")
	}
	limit = clampLimit(limit)
	return s.requestRepo.ListByUser(ctx, userID, limit, offset)
}

// CountByStatus returns request totals per status for the dashboard. Admin only.
func (s *RequestService) CountByStatus(ctx context.Context, caller auth.Identity) (map[models.RequestStatus]int64, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("Admin role required")
	}
	return s.requestRepo.CountByStatus(ctx)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

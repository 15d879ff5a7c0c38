package repository

import (
	"context"
	"errors"
	"time"

	"stockroom/internal/models"
	"stockroom/internal/observability"

	"gorm.io/gorm"
)

// Transition carries the fields written when a pending request is resolved.
// ReviewedBy is nil for requester cancellations.
type Transition struct {
	To            models.RequestStatus
	ReviewedBy    *uint
	AdminComments string
}

// RequestRepository defines persistence operations for inventory requests.
type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id uint) (*models.Request, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Request, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Request, error)
	TransitionFromPending(ctx context.Context, id uint, tr Transition) (*models.Request, error)
	CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository returns a new RequestRepository implementation.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.Request) error {
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	if request.RequestDate.IsZero() {
		request.RequestDate = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.RequestsCreated.Inc()
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.Request, error) {
	var request models.Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Item").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *requestRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Item").
		Order("request_date DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *requestRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Item").
		Where("user_id = ?", userID).
		Order("request_date DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// TransitionFromPending resolves a pending request to a terminal status with a
// single guarded UPDATE. The status predicate makes concurrent resolutions
// race-safe under read committed: exactly one writer observes RowsAffected == 1,
// every other writer falls through to a read that distinguishes a missing
// request from one already resolved.
func (r *requestRepository) TransitionFromPending(ctx context.Context, id uint, tr Transition) (*models.Request, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"status":        tr.To,
		"response_date": now,
	}
	if tr.ReviewedBy != nil {
		updates["reviewed_by_user_id"] = *tr.ReviewedBy
	}
	if tr.AdminComments != "" {
		updates["admin_comments"] = tr.AdminComments
	}

	result := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(updates)
	if result.Error != nil {
		observability.RequestTransitions.WithLabelValues(string(tr.To), "error").Inc()
		return nil, models.NewInternalError(result.Error)
	}

	if result.RowsAffected == 0 {
		observability.RequestTransitions.WithLabelValues(string(tr.To), "conflict").Inc()
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, models.NewInvalidStateError(
			"Request is " + string(existing.Status) + ", only PENDING requests can be resolved")
	}

	observability.RequestTransitions.WithLabelValues(string(tr.To), "applied").Inc()
	return r.GetByID(ctx, id)
}

func (r *requestRepository) CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error) {
	type row struct {
		Status models.RequestStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := make(map[models.RequestStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

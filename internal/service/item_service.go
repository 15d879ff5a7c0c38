package service

import (
	"context"
	"strings"

	"stockroom/internal/auth"
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

// ItemService manages the inventory catalog. Reads are open to any
// authenticated caller, mutations require the admin role.
type ItemService struct {
	itemRepo repository.ItemRepository
}

// ItemInput carries the fields for creating or updating an item.
type ItemInput struct {
	Name        string
	Description string
	Quantity    int
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, caller auth.Identity, in ItemInput) (*models.Item, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("Admin role required")
	}
	if err := validateItemInput(in); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Quantity:    in.Quantity,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, caller auth.Identity, id uint, in ItemInput) (*models.Item, error) {
	if !caller.IsAdmin() {
		return nil, models.NewForbiddenError("Admin role required")
	}
	if err := validateItemInput(in); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Quantity = in.Quantity

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, caller auth.Identity, id uint) error {
	if !caller.IsAdmin() {
		return models.NewForbiddenError("Admin role required")
	}
	return s.itemRepo.Delete(ctx, id)
}

func validateItemInput(in ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("Name is required")
	}
	if len(in.Name) > 120 {
		return models.NewValidationError("Name too long (max 120 characters)")
	}
	if in.Quantity < 0 {
		return models.NewValidationError("Quantity cannot be negative")
	}
	return nil
}

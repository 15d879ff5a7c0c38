package repository

import (
	"context"
	"errors"

	"stockroom/internal/cache"
	"stockroom/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository returns a new ItemRepository implementation.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	key := cache.ItemKey(id)

	err := cache.Aside(ctx, key, &item, cache.ItemTTL, func() error {
		if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Item", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := cache.Aside(ctx, cache.ItemListKey, &items, cache.ItemListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.ItemListKey)
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, item.ID)
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Item", id)
	}
	cache.InvalidateItem(ctx, id)
	return nil
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

package service

import (
	"context"
	"testing"

	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_Create(t *testing.T) {
	t.Run("admin creates item", func(t *testing.T) {
		itemRepo := &stubItemRepo{
			createFn: func(_ context.Context, item *models.Item) error {
				item.ID = 1
				return nil
			},
		}
		svc := NewItemService(itemRepo)

		item, err := svc.Create(context.Background(), adminCaller, ItemInput{
			Name: "  Monitor  ", Description: "24-inch LED monitor", Quantity: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, "Monitor", item.Name)
		assert.Equal(t, 20, item.Quantity)
	})

	t.Run("employee cannot create", func(t *testing.T) {
		svc := NewItemService(&stubItemRepo{})
		_, err := svc.Create(context.Background(), employeeCaller, ItemInput{Name: "Monitor", Quantity: 1})
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := NewItemService(&stubItemRepo{})
		_, err := svc.Create(context.Background(), adminCaller, ItemInput{Name: "   ", Quantity: 1})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		svc := NewItemService(&stubItemRepo{})
		_, err := svc.Create(context.Background(), adminCaller, ItemInput{Name: "Monitor", Quantity: -1})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})
}

func TestItemService_Update(t *testing.T) {
	itemRepo := &stubItemRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.Item, error) {
			return &models.Item{ID: id, Name: "Mouse", Quantity: 25}, nil
		},
		updateFn: func(_ context.Context, item *models.Item) error {
			return nil
		},
	}
	svc := NewItemService(itemRepo)

	item, err := svc.Update(context.Background(), adminCaller, 3, ItemInput{
		Name: "Mouse", Description: "Wireless optical mouse", Quantity: 24,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, item.Quantity)

	_, err = svc.Update(context.Background(), employeeCaller, 3, ItemInput{Name: "Mouse", Quantity: 1})
	assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
}

func TestItemService_Delete(t *testing.T) {
	deleted := uint(0)
	itemRepo := &stubItemRepo{
		deleteFn: func(_ context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	svc := NewItemService(itemRepo)

	require.NoError(t, svc.Delete(context.Background(), adminCaller, 7))
	assert.Equal(t, uint(7), deleted)

	err := svc.Delete(context.Background(), employeeCaller, 7)
	assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
}

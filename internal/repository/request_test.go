package repository

import (
	"context"
	"testing"

	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Request{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func seedRequestFixtures(t *testing.T, db *gorm.DB) (*models.User, *models.User, *models.Item) {
	t.Helper()
	admin := &models.User{Username: "admin", Password: "x", Name: "Administrator", Role: models.RoleAdmin}
	john := &models.User{Username: "john", Password: "x", Name: "John Doe", Role: models.RoleEmployee}
	mouse := &models.Item{Name: "Mouse", Description: "Wireless optical mouse", Quantity: 25}
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, db.Create(john).Error)
	require.NoError(t, db.Create(mouse).Error)
	return admin, john, mouse
}

func TestRequestRepository_CreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	_, john, mouse := seedRequestFixtures(t, db)

	req := &models.Request{
		UserID:   john.ID,
		ItemID:   mouse.ID,
		Quantity: 2,
		Reason:   "replacement",
	}
	require.NoError(t, repo.Create(ctx, req))
	assert.NotZero(t, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.False(t, req.RequestDate.IsZero())
	assert.Nil(t, req.ResponseDate)
}

func TestRequestRepository_GetByIDPreloads(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	_, john, mouse := seedRequestFixtures(t, db)

	created := &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	require.NotNil(t, got.Item)
	assert.Equal(t, "john", got.User.Username)
	assert.Equal(t, "Mouse", got.Item.Name)
}

func TestRequestRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestRequestRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	admin, john, mouse := seedRequestFixtures(t, db)

	require.NoError(t, repo.Create(ctx, &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}))
	require.NoError(t, repo.Create(ctx, &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 2}))
	require.NoError(t, repo.Create(ctx, &models.Request{UserID: admin.ID, ItemID: mouse.ID, Quantity: 3}))

	mine, err := repo.ListByUser(ctx, john.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.ListAll(ctx, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRequestRepository_TransitionFromPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	admin, john, mouse := seedRequestFixtures(t, db)

	t.Run("approve", func(t *testing.T) {
		req := &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}
		require.NoError(t, repo.Create(ctx, req))

		got, err := repo.TransitionFromPending(ctx, req.ID, Transition{
			To:            models.RequestStatusApproved,
			ReviewedBy:    &admin.ID,
			AdminComments: "approved, pick it up at the desk",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, got.Status)
		require.NotNil(t, got.ResponseDate)
		require.NotNil(t, got.ReviewedByUserID)
		assert.Equal(t, admin.ID, *got.ReviewedByUserID)
		assert.Equal(t, "approved, pick it up at the desk", got.AdminComments)
	})

	t.Run("cancel leaves reviewer empty", func(t *testing.T) {
		req := &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}
		require.NoError(t, repo.Create(ctx, req))

		got, err := repo.TransitionFromPending(ctx, req.ID, Transition{
			To: models.RequestStatusCancelled,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusCancelled, got.Status)
		assert.Nil(t, got.ReviewedByUserID)
		assert.Empty(t, got.AdminComments)
	})

	t.Run("already resolved", func(t *testing.T) {
		req := &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}
		require.NoError(t, repo.Create(ctx, req))

		_, err := repo.TransitionFromPending(ctx, req.ID, Transition{
			To:         models.RequestStatusRejected,
			ReviewedBy: &admin.ID,
		})
		require.NoError(t, err)

		// The second resolution loses the race and reports the current state.
		_, err = repo.TransitionFromPending(ctx, req.ID, Transition{
			To: models.RequestStatusCancelled,
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInvalidState, appErr.Code)
		assert.Contains(t, appErr.Message, "REJECTED")
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := repo.TransitionFromPending(ctx, 9999, Transition{
			To: models.RequestStatusApproved,
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestRequestRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	admin, john, mouse := seedRequestFixtures(t, db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}))
	}
	resolved := &models.Request{UserID: john.ID, ItemID: mouse.ID, Quantity: 1}
	require.NoError(t, repo.Create(ctx, resolved))
	_, err := repo.TransitionFromPending(ctx, resolved.ID, Transition{
		To:         models.RequestStatusApproved,
		ReviewedBy: &admin.ID,
	})
	require.NoError(t, err)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[models.RequestStatusPending])
	assert.Equal(t, int64(1), counts[models.RequestStatusApproved])
}

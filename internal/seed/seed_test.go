package seed

import (
	"testing"

	"stockroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.Request{}))
	return db
}

func TestSeedBuiltins(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedBuiltins(db))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "Administrator", admin.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	var userCount, itemCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(5), itemCount)

	var mouse models.Item
	require.NoError(t, db.Where("name = ?", "Mouse").First(&mouse).Error)
	assert.Equal(t, 25, mouse.Quantity)
	assert.Equal(t, "Wireless optical mouse", mouse.Description)
}

func TestSeedBuiltins_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, SeedBuiltins(db))
	require.NoError(t, SeedBuiltins(db))

	var userCount, itemCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	assert.Equal(t, int64(3), userCount)
	assert.Equal(t, int64(5), itemCount)
}

func TestRun_Workforce(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{NumEmployees: 4, NumRequests: 20}))

	var employeeCount int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleEmployee).Count(&employeeCount).Error)
	// 2 built-in employees plus 4 synthetic ones
	assert.Equal(t, int64(6), employeeCount)

	var requests []models.Request
	require.NoError(t, db.Find(&requests).Error)
	assert.Len(t, requests, 20)

	for _, r := range requests {
		assert.GreaterOrEqual(t, r.Quantity, 1)
		switch r.Status {
		case models.RequestStatusApproved, models.RequestStatusRejected:
			assert.NotNil(t, r.ResponseDate)
			assert.NotNil(t, r.ReviewedByUserID)
		case models.RequestStatusCancelled:
			assert.NotNil(t, r.ResponseDate)
			assert.Nil(t, r.ReviewedByUserID)
		case models.RequestStatusPending:
			assert.Nil(t, r.ResponseDate)
		}
	}
}

func TestClean(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{NumEmployees: 2, NumRequests: 5}))
	require.NoError(t, Clean(db))

	var userCount, itemCount, requestCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	require.NoError(t, db.Model(&models.Request{}).Count(&requestCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, requestCount)
}

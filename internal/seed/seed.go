// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"

	"stockroom/internal/auth"
	"stockroom/internal/middleware"
	"stockroom/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumEmployees int
	NumRequests  int
	ShouldClean  bool
}

type builtinUser struct {
	username string
	password string
	name     string
	role     models.Role
}

var builtinUsers = []builtinUser{
	{"admin", "admin123", "Administrator", models.RoleAdmin},
	{"john", "john123", "John Doe", models.RoleEmployee},
	{"jane", "jane123", "Jane Smith", models.RoleEmployee},
}

var builtinItems = []models.Item{
	{Name: "Mouse", Description: "Wireless optical mouse", Quantity: 25},
	{Name: "Keyboard", Description: "Mechanical keyboard", Quantity: 15},
	{Name: "PC", Description: "Desktop computer", Quantity: 10},
	{Name: "Monitor", Description: "24-inch LED monitor", Quantity: 20},
	{Name: "Headphones", Description: "Noise-cancelling headphones", Quantity: 12},
}

// SeedBuiltins inserts the default users and catalog items. It is idempotent:
// existing rows are left untouched, so it is safe on every startup.
func SeedBuiltins(db *gorm.DB) error {
	for _, bu := range builtinUsers {
		var existing models.User
		err := db.Where("username = ?", bu.username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("seed: lookup user %s: %w", bu.username, err)
		}

		hash, err := auth.HashPassword(bu.password)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", bu.username, err)
		}
		user := models.User{
			Username: bu.username,
			Password: hash,
			Name:     bu.name,
			Role:     bu.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("seed: create user %s: %w", bu.username, err)
		}
		middleware.Logger.Info("seeded builtin user", "username", bu.username, "role", string(bu.role))
	}

	for _, bi := range builtinItems {
		var existing models.Item
		err := db.Where("name = ?", bi.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("seed: lookup item %s: %w", bi.Name, err)
		}

		item := bi
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("seed: create item %s: %w", bi.Name, err)
		}
		middleware.Logger.Info("seeded builtin item", "name", bi.Name, "quantity", bi.Quantity)
	}

	return nil
}

// Run seeds built-ins and, when requested, a synthetic workforce with request
// history for load and demo environments.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	if err := SeedBuiltins(db); err != nil {
		return err
	}

	if opts.NumEmployees > 0 || opts.NumRequests > 0 {
		factory := NewFactory(db)
		if err := factory.SeedWorkforce(opts.NumEmployees, opts.NumRequests); err != nil {
			return err
		}
	}

	return nil
}

// Clean removes all seeded data. Requests go first to satisfy foreign keys.
func Clean(db *gorm.DB) error {
	for _, model := range []interface{}{&models.Request{}, &models.Item{}, &models.User{}} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("seed: clean %T: %w", model, err)
		}
	}
	return nil
}

package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"stockroom/internal/auth"
	"stockroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds synthetic users and requests for demo and load environments.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

var requestReasons = []string{
	"replacement for a broken unit",
	"new hire starting next week",
	"upgrade for the dev workstation",
	"spare for the conference room",
	"current one is end of life",
	"second screen for code reviews",
}

// CreateEmployee persists a fake employee with a bcrypt-hashed password.
func (f *Factory) CreateEmployee() (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s.%s%d", first, last, gofakeit.Number(1, 9999)))

	hash, err := auth.HashPassword(gofakeit.Password(true, true, true, false, false, 12))
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hash,
		Name:     first + " " + last,
		Role:     models.RoleEmployee,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRequest persists a fake request for the given user and item, spread
// over the last 90 days. Roughly half the requests are left pending, the rest
// are resolved by the reviewer.
func (f *Factory) CreateRequest(user *models.User, item *models.Item, reviewer *models.User) (*models.Request, error) {
	requestDate := time.Now().AddDate(0, 0, -gofakeit.Number(0, 90))

	request := &models.Request{
		UserID:      user.ID,
		ItemID:      item.ID,
		Quantity:    gofakeit.Number(1, 3),
		Reason:      requestReasons[rand.Intn(len(requestReasons))],
		Status:      models.RequestStatusPending,
		RequestDate: requestDate,
	}

	if gofakeit.Bool() {
		responseDate := requestDate.Add(time.Duration(gofakeit.Number(1, 72)) * time.Hour)
		request.ResponseDate = &responseDate

		switch gofakeit.Number(0, 2) {
		case 0:
			request.Status = models.RequestStatusApproved
			request.ReviewedByUserID = &reviewer.ID
			request.AdminComments = "Approved"
		case 1:
			request.Status = models.RequestStatusRejected
			request.ReviewedByUserID = &reviewer.ID
			request.AdminComments = "Out of stock, resubmit next quarter"
		default:
			request.Status = models.RequestStatusCancelled
		}
	}

	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// SeedWorkforce creates numEmployees fake employees and numRequests requests
// distributed across them and the built-in catalog.
func (f *Factory) SeedWorkforce(numEmployees, numRequests int) error {
	var admin models.User
	if err := f.db.Where("role = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		return fmt.Errorf("seed: no admin user to review requests: %w", err)
	}

	var items []models.Item
	if err := f.db.Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("seed: no items to request")
	}

	employees := make([]*models.User, 0, numEmployees)
	for i := 0; i < numEmployees; i++ {
		user, err := f.CreateEmployee()
		if err != nil {
			return err
		}
		employees = append(employees, user)
	}

	if len(employees) == 0 {
		var existing []models.User
		if err := f.db.Where("role = ?", models.RoleEmployee).Find(&existing).Error; err != nil {
			return err
		}
		for i := range existing {
			employees = append(employees, &existing[i])
		}
	}
	if len(employees) == 0 {
		return fmt.Errorf("seed: no employees to create requests for")
	}

	for i := 0; i < numRequests; i++ {
		user := employees[rand.Intn(len(employees))]
		item := items[rand.Intn(len(items))]
		if _, err := f.CreateRequest(user, &item, &admin); err != nil {
			return err
		}
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"github.com/nutricoach/nutricoach-api/internal/repository"
	"gorm.io/gorm"
)

// CustomerService layers natural-key and derived-filter lookups over the
// generic record operations for customers
type CustomerService struct {
	records *repository.Repository[domain.Customer]
}

func NewCustomerService(db *gorm.DB, maxPageSize int) *CustomerService {
	return &CustomerService{
		records: repository.New[domain.Customer](db, maxPageSize),
	}
}

// Create validates the customer, pre-checks the unique natural keys to
// produce field-specific conflicts, then inserts the record. The store's
// uniqueness constraints still back the pre-check against races.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := domain.ValidateCustomer(customer); err != nil {
		return nil, err
	}

	if customer.MobileNumber != nil {
		existing, err := s.GetByMobile(ctx, *customer.MobileNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("customer with mobile number %s already exists", *customer.MobileNumber)).
				WithContext("field", "mobile_number")
		}
	}

	if customer.Email != nil {
		existing, err := s.GetByEmail(ctx, *customer.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("customer with email %s already exists", *customer.Email)).
				WithContext("field", "email")
		}
	}

	if err := s.records.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.records.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	return s.records.List(ctx, skip, limit)
}

// Update applies a partial update. Changed natural keys are pre-checked
// against other customers so the conflict names the offending field.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Customer, error) {
	current, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := fields["name"].(string); ok && name == "" {
		return nil, apperrors.NewValidationError("name is required").WithContext("field", "name")
	}
	if gender, ok := fields["gender"].(string); ok {
		if err := domain.ValidateGender(gender); err != nil {
			return nil, err
		}
	}

	for _, field := range []string{"mobile_number", "alternate_mobile_number"} {
		if value, ok := fields[field].(string); ok {
			if err := domain.ValidateMobileNumber(field, &value); err != nil {
				return nil, err
			}
		}
	}

	if email, ok := fields["email"].(string); ok {
		if current.Email == nil || *current.Email != email {
			existing, err := s.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, apperrors.NewConflictError(
					fmt.Sprintf("customer with email %s already exists", email)).
					WithContext("field", "email")
			}
		}
	}

	if mobile, ok := fields["mobile_number"].(string); ok {
		if current.MobileNumber == nil || *current.MobileNumber != mobile {
			existing, err := s.GetByMobile(ctx, mobile)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, apperrors.NewConflictError(
					fmt.Sprintf("customer with mobile number %s already exists", mobile)).
					WithContext("field", "mobile_number")
			}
		}
	}

	if err := parseDateFields(fields, "date_of_birth"); err != nil {
		return nil, err
	}
	if err := normalizeJSONFields(fields, "preferences", "allergies"); err != nil {
		return nil, err
	}

	return s.records.Update(ctx, id, fields)
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}

// GetByEmail returns (nil, nil) when no customer has the email
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.records.FindOne(ctx, "email = ?", email)
}

// GetByMobile returns (nil, nil) when no customer has the mobile number
func (s *CustomerService) GetByMobile(ctx context.Context, mobile string) (*domain.Customer, error) {
	return s.records.FindOne(ctx, "mobile_number = ?", mobile)
}

// GetByAgeRange translates an age range into the implied birth-date window,
// inclusive on both ends, paginated like every other listing. The caller
// validates minAge <= maxAge.
func (s *CustomerService) GetByAgeRange(ctx context.Context, minAge, maxAge, skip, limit int) ([]domain.Customer, error) {
	today := time.Now().UTC()

	// Customers at most maxAge were born on/after minDate; customers at
	// least minAge were born on/before maxDate.
	maxDate := time.Date(today.Year()-minAge, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	minDate := time.Date(today.Year()-maxAge, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	return s.records.ListWhere(ctx, skip, limit,
		"date_of_birth >= ? AND date_of_birth <= ?", minDate, maxDate)
}

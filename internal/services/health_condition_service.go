package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/nutricoach-api/internal/domain"
	apperrors "github.com/nutricoach/nutricoach-api/internal/errors"
	"github.com/nutricoach/nutricoach-api/internal/repository"
	"gorm.io/gorm"
)

const activeConditionClause = "customer_id = ? AND (to_date IS NULL OR to_date >= ?)"

// startOfToday returns the current date at midnight UTC. Condition end dates
// are stored as midnight dates, so the activity filter must compare against
// the calendar date, not the clock time, or a condition ending today would be
// excluded for the whole day.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// InjuryService handles injury records for customers
type InjuryService struct {
	records *repository.Repository[domain.Injury]
}

func NewInjuryService(db *gorm.DB, maxPageSize int) *InjuryService {
	return &InjuryService{records: repository.New[domain.Injury](db, maxPageSize)}
}

func (s *InjuryService) Create(ctx context.Context, injury *domain.Injury) (*domain.Injury, error) {
	if injury.Name == "" {
		return nil, apperrors.NewValidationError("name is required").WithContext("field", "name")
	}
	if injury.FromDate.IsZero() {
		injury.FromDate = time.Now().UTC()
	}

	if err := s.records.Create(ctx, injury); err != nil {
		return nil, err
	}
	return injury, nil
}

func (s *InjuryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Injury, error) {
	return s.records.GetByID(ctx, id)
}

func (s *InjuryService) List(ctx context.Context, skip, limit int) ([]domain.Injury, error) {
	return s.records.List(ctx, skip, limit)
}

func (s *InjuryService) ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]domain.Injury, error) {
	return s.records.ListWhere(ctx, skip, limit, "customer_id = ?", customerID)
}

// ListActive returns conditions with no end date or an end date on/after today
func (s *InjuryService) ListActive(ctx context.Context, customerID uuid.UUID) ([]domain.Injury, error) {
	return s.records.ListWhere(ctx, 0, 0, activeConditionClause, customerID, startOfToday())
}

func (s *InjuryService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Injury, error) {
	if err := parseDateFields(fields, "from_date", "to_date"); err != nil {
		return nil, err
	}
	if err := normalizeJSONFields(fields, "impact_on_diet"); err != nil {
		return nil, err
	}
	return s.records.Update(ctx, id, fields)
}

func (s *InjuryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}

// DiseaseService handles disease records for customers
type DiseaseService struct {
	records *repository.Repository[domain.Disease]
}

func NewDiseaseService(db *gorm.DB, maxPageSize int) *DiseaseService {
	return &DiseaseService{records: repository.New[domain.Disease](db, maxPageSize)}
}

func (s *DiseaseService) Create(ctx context.Context, disease *domain.Disease) (*domain.Disease, error) {
	if disease.Name == "" {
		return nil, apperrors.NewValidationError("name is required").WithContext("field", "name")
	}
	if disease.FromDate.IsZero() {
		disease.FromDate = time.Now().UTC()
	}

	if err := s.records.Create(ctx, disease); err != nil {
		return nil, err
	}
	return disease, nil
}

func (s *DiseaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Disease, error) {
	return s.records.GetByID(ctx, id)
}

func (s *DiseaseService) List(ctx context.Context, skip, limit int) ([]domain.Disease, error) {
	return s.records.List(ctx, skip, limit)
}

func (s *DiseaseService) ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]domain.Disease, error) {
	return s.records.ListWhere(ctx, skip, limit, "customer_id = ?", customerID)
}

// ListActive returns conditions with no end date or an end date on/after today
func (s *DiseaseService) ListActive(ctx context.Context, customerID uuid.UUID) ([]domain.Disease, error) {
	return s.records.ListWhere(ctx, 0, 0, activeConditionClause, customerID, startOfToday())
}

func (s *DiseaseService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.Disease, error) {
	if err := parseDateFields(fields, "from_date", "to_date", "diagnosis_date"); err != nil {
		return nil, err
	}
	if err := normalizeJSONFields(fields, "impact_on_diet", "medications"); err != nil {
		return nil, err
	}
	return s.records.Update(ctx, id, fields)
}

func (s *DiseaseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.records.Delete(ctx, id)
}

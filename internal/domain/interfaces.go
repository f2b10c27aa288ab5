package domain

import (
	"context"

	"github.com/google/uuid"
)

// CustomerService handles customer records and their natural-key lookups
type CustomerService interface {
	Create(ctx context.Context, customer *Customer) (*Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context, skip, limit int) ([]Customer, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// GetByEmail and GetByMobile return (nil, nil) when no customer matches;
	// absence is a valid outcome, distinct from a not-found failure.
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	GetByMobile(ctx context.Context, mobile string) (*Customer, error)
	GetByAgeRange(ctx context.Context, minAge, maxAge, skip, limit int) ([]Customer, error)
}

// MeasurementService handles body measurements and their attached AI analyses
type MeasurementService interface {
	Create(ctx context.Context, measurement *BodyMeasurement) (*BodyMeasurement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BodyMeasurement, error)
	List(ctx context.Context, skip, limit int) ([]BodyMeasurement, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]BodyMeasurement, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*BodyMeasurement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AttachAnalysis(ctx context.Context, analysis *BodyMeasurementAIAnalysis) (*BodyMeasurementAIAnalysis, error)
	GetAnalysis(ctx context.Context, measurementID uuid.UUID) (*BodyMeasurementAIAnalysis, error)
}

// InjuryService handles injury records
type InjuryService interface {
	Create(ctx context.Context, injury *Injury) (*Injury, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Injury, error)
	List(ctx context.Context, skip, limit int) ([]Injury, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]Injury, error)
	ListActive(ctx context.Context, customerID uuid.UUID) ([]Injury, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Injury, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiseaseService handles disease records
type DiseaseService interface {
	Create(ctx context.Context, disease *Disease) (*Disease, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Disease, error)
	List(ctx context.Context, skip, limit int) ([]Disease, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, skip, limit int) ([]Disease, error)
	ListActive(ctx context.Context, customerID uuid.UUID) ([]Disease, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*Disease, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
